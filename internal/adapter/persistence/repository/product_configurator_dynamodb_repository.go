package repository

import (
	"context"
	"errors"
	"strconv"

	"storefront_tracking/internal/domain/entities"
	"storefront_tracking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProductConfiguratorsTableName = "product_configurators"

var ErrInvalidProductConfigurator = errors.New("invalid product configurator")

type pricesItem struct {
	CZK string `dynamodbav:"czk"`
	EUR string `dynamodbav:"eur"`
}

type rangeItem struct {
	Min string `dynamodbav:"min"`
	Max string `dynamodbav:"max"`
}

type optionItem struct {
	ID        int64      `dynamodbav:"id"`
	Kind      string     `dynamodbav:"kind"`
	Name      string     `dynamodbav:"name"`
	Surcharge pricesItem `dynamodbav:"surcharge"`
}

type addonItem struct {
	ID        int64      `dynamodbav:"id"`
	Name      string     `dynamodbav:"name"`
	Category  string     `dynamodbav:"category"`
	Mode      string     `dynamodbav:"pricing_type"`
	Price     pricesItem `dynamodbav:"price"`
	UnitPrice pricesItem `dynamodbav:"price_per_unit"`
	Active    bool       `dynamodbav:"active"`
}

type productConfiguratorItem struct {
	ProductID    int64  `dynamodbav:"product_id"`
	ProductName  string `dynamodbav:"product_name"`
	Active       bool   `dynamodbav:"active"`
	Customisable bool   `dynamodbav:"customisable"`

	LengthRange rangeItem `dynamodbav:"length_range"`
	WidthRange  rangeItem `dynamodbav:"width_range"`
	HeightRange rangeItem `dynamodbav:"height_range"`

	RatePerCmLength pricesItem `dynamodbav:"rate_per_cm_length"`
	RatePerCmWidth  pricesItem `dynamodbav:"rate_per_cm_width"`
	RatePerCmHeight pricesItem `dynamodbav:"rate_per_cm_height"`

	Options []optionItem `dynamodbav:"options"`
	Addons  []addonItem  `dynamodbav:"addons"`
}

// ProductConfiguratorDynamoRepository reads and writes the pricing model of
// customisable products.
//
// Table requirements:
//   - PK: product_id (number)
//
// Amounts are stored as decimal strings to keep them exact.
type ProductConfiguratorDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IProductConfiguratorRepository = (*ProductConfiguratorDynamoRepository)(nil)

func NewProductConfiguratorDynamoRepository(ddb DynamoDBAPI, table string) *ProductConfiguratorDynamoRepository {
	return &ProductConfiguratorDynamoRepository{
		ddb:       ddb,
		tableName: tableName(table, "PRODUCT_CONFIGURATORS_TABLE", defaultProductConfiguratorsTableName),
	}
}

func (r *ProductConfiguratorDynamoRepository) GetByProductID(ctx context.Context, productID int64) (entities.ProductConfigurator, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"product_id": &types.AttributeValueMemberN{Value: strconv.FormatInt(productID, 10)},
		},
	})
	if err != nil {
		return entities.ProductConfigurator{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProductConfigurator{}, nil
	}

	var it productConfiguratorItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProductConfigurator{}, err
	}
	return fromProductConfiguratorItem(it), nil
}

func (r *ProductConfiguratorDynamoRepository) Save(ctx context.Context, c entities.ProductConfigurator) error {
	if c.ProductID <= 0 {
		return ErrInvalidProductConfigurator
	}
	av, err := attributevalue.MarshalMap(toProductConfiguratorItem(c))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toProductConfiguratorItem(c entities.ProductConfigurator) productConfiguratorItem {
	it := productConfiguratorItem{
		ProductID:       c.ProductID,
		ProductName:     c.ProductName,
		Active:          c.Active,
		Customisable:    c.Customisable,
		LengthRange:     toRangeItem(c.LengthRange),
		WidthRange:      toRangeItem(c.WidthRange),
		HeightRange:     toRangeItem(c.HeightRange),
		RatePerCmLength: toPricesItem(c.RatePerCmLength),
		RatePerCmWidth:  toPricesItem(c.RatePerCmWidth),
		RatePerCmHeight: toPricesItem(c.RatePerCmHeight),
		Options:         make([]optionItem, 0, len(c.Options)),
		Addons:          make([]addonItem, 0, len(c.Addons)),
	}
	for _, o := range c.Options {
		it.Options = append(it.Options, optionItem{
			ID:        o.ID,
			Kind:      string(o.Kind),
			Name:      o.Name,
			Surcharge: toPricesItem(o.Surcharge),
		})
	}
	for _, a := range c.Addons {
		it.Addons = append(it.Addons, addonItem{
			ID:        a.ID,
			Name:      a.Name,
			Category:  a.Category,
			Mode:      string(a.Mode),
			Price:     toPricesItem(a.Price),
			UnitPrice: toPricesItem(a.UnitPrice),
			Active:    a.Active,
		})
	}
	return it
}

func fromProductConfiguratorItem(it productConfiguratorItem) entities.ProductConfigurator {
	c := entities.ProductConfigurator{
		ProductID:       it.ProductID,
		ProductName:     it.ProductName,
		Active:          it.Active,
		Customisable:    it.Customisable,
		LengthRange:     fromRangeItem(it.LengthRange),
		WidthRange:      fromRangeItem(it.WidthRange),
		HeightRange:     fromRangeItem(it.HeightRange),
		RatePerCmLength: fromPricesItem(it.RatePerCmLength),
		RatePerCmWidth:  fromPricesItem(it.RatePerCmWidth),
		RatePerCmHeight: fromPricesItem(it.RatePerCmHeight),
	}
	for _, o := range it.Options {
		c.Options = append(c.Options, entities.Option{
			ID:        o.ID,
			Kind:      entities.OptionKind(o.Kind),
			Name:      o.Name,
			Surcharge: fromPricesItem(o.Surcharge),
		})
	}
	for _, a := range it.Addons {
		c.Addons = append(c.Addons, entities.Addon{
			ID:        a.ID,
			Name:      a.Name,
			Category:  a.Category,
			Mode:      entities.PricingMode(a.Mode),
			Price:     fromPricesItem(a.Price),
			UnitPrice: fromPricesItem(a.UnitPrice),
			Active:    a.Active,
		})
	}
	return c
}

func toPricesItem(p entities.Prices) pricesItem {
	return pricesItem{CZK: decimalToString(p.CZK), EUR: decimalToString(p.EUR)}
}

func fromPricesItem(it pricesItem) entities.Prices {
	return entities.Prices{CZK: parseDecimal(it.CZK), EUR: parseDecimal(it.EUR)}
}

func toRangeItem(r entities.DimensionRange) rangeItem {
	return rangeItem{Min: decimalToString(r.Min), Max: decimalToString(r.Max)}
}

func fromRangeItem(it rangeItem) entities.DimensionRange {
	return entities.DimensionRange{Min: parseDecimal(it.Min), Max: parseDecimal(it.Max)}
}
