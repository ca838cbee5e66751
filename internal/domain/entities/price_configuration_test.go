package entities

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testConfigurator() ProductConfigurator {
	return ProductConfigurator{
		ProductID:       12,
		Active:          true,
		Customisable:    true,
		LengthRange:     DimensionRange{Min: dec("100"), Max: dec("600")},
		WidthRange:      DimensionRange{Min: dec("100"), Max: dec("400")},
		HeightRange:     DimensionRange{Min: dec("150"), Max: dec("300")},
		RatePerCmLength: Prices{CZK: dec("10"), EUR: dec("0.4")},
		RatePerCmWidth:  Prices{CZK: dec("5"), EUR: dec("0.2")},
		RatePerCmHeight: Prices{CZK: dec("2"), EUR: dec("0.08")},
		Options: []Option{
			{ID: 3, Kind: OptionDesign, Name: "Modern", Surcharge: Prices{CZK: dec("500"), EUR: dec("20")}},
			{ID: 7, Kind: OptionGlaze, Name: "Oak", Surcharge: Prices{CZK: dec("0"), EUR: dec("0")}},
		},
		Addons: []Addon{
			{ID: 21, Name: "Floor", Mode: PricingPerSquareMeter, UnitPrice: Prices{CZK: dec("50"), EUR: dec("2")}, Active: true},
			{ID: 22, Name: "Gutter", Mode: PricingPerCmLength, UnitPrice: Prices{CZK: dec("1.5"), EUR: dec("0.06")}, Active: true},
			{ID: 23, Name: "Shelf", Mode: PricingFixed, Price: Prices{CZK: dec("990"), EUR: dec("39.9")}, Active: true},
			{ID: 24, Name: "Broken", Mode: PricingFixed, Price: Prices{CZK: dec("-5"), EUR: dec("-1")}, Active: true},
		},
	}
}

func TestAddon_PriceFor(t *testing.T) {
	dims := Dimensions{Length: dec("300"), Width: dec("200"), Height: dec("250")}
	conf := testConfigurator()

	cases := []struct {
		id   int64
		cur  Currency
		want string
	}{
		{21, CurrencyCZK, "300.00"},
		{21, CurrencyEUR, "12.00"},
		{22, CurrencyCZK, "450.00"},
		{23, CurrencyEUR, "39.90"},
		{24, CurrencyCZK, "0.00"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d_%s", tc.id, tc.cur), func(t *testing.T) {
			a, ok := conf.FindAddon(tc.id)
			require.True(t, ok)
			assert.Equal(t, tc.want, FormatMoney(a.PriceFor(dims, tc.cur)))
		})
	}

	t.Run("dimensional addon without dimension", func(t *testing.T) {
		a, _ := conf.FindAddon(21)
		assert.True(t, a.PriceFor(Dimensions{Length: dec("300")}, CurrencyCZK).IsZero())
	})
}

func TestProductConfigurator_ValidateDimensions(t *testing.T) {
	conf := testConfigurator()

	require.NoError(t, conf.ValidateDimensions(Dimensions{Length: dec("300"), Width: dec("200"), Height: dec("250")}))

	err := conf.ValidateDimensions(Dimensions{Length: dec("700"), Width: dec("200"), Height: dec("250")})
	var dimErr *DimensionError
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(t, DimensionLength, dimErr.Dimension)
	assert.Contains(t, err.Error(), "length 700 cm")

	err = conf.ValidateDimensions(Dimensions{Length: dec("300"), Width: dec("200")})
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(t, DimensionHeight, dimErr.Dimension)
}

func TestProductConfigurator_BasePrice(t *testing.T) {
	conf := testConfigurator()
	dims := Dimensions{Length: dec("300"), Width: dec("200"), Height: dec("250")}

	// 300*10 + 200*5 + 250*2
	assert.Equal(t, "4500.00", FormatMoney(conf.BasePrice(dims, CurrencyCZK)))
	// 300*0.4 + 200*0.2 + 250*0.08
	assert.Equal(t, "180.00", FormatMoney(conf.BasePrice(dims, CurrencyEUR)))
}

func TestPriceBreakdown(t *testing.T) {
	b := PriceBreakdown{
		Currency: CurrencyCZK,
		Base:     dec("4500"),
		Options:  map[OptionKind]decimal.Decimal{OptionDesign: dec("500"), OptionGlaze: dec("0")},
		Addons: []BreakdownLine{
			{Label: "Floor", Amount: dec("300")},
			{Label: "Broken", Amount: dec("-5")},
		},
		Quantity: 2,
	}

	assert.Equal(t, "5300.00", FormatMoney(b.UnitPrice()))
	assert.Equal(t, "10600.00", FormatMoney(b.Total()))

	labels := make([]string, 0)
	for _, l := range b.Lines() {
		labels = append(labels, l.Label)
	}
	assert.Equal(t, []string{"base", "design", "Floor"}, labels)

	b.Quantity = 0
	assert.Equal(t, "0.00", FormatMoney(b.Total()))
	assert.Equal(t, "5300.00", FormatMoney(b.UnitPrice()))

	b.Quantity = -2
	assert.True(t, b.Total().IsZero())
}

func TestPriceQuote_Breakdown(t *testing.T) {
	q := PriceQuote{
		Base:    Prices{CZK: dec("4500"), EUR: dec("180")},
		Options: map[OptionKind]Prices{OptionDesign: {CZK: dec("500"), EUR: dec("20")}},
		Addons:  []AddonQuote{{Name: "Floor", Price: Prices{CZK: dec("300"), EUR: dec("12")}}},
	}

	b := q.Breakdown(CurrencyEUR, 3)
	assert.Equal(t, "212.00", FormatMoney(b.UnitPrice()))
	assert.Equal(t, "636.00", FormatMoney(b.Total()))
}

func TestParseCurrency(t *testing.T) {
	c, ok := ParseCurrency(" eur ")
	assert.True(t, ok)
	assert.Equal(t, CurrencyEUR, c)

	_, ok = ParseCurrency("USD")
	assert.False(t, ok)
}
