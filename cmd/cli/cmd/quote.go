package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"text/tabwriter"
	"time"

	"storefront_tracking/internal/adapter/persistence/repository"
	"storefront_tracking/internal/domain/entities"
	"storefront_tracking/internal/infrastructure/database"
	"storefront_tracking/internal/infrastructure/pricing"
	"storefront_tracking/internal/infrastructure/scheduler"
	"storefront_tracking/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	quoteProductID    int64
	quoteLength       string
	quoteWidth        string
	quoteHeight       string
	quoteOptions      []string
	quoteAddons       []int64
	quoteQuantity     int
	quoteCurrency     string
	quoteURL          string
	quoteConfigurator string
	quoteRequired     []string
	quoteTimeout      time.Duration
	quoteJSON         bool
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price a product configuration against the calculate-price endpoint",
	Long: `Runs the configurator price calculator: a local estimate is computed from the
product configurator and then reconciled with the authoritative endpoint.

The configurator is read from --configurator (JSON) or from the DynamoDB catalog.

Examples:
  storefront-tracking quote --product 12 --length 300 --width 200 --height 250
  storefront-tracking quote --product 12 --length 300 --width 200 --height 250 \
    --option design=3 --option glaze=7 --addon 21 --quantity 2 --currency EUR`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().Int64VarP(&quoteProductID, "product", "p", 0, "product id")
	quoteCmd.Flags().StringVar(&quoteLength, "length", "", "length in cm")
	quoteCmd.Flags().StringVar(&quoteWidth, "width", "", "width in cm")
	quoteCmd.Flags().StringVar(&quoteHeight, "height", "", "height in cm")
	quoteCmd.Flags().StringSliceVar(&quoteOptions, "option", nil, "discrete option as kind=id (design, glaze, roof_color)")
	quoteCmd.Flags().Int64SliceVar(&quoteAddons, "addon", nil, "addon id")
	quoteCmd.Flags().IntVarP(&quoteQuantity, "quantity", "q", 1, "ordered quantity")
	quoteCmd.Flags().StringVarP(&quoteCurrency, "currency", "c", "CZK", "display currency (CZK, EUR)")
	quoteCmd.Flags().StringVar(&quoteURL, "url", "", "calculate-price endpoint (default from CALCULATE_PRICE_URL)")
	quoteCmd.Flags().StringVar(&quoteConfigurator, "configurator", "", "product configurator JSON file")
	quoteCmd.Flags().StringSliceVar(&quoteRequired, "require", nil, "option kinds that must be selected to submit")
	quoteCmd.Flags().DurationVar(&quoteTimeout, "timeout", 15*time.Second, "how long to wait for the authoritative price")
	quoteCmd.Flags().BoolVar(&quoteJSON, "json", false, "print the result as JSON")
	_ = quoteCmd.MarkFlagRequired("product")
}

func runQuote(cmd *cobra.Command, _ []string) error {
	currency, ok := entities.ParseCurrency(quoteCurrency)
	if !ok {
		return fmt.Errorf("unsupported currency: %s", quoteCurrency)
	}

	conf, err := loadConfigurator(cmd.Context(), quoteProductID)
	if err != nil {
		return err
	}

	url := quoteURL
	if url == "" {
		url = cfg.Pricing.CalculatePriceURL
	}

	required := make([]entities.OptionKind, 0, len(quoteRequired))
	for _, k := range quoteRequired {
		required = append(required, entities.OptionKind(strings.TrimSpace(k)))
	}

	var waiting atomic.Bool
	settled := make(chan struct{}, 1)
	calc := usecase.NewPriceCalculator(
		usecase.PriceCalculatorConfig{
			Configurator:        conf,
			Currency:            currency,
			RequiredOptionKinds: required,
		},
		pricing.NewHTTPQuoteClient(url, nil),
		scheduler.NewDebouncer(cfg.Pricing.DebounceDelay),
		func(v usecase.PriceView) {
			if waiting.Load() && !v.Calculating {
				select {
				case settled <- struct{}{}:
				default:
				}
			}
		},
	)
	defer calc.Close()

	for _, raw := range quoteOptions {
		kind, id, err := parseOptionFlag(raw)
		if err != nil {
			return err
		}
		calc.SelectOption(kind, id)
	}
	for _, id := range quoteAddons {
		calc.SetAddon(id, true)
	}
	calc.SetQuantity(quoteQuantity)

	dims := []struct {
		dim entities.Dimension
		raw string
	}{
		{entities.DimensionLength, quoteLength},
		{entities.DimensionWidth, quoteWidth},
		{entities.DimensionHeight, quoteHeight},
	}
	for _, d := range dims {
		v, err := decimal.NewFromString(strings.TrimSpace(d.raw))
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", d.dim, d.raw, err)
		}
		calc.SetDimension(d.dim, v)
	}

	waiting.Store(true)
	if calc.View().Calculating {
		select {
		case <-settled:
		case <-time.After(quoteTimeout):
			return errors.New("timed out waiting for the authoritative price")
		}
	}

	return printView(cmd.OutOrStdout(), calc.View(), calc.QuoteRequests())
}

func loadConfigurator(ctx context.Context, productID int64) (entities.ProductConfigurator, error) {
	if quoteConfigurator != "" {
		raw, err := os.ReadFile(quoteConfigurator)
		if err != nil {
			return entities.ProductConfigurator{}, err
		}
		var conf entities.ProductConfigurator
		if err := json.Unmarshal(raw, &conf); err != nil {
			return entities.ProductConfigurator{}, fmt.Errorf("configurator file: %w", err)
		}
		if conf.ProductID == 0 {
			conf.ProductID = productID
		}
		return conf, nil
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ddb, err := database.NewDynamoDBClient(ctx, database.OptionsFromEnv())
	if err != nil {
		return entities.ProductConfigurator{}, fmt.Errorf("dynamodb: %w", err)
	}
	repo := repository.NewProductConfiguratorDynamoRepository(ddb, cfg.ProductConfiguratorsTable)
	conf, err := repo.GetByProductID(ctx, productID)
	if err != nil {
		return entities.ProductConfigurator{}, err
	}
	if conf.ProductID == 0 {
		return entities.ProductConfigurator{}, fmt.Errorf("product %d not found in catalog", productID)
	}
	return conf, nil
}

func parseOptionFlag(raw string) (entities.OptionKind, int64, error) {
	kind, id, found := strings.Cut(raw, "=")
	if !found {
		return "", 0, fmt.Errorf("option %q must be kind=id", raw)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil || n <= 0 {
		return "", 0, fmt.Errorf("option %q has an invalid id", raw)
	}
	return entities.OptionKind(strings.TrimSpace(kind)), n, nil
}

func printView(w io.Writer, v usecase.PriceView, requests int) error {
	if quoteJSON {
		out := struct {
			Currency      string            `json:"currency"`
			Lines         map[string]string `json:"lines"`
			UnitPrice     string            `json:"unit_price"`
			Total         string            `json:"total"`
			Quantity      int               `json:"quantity"`
			Authoritative bool              `json:"authoritative"`
			SubmitEnabled bool              `json:"submit_enabled"`
			Error         string            `json:"error,omitempty"`
			Requests      int               `json:"requests"`
		}{
			Currency:      string(v.Currency),
			Lines:         make(map[string]string, len(v.Lines)),
			UnitPrice:     entities.FormatMoney(v.UnitPrice),
			Total:         entities.FormatMoney(v.Total),
			Quantity:      v.Quantity,
			Authoritative: v.Authoritative,
			SubmitEnabled: v.SubmitEnabled,
			Requests:      requests,
		}
		for _, l := range v.Lines {
			out.Lines[l.Label] = entities.FormatMoney(l.Amount)
		}
		if v.Err != nil {
			out.Error = v.Err.Error()
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, l := range v.Lines {
		fmt.Fprintf(tw, "%s\t%s %s\n", l.Label, entities.FormatMoney(l.Amount), v.Currency)
	}
	fmt.Fprintf(tw, "unit price\t%s %s\n", entities.FormatMoney(v.UnitPrice), v.Currency)
	fmt.Fprintf(tw, "total (x%d)\t%s %s\n", v.Quantity, entities.FormatMoney(v.Total), v.Currency)
	source := "local estimate"
	if v.Authoritative {
		source = "server"
	}
	fmt.Fprintf(tw, "source\t%s (%d request(s))\n", source, requests)
	if v.Err != nil {
		fmt.Fprintf(tw, "error\t%s\n", v.Err.Error())
	}
	fmt.Fprintf(tw, "submit\t%t\n", v.SubmitEnabled)
	return tw.Flush()
}
