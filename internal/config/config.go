// Package config loads service configuration from the environment.
//
// Values are read once at startup. A local `.env` file is picked up by the
// binaries through godotenv's autoload import.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"storefront_tracking/internal/logging"
)

const (
	DefaultPort            = 8080
	DefaultCurrency        = "CZK"
	DefaultDebounceDelay   = 400 * time.Millisecond
	DefaultSessionFlagTTL  = 24 * time.Hour
	DefaultPageIdleTTL     = 30 * time.Minute
	DefaultMaxOpenPages    = 10000
	defaultItemBrand       = "Unknown brand"
	defaultItemCategory    = "Unknown category"
	defaultItemName        = "Unknown item"
	defaultContactValueCZK = "10.00"
)

// Config is the main application configuration
type Config struct {
	Port    int
	Logging logging.Config

	// Tables
	SessionFlagsTable         string
	ProductConfiguratorsTable string
	SessionFlagTTL            time.Duration

	MercadoPagoAccessToken string

	Tracking TrackingConfig
	Pricing  PricingConfig
}

// TrackingConfig holds destination ids and payload defaults for the dispatcher.
type TrackingConfig struct {
	GoogleAdsID      string
	AdsLabels        map[string]string // event kind -> conversion label
	SklikRetargeting string
	SklikPurchase    string
	SklikCheckout    string
	HeurekaAPIKey    string

	DefaultCurrency string
	DefaultBrand    string
	DefaultCategory string
	DefaultItemName string
	ContactValue    string

	// Open tracking pages are evicted after PageIdleTTL without activity or
	// when MaxOpenPages is reached.
	PageIdleTTL  time.Duration
	MaxOpenPages int
}

// PricingConfig holds settings for the configurator price calculator.
type PricingConfig struct {
	CalculatePriceURL string
	DebounceDelay     time.Duration
}

// Load reads the configuration from environment variables.
func Load() Config {
	return Config{
		Port: getenvInt("PORT", DefaultPort),
		Logging: logging.Config{
			Level:       getenvDefault("LOG_LEVEL", "info"),
			Format:      getenvDefault("LOG_FORMAT", "console"),
			Output:      getenvDefault("LOG_OUTPUT", "stderr"),
			Development: getenvBool("LOG_DEVELOPMENT"),
		},
		SessionFlagsTable:         getenvDefault("SESSION_FLAGS_TABLE", "session_flags"),
		ProductConfiguratorsTable: getenvDefault("PRODUCT_CONFIGURATORS_TABLE", "product_configurators"),
		SessionFlagTTL:            getenvDuration("SESSION_FLAG_TTL", DefaultSessionFlagTTL),
		MercadoPagoAccessToken:    os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		Tracking: TrackingConfig{
			GoogleAdsID: os.Getenv("GOOGLE_ADS_ID"),
			AdsLabels: map[string]string{
				"view_item":      os.Getenv("GOOGLE_ADS_LABEL_VIEW_ITEM"),
				"add_to_cart":    os.Getenv("GOOGLE_ADS_LABEL_ADD_TO_CART"),
				"begin_checkout": os.Getenv("GOOGLE_ADS_LABEL_BEGIN_CHECKOUT"),
				"purchase":       os.Getenv("GOOGLE_ADS_LABEL_PURCHASE"),
				"contact_click":  os.Getenv("GOOGLE_ADS_LABEL_CONTACT"),
			},
			SklikRetargeting: os.Getenv("SKLIK_RETARGETING_ID"),
			SklikPurchase:    os.Getenv("SKLIK_PURCHASE_ID"),
			SklikCheckout:    os.Getenv("SKLIK_BEGIN_CHECKOUT_ID"),
			HeurekaAPIKey:    os.Getenv("HEUREKA_API_KEY"),
			DefaultCurrency:  strings.ToUpper(getenvDefault("DEFAULT_CURRENCY", DefaultCurrency)),
			DefaultBrand:     getenvDefault("DEFAULT_ITEM_BRAND", defaultItemBrand),
			DefaultCategory:  getenvDefault("DEFAULT_ITEM_CATEGORY", defaultItemCategory),
			DefaultItemName:  getenvDefault("DEFAULT_ITEM_NAME", defaultItemName),
			ContactValue:     getenvDefault("CONTACT_CONVERSION_VALUE", defaultContactValueCZK),
			PageIdleTTL:      getenvDuration("TRACKING_PAGE_IDLE_TTL", DefaultPageIdleTTL),
			MaxOpenPages:     getenvInt("TRACKING_MAX_OPEN_PAGES", DefaultMaxOpenPages),
		},
		Pricing: PricingConfig{
			CalculatePriceURL: getenvDefault("CALCULATE_PRICE_URL", "http://localhost:8080/v1/product/calculate-price"),
			DebounceDelay:     getenvDuration("PRICE_DEBOUNCE_DELAY", DefaultDebounceDelay),
		},
	}
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func getenvDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
