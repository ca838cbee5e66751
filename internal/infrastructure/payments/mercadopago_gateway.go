package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"storefront_tracking/internal/domain/entities"
	"storefront_tracking/internal/logging"
	"storefront_tracking/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidMercadoPagoPaymentID = fmt.Errorf("mercado pago: %w", entities.ErrInvalidProviderPaymentID)

// mockPaymentAmountEnv sets the amount reported by mock payments.
const mockPaymentAmountEnv = "PAYMENT_GATEWAY_MOCK_AMOUNT"

// MercadoPagoGateway looks payments up in Mercado Pago.
//
// In mock mode (PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK) every id resolves to
// an approved payment without calling the provider.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	log      *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	log := logging.Named("payments")
	if isPaymentGatewayMockEnabled() {
		log.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, log: log}, nil
	}

	if accessToken == "" {
		log.Warn("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), log: log}, nil
}

// providerPayment is the subset of the Mercado Pago payment resource that
// the tracking service reads.
type providerPayment struct {
	ID                json.Number `json:"id"`
	Status            string      `json:"status"`
	CurrencyID        string      `json:"currency_id"`
	TransactionAmount json.Number `json:"transaction_amount"`
	ExternalReference string      `json:"external_reference"`
	Payer             struct {
		Email string `json:"email"`
	} `json:"payer"`
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, providerPaymentID string) (entities.ProviderPayment, error) {
	providerPaymentID = strings.TrimSpace(providerPaymentID)
	id, err := strconv.Atoi(providerPaymentID)
	if err != nil || id <= 0 {
		return entities.ProviderPayment{}, ErrInvalidMercadoPagoPaymentID
	}

	if g != nil && g.mockMode {
		g.log.Info("[payment][gateway] mock get", zap.String("provider_payment_id", providerPaymentID))
		amount := decimal.NewFromInt(100)
		if v, err := decimal.NewFromString(strings.TrimSpace(os.Getenv(mockPaymentAmountEnv))); err == nil {
			amount = v
		}
		return entities.ProviderPayment{
			ID:       providerPaymentID,
			Status:   entities.ProviderPaymentStatusApproved,
			Currency: "CZK",
			Amount:   amount,
		}, nil
	}

	if g == nil || g.client == nil {
		return entities.ProviderPayment{}, ErrMercadoPagoGatewayNotConfigured
	}
	g.log.Info("[payment][gateway] get start", zap.String("provider_payment_id", providerPaymentID))

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		g.log.Error("[payment][gateway] sdk get failed", zap.String("provider_payment_id", providerPaymentID), zap.Error(err))
		return entities.ProviderPayment{}, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		g.log.Error("[payment][gateway] response marshal failed", zap.Error(err))
		return entities.ProviderPayment{}, err
	}
	p, err := decodeProviderPayment(b)
	if err != nil {
		g.log.Error("[payment][gateway] response decode failed", zap.Error(err))
		return entities.ProviderPayment{}, err
	}

	g.log.Info("[payment][gateway] get success",
		zap.String("provider_payment_id", p.ID), zap.String("provider_status", p.Status))
	return p, nil
}

func decodeProviderPayment(raw []byte) (entities.ProviderPayment, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var pp providerPayment
	if err := dec.Decode(&pp); err != nil {
		return entities.ProviderPayment{}, err
	}

	amount := decimal.Zero
	if pp.TransactionAmount != "" {
		v, err := decimal.NewFromString(pp.TransactionAmount.String())
		if err != nil {
			return entities.ProviderPayment{}, fmt.Errorf("transaction_amount: %w", err)
		}
		amount = v
	}

	return entities.ProviderPayment{
		ID:                pp.ID.String(),
		Status:            pp.Status,
		ExternalReference: strings.TrimSpace(pp.ExternalReference),
		Currency:          strings.ToUpper(strings.TrimSpace(pp.CurrencyID)),
		Amount:            amount,
		PayerEmail:        strings.TrimSpace(pp.Payer.Email),
	}, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
