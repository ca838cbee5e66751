package response

import (
	"time"

	"storefront_tracking/internal/domain/entities"
)

type TrackingPageResponse struct {
	PageID      string            `json:"page_id"`
	SessionID   string            `json:"session_id"`
	Consent     []string          `json:"consent"`
	ConsentMode map[string]string `json:"consent_mode"`
	Ready       bool              `json:"ready"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func FromTrackingPage(p entities.TrackingPage) TrackingPageResponse {
	categories := p.Consent.Categories()
	consent := make([]string, 0, len(categories))
	for _, c := range categories {
		consent = append(consent, string(c))
	}
	return TrackingPageResponse{
		PageID:      p.ID,
		SessionID:   p.SessionID,
		Consent:     consent,
		ConsentMode: p.Consent.ConsentMode(),
		Ready:       p.Ready,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// EventAcceptedResponse acknowledges a tracked action. Acceptance says
// nothing about whether the event was pushed, buffered or dropped.
type EventAcceptedResponse struct {
	PageID string `json:"page_id"`
	Event  string `json:"event"`
	Status string `json:"status"`
}

const EventStatusAccepted = "accepted"

func NewEventAccepted(pageID string, kind entities.EventKind) EventAcceptedResponse {
	return EventAcceptedResponse{PageID: pageID, Event: string(kind), Status: EventStatusAccepted}
}

// PurchaseResponse echoes the purchase resolved from a provider payment.
type PurchaseResponse struct {
	PageID        string `json:"page_id"`
	TransactionID string `json:"transaction_id"`
	Value         string `json:"value"`
	Currency      string `json:"currency"`
	CustomerEmail string `json:"customer_email,omitempty"`
	Items         int    `json:"items"`
}

func FromPurchase(pageID string, p entities.PurchaseData) PurchaseResponse {
	return PurchaseResponse{
		PageID:        pageID,
		TransactionID: p.TransactionID,
		Value:         entities.FormatMoney(p.Value.Decimal),
		Currency:      p.Currency,
		CustomerEmail: p.CustomerEmail,
		Items:         len(p.Items),
	}
}

type DataLayerResponse struct {
	PageID  string                     `json:"page_id"`
	Records []entities.DataLayerRecord `json:"records"`
}

func FromDataLayer(pageID string, records []entities.DataLayerRecord) DataLayerResponse {
	if records == nil {
		records = []entities.DataLayerRecord{}
	}
	return DataLayerResponse{PageID: pageID, Records: records}
}
