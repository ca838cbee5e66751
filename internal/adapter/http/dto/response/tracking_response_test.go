package response

import (
	"encoding/json"
	"testing"
	"time"

	"storefront_tracking/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromTrackingPage(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	res := FromTrackingPage(entities.TrackingPage{
		ID:        "page-1",
		SessionID: "sess-1",
		Consent:   entities.NewConsentSet("marketing"),
		Ready:     true,
		CreatedAt: now,
		UpdatedAt: now,
	})

	if res.PageID != "page-1" || res.SessionID != "sess-1" || !res.Ready {
		t.Fatalf("unexpected response: %+v", res)
	}
	if len(res.Consent) != 2 {
		t.Fatalf("expected necessary and marketing, got %v", res.Consent)
	}
	if res.ConsentMode[entities.ConsentModeAdStorage] != entities.ConsentModeGranted {
		t.Fatalf("expected ad_storage granted, got %v", res.ConsentMode)
	}
	if res.ConsentMode[entities.ConsentModeAnalyticsStorage] != entities.ConsentModeDenied {
		t.Fatalf("expected analytics_storage denied, got %v", res.ConsentMode)
	}
}

func TestNewEventAccepted(t *testing.T) {
	res := NewEventAccepted("page-1", entities.EventPurchase)
	if res.Event != "purchase" || res.Status != EventStatusAccepted || res.PageID != "page-1" {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestFromPurchase(t *testing.T) {
	res := FromPurchase("page-1", entities.PurchaseData{
		TransactionID: "ORD-9",
		Value:         decimal.NewNullDecimal(decimal.RequireFromString("1210.5")),
		Currency:      "CZK",
		Items:         []entities.ItemData{{ItemID: "a"}, {ItemID: "b"}},
	})
	if res.Value != "1210.50" || res.Items != 2 || res.TransactionID != "ORD-9" {
		t.Fatalf("unexpected response: %+v", res)
	}

	b, _ := json.Marshal(res)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	if _, ok := m["customer_email"]; ok {
		t.Fatalf("empty customer_email should be omitted: %s", b)
	}
}

func TestFromDataLayer(t *testing.T) {
	res := FromDataLayer("page-1", nil)
	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"page_id":"page-1","records":[]}` {
		t.Fatalf("unexpected json: %s", b)
	}
}
