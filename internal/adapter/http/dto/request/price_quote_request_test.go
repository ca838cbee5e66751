package request

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestCalculatePriceRequest_ToQuoteRequest(t *testing.T) {
	raw := `{
		"productId": 12,
		"customDimensions": {"length": 300, "width": "200.5"},
		"selectedOptionIds": [3, 0, -1, 7],
		"selectedAddonIds": null
	}`
	var r CalculatePriceRequest
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("decode: %v", err)
	}

	q := r.ToQuoteRequest()
	if q.ProductID != 12 {
		t.Fatalf("expected product 12, got %d", q.ProductID)
	}
	if q.Dimensions.Length.String() != "300" || q.Dimensions.Width.String() != "200.5" {
		t.Fatalf("unexpected dimensions: %+v", q.Dimensions)
	}
	if !q.Dimensions.Height.IsZero() {
		t.Fatalf("missing height should be zero, got %s", q.Dimensions.Height)
	}
	if !reflect.DeepEqual(q.SelectedOptionIDs, []int64{3, 7}) {
		t.Fatalf("unexpected option ids: %v", q.SelectedOptionIDs)
	}
	if q.SelectedAddonIDs == nil || len(q.SelectedAddonIDs) != 0 {
		t.Fatalf("expected empty addon ids, got %#v", q.SelectedAddonIDs)
	}
}
