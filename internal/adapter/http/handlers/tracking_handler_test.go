package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"storefront_tracking/internal/adapter/http/handlers/mocks"
	"storefront_tracking/internal/domain/entities"
	"storefront_tracking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func trackingRouter(h *TrackingHandler) *gin.Engine {
	r := gin.New()
	pages := r.Group("/v1/tracking/pages")
	pages.POST("", h.OpenPage)
	pages.PUT("/:page_id/consent", h.UpdateConsent)
	pages.POST("/:page_id/activate", h.Activate)
	pages.POST("/:page_id/events/:kind", h.TrackEvent)
	pages.POST("/:page_id/purchases/:payment_id", h.PurchaseFromPayment)
	pages.GET("/:page_id/datalayer", h.GetDataLayer)
	pages.DELETE("/:page_id", h.ClosePage)
	return r
}

func doRequest(r *gin.Engine, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestTrackingHandler_OpenPage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Now().UTC()

	t.Run("consent from body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingPageUseCase(ctrl)
		r := trackingRouter(NewTrackingHandler(uc))

		uc.EXPECT().OpenPage(gomock.Any(), "sess-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, sessionID string, consent entities.ConsentSet) (entities.TrackingPage, error) {
				if !consent.Has(entities.ConsentMarketing) {
					t.Fatalf("expected marketing consent, got %v", consent.Categories())
				}
				return entities.TrackingPage{ID: "page-1", SessionID: sessionID, Consent: consent, CreatedAt: now, UpdatedAt: now}, nil
			},
		)

		w := doRequest(r, http.MethodPost, "/v1/tracking/pages", `{"session_id":" sess-1 ","categories":["marketing"]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["page_id"] != "page-1" || body["ready"] != false {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		mode, _ := body["consent_mode"].(map[string]any)
		if mode[entities.ConsentModeAdStorage] != entities.ConsentModeGranted {
			t.Fatalf("unexpected consent mode: %s", w.Body.String())
		}
	})

	t.Run("consent from cookie without body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingPageUseCase(ctrl)
		r := trackingRouter(NewTrackingHandler(uc))

		uc.EXPECT().OpenPage(gomock.Any(), "", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, consent entities.ConsentSet) (entities.TrackingPage, error) {
				if !consent.Has(entities.ConsentAnalytics) || consent.Has(entities.ConsentMarketing) {
					t.Fatalf("expected analytics from cookie, got %v", consent.Categories())
				}
				return entities.TrackingPage{ID: "page-1", SessionID: "generated", Consent: consent}, nil
			},
		)

		cookie := &http.Cookie{Name: entities.ConsentCookieName, Value: url.QueryEscape(`{"categories":["necessary","analytics"]}`)}
		w := doRequest(r, http.MethodPost, "/v1/tracking/pages", "", cookie)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingPageUseCase(ctrl)
		r := trackingRouter(NewTrackingHandler(uc))

		w := doRequest(r, http.MethodPost, "/v1/tracking/pages", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "INVALID_TRACKING_INPUT" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("store not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingPageUseCase(ctrl)
		r := trackingRouter(NewTrackingHandler(uc))

		uc.EXPECT().OpenPage(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.TrackingPage{}, usecase.ErrDataLayerStoreNotConfigured)

		w := doRequest(r, http.MethodPost, "/v1/tracking/pages", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestTrackingHandler_ConsentAndActivate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("update consent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingPageUseCase(ctrl)
		r := trackingRouter(NewTrackingHandler(uc))

		uc.EXPECT().UpdateConsent(gomock.Any(), "page-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, pageID string, consent entities.ConsentSet) (entities.TrackingPage, error) {
				if len(consent.Categories()) != 1 {
					t.Fatalf("explicit empty list means necessary only, got %v", consent.Categories())
				}
				return entities.TrackingPage{ID: pageID, Consent: consent, Ready: true}, nil
			},
		)

		w := doRequest(r, http.MethodPut, "/v1/tracking/pages/page-1/consent", `{"categories":[]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["ready"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("activate unknown page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingPageUseCase(ctrl)
		r := trackingRouter(NewTrackingHandler(uc))

		uc.EXPECT().Activate(gomock.Any(), "missing").Return(entities.TrackingPage{}, usecase.ErrTrackingPageNotFound)

		w := doRequest(r, http.MethodPost, "/v1/tracking/pages/missing/activate", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "TRACKING_PAGE_NOT_FOUND" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestTrackingHandler_TrackEvent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingPageUseCase(ctrl)
		r := trackingRouter(NewTrackingHandler(uc))

		w := doRequest(r, http.MethodPost, "/v1/tracking/pages/page-1/events/refund", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "UNKNOWN_EVENT_KIND" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingPageUseCase(ctrl)
		r := trackingRouter(NewTrackingHandler(uc))

		w := doRequest(r, http.MethodPost, "/v1/tracking/pages/page-1/events/view_item", `{"price":`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("view item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingPageUseCase(ctrl)
		r := trackingRouter(NewTrackingHandler(uc))

		uc.EXPECT().TrackViewItem(gomock.Any(), "page-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, data entities.ViewItemData) error {
				if data.ItemID != "sku-1" || !data.Price.Decimal.Equal(decimal.NewFromInt(1000)) {
					t.Fatalf("unexpected data: %+v", data)
				}
				return nil
			},
		)

		w := doRequest(r, http.MethodPost, "/v1/tracking/pages/page-1/events/VIEW_ITEM", `{"item_id":"sku-1","price":1000}`)
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["event"] != "view_item" || body["status"] != "accepted" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("add to cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingPageUseCase(ctrl)
		r := trackingRouter(NewTrackingHandler(uc))

		uc.EXPECT().TrackAddToCart(gomock.Any(), "page-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, data entities.AddToCartData) error {
				if data.EventID != "add-1" || data.Quantity == nil || *data.Quantity != 2 {
					t.Fatalf("unexpected data: %+v", data)
				}
				return nil
			},
		)

		w := doRequest(r, http.MethodPost, "/v1/tracking/pages/page-1/events/add_to_cart", `{"item_id":"sku-1","price":250,"quantity":2,"event_id":"add-1"}`)
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
	})

	t.Run("begin checkout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingPageUseCase(ctrl)
		r := trackingRouter(NewTrackingHandler(uc))

		uc.EXPECT().TrackBeginCheckout(gomock.Any(), "page-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, data entities.CheckoutData) error {
				if len(data.Items) != 1 || data.Coupon != "SPRING" {
					t.Fatalf("unexpected data: %+v", data)
				}
				return nil
			},
		)

		w := doRequest(r, http.MethodPost, "/v1/tracking/pages/page-1/events/begin_checkout", `{"items":[{"item_id":"sku-1","price":10}],"value":10,"coupon":"SPRING"}`)
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
	})

	t.Run("purchase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingPageUseCase(ctrl)
		r := trackingRouter(NewTrackingHandler(uc))

		uc.EXPECT().TrackPurchase(gomock.Any(), "page-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, data entities.PurchaseData) error {
				if data.TransactionID != "ORD-1" || !data.ValueNoVAT.Valid {
					t.Fatalf("unexpected data: %+v", data)
				}
				return nil
			},
		)

		w := doRequest(r, http.MethodPost, "/v1/tracking/pages/page-1/events/purchase",
			`{"transaction_id":"ORD-1","value":1210,"value_no_vat":1000,"items":[{"item_id":"sku-1","price":1210}]}`)
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
	})

	t.Run("contact click from href", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingPageUseCase(ctrl)
		r := trackingRouter(NewTrackingHandler(uc))

		uc.EXPECT().TrackContactClick(gomock.Any(), "page-1", entities.ContactEmail).Return(nil)

		w := doRequest(r, http.MethodPost, "/v1/tracking/pages/page-1/events/contact_click", `{"href":"mailto:shop@example.com"}`)
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
	})

	t.Run("unknown page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingPageUseCase(ctrl)
		r := trackingRouter(NewTrackingHandler(uc))

		uc.EXPECT().TrackViewItem(gomock.Any(), "missing", gomock.Any()).Return(usecase.ErrTrackingPageNotFound)

		w := doRequest(r, http.MethodPost, "/v1/tracking/pages/missing/events/view_item", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestTrackingHandler_PurchaseFromPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mapped := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid payment id", usecase.ErrInvalidPaymentID, http.StatusBadRequest},
		{"payment not found", usecase.ErrPaymentNotFound, http.StatusNotFound},
		{"not approved", usecase.ErrPaymentNotApproved, http.StatusConflict},
		{"provider unauthorized", usecase.ErrPaymentGatewayUnauthorized, http.StatusBadGateway},
		{"gateway not configured", usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range mapped {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockITrackingPageUseCase(ctrl)
			r := trackingRouter(NewTrackingHandler(uc))

			uc.EXPECT().TrackPurchaseFromPayment(gomock.Any(), "page-1", "123", gomock.Any()).Return(entities.PurchaseData{}, tc.err)

			w := doRequest(r, http.MethodPost, "/v1/tracking/pages/page-1/purchases/123", "")
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingPageUseCase(ctrl)
		r := trackingRouter(NewTrackingHandler(uc))

		uc.EXPECT().TrackPurchaseFromPayment(gomock.Any(), "page-1", "123", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, order entities.PurchaseData) (entities.PurchaseData, error) {
				if !order.ValueNoVAT.Valid {
					t.Fatalf("expected VAT split from body, got %+v", order)
				}
				order.TransactionID = "ORD-9"
				order.Value = decimal.NewNullDecimal(decimal.NewFromInt(1210))
				order.Currency = "CZK"
				order.Items = []entities.ItemData{{ItemID: "ORD-9"}}
				return order, nil
			},
		)

		w := doRequest(r, http.MethodPost, "/v1/tracking/pages/page-1/purchases/123", `{"value_no_vat":1000}`)
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["transaction_id"] != "ORD-9" || body["value"] != "1210.00" || body["items"] != float64(1) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestTrackingHandler_DataLayerAndClose(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("data layer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingPageUseCase(ctrl)
		r := trackingRouter(NewTrackingHandler(uc))

		uc.EXPECT().DataLayer(gomock.Any(), "page-1").Return([]entities.DataLayerRecord{
			{"event": "view_item"},
			{"event": "begin_checkout"},
		}, nil)

		w := doRequest(r, http.MethodGet, "/v1/tracking/pages/page-1/datalayer", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		records, _ := decodeBody(t, w)["records"].([]any)
		if len(records) != 2 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("close", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingPageUseCase(ctrl)
		r := trackingRouter(NewTrackingHandler(uc))

		uc.EXPECT().ClosePage(gomock.Any(), "page-1").Return(nil)

		w := doRequest(r, http.MethodDelete, "/v1/tracking/pages/page-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("close unknown page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingPageUseCase(ctrl)
		r := trackingRouter(NewTrackingHandler(uc))

		uc.EXPECT().ClosePage(gomock.Any(), "page-1").Return(usecase.ErrTrackingPageNotFound)

		w := doRequest(r, http.MethodDelete, "/v1/tracking/pages/page-1", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
