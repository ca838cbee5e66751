package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"storefront_tracking/internal/domain/entities"
	"storefront_tracking/internal/usecase/interfaces"
	mock_interfaces "storefront_tracking/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeDataLayers keeps one recording queue per page.
type fakeDataLayers struct {
	mu        sync.Mutex
	queues    map[string]*recordingQueue
	openErr   error
	discarded []string
}

func newFakeDataLayers() *fakeDataLayers {
	return &fakeDataLayers{queues: make(map[string]*recordingQueue)}
}

func (s *fakeDataLayers) Open(_ context.Context, pageID string) (interfaces.IOutboundQueue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.openErr != nil {
		return nil, s.openErr
	}
	q, ok := s.queues[pageID]
	if !ok {
		q = &recordingQueue{}
		s.queues[pageID] = q
	}
	return q, nil
}

func (s *fakeDataLayers) Records(_ context.Context, pageID string) ([]entities.DataLayerRecord, error) {
	s.mu.Lock()
	q, ok := s.queues[pageID]
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]entities.DataLayerRecord(nil), q.records...), nil
}

func (s *fakeDataLayers) Discard(_ context.Context, pageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.queues, pageID)
	s.discarded = append(s.discarded, pageID)
	return nil
}

func eventsOf(records []entities.DataLayerRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Event())
	}
	return out
}

func newTrackingUseCase(stores interfaces.IDataLayerStore, gateway interfaces.IPaymentGateway) *TrackingPageUseCase {
	return NewTrackingPageUseCase(testDispatcherConfig(), DefaultPayloadDefaults(), PageRetention{}, newMemorySessions(), stores, gateway)
}

func TestTrackingPageUseCase_OpenPage(t *testing.T) {
	ctx := context.Background()

	t.Run("store not configured", func(t *testing.T) {
		uc := NewTrackingPageUseCase(testDispatcherConfig(), DefaultPayloadDefaults(), PageRetention{}, newMemorySessions(), nil, nil)
		_, err := uc.OpenPage(ctx, "sess-1", entities.NewConsentSet())
		assert.ErrorIs(t, err, ErrDataLayerStoreNotConfigured)
	})

	t.Run("generates a session id", func(t *testing.T) {
		uc := newTrackingUseCase(newFakeDataLayers(), nil)
		page, err := uc.OpenPage(ctx, "  ", entities.NewConsentSet("analytics"))
		require.NoError(t, err)
		assert.NotEmpty(t, page.ID)
		assert.NotEmpty(t, page.SessionID)
		assert.NotEqual(t, page.ID, page.SessionID)
		assert.False(t, page.Ready)
		assert.True(t, page.Consent.Has(entities.ConsentAnalytics))
		assert.False(t, page.CreatedAt.IsZero())
	})

	t.Run("keeps the given session id", func(t *testing.T) {
		uc := newTrackingUseCase(newFakeDataLayers(), nil)
		page, err := uc.OpenPage(ctx, " sess-9 ", entities.NewConsentSet())
		require.NoError(t, err)
		assert.Equal(t, "sess-9", page.SessionID)
	})
}

func TestTrackingPageUseCase_BufferUntilActivated(t *testing.T) {
	ctx := context.Background()
	stores := newFakeDataLayers()
	uc := newTrackingUseCase(stores, nil)

	page, err := uc.OpenPage(ctx, "sess-1", entities.NewConsentSet("analytics"))
	require.NoError(t, err)

	require.NoError(t, uc.TrackViewItem(ctx, page.ID, sampleView()))
	records, err := uc.DataLayer(ctx, page.ID)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)

	activated, err := uc.Activate(ctx, page.ID)
	require.NoError(t, err)
	assert.True(t, activated.Ready)

	records, err = uc.DataLayer(ctx, page.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"view_item"}, eventsOf(records))

	_, err = uc.Activate(ctx, page.ID)
	require.NoError(t, err)
	records, _ = uc.DataLayer(ctx, page.ID)
	assert.Len(t, records, 1, "activating twice does not replay")
}

func TestTrackingPageUseCase_UpdateConsent(t *testing.T) {
	ctx := context.Background()
	uc := newTrackingUseCase(newFakeDataLayers(), nil)

	page, err := uc.OpenPage(ctx, "sess-1", entities.NewConsentSet("analytics"))
	require.NoError(t, err)
	require.NoError(t, uc.TrackBeginCheckout(ctx, page.ID, sampleCheckout()))
	require.NoError(t, uc.TrackContactClick(ctx, page.ID, "phone"))

	updated, err := uc.UpdateConsent(ctx, page.ID, entities.NewConsentSet("analytics", "marketing"))
	require.NoError(t, err)
	assert.True(t, updated.Ready)
	assert.True(t, updated.Consent.Has(entities.ConsentMarketing))
	assert.False(t, updated.UpdatedAt.Before(page.UpdatedAt))

	records, err := uc.DataLayer(ctx, page.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{RecordConsentUpdate, "begin_checkout", "sklik_begin_checkout"}, eventsOf(records))
}

func TestTrackingPageUseCase_CheckoutOncePerSession(t *testing.T) {
	ctx := context.Background()
	uc := newTrackingUseCase(newFakeDataLayers(), nil)

	first, err := uc.OpenPage(ctx, "sess-1", entities.NewConsentSet("analytics"))
	require.NoError(t, err)
	_, err = uc.Activate(ctx, first.ID)
	require.NoError(t, err)
	require.NoError(t, uc.TrackBeginCheckout(ctx, first.ID, sampleCheckout()))

	// A reload opens a new page in the same session.
	second, err := uc.OpenPage(ctx, "sess-1", entities.NewConsentSet("analytics"))
	require.NoError(t, err)
	_, err = uc.Activate(ctx, second.ID)
	require.NoError(t, err)
	require.NoError(t, uc.TrackBeginCheckout(ctx, second.ID, sampleCheckout()))
	require.NoError(t, uc.TrackViewItem(ctx, second.ID, sampleView()))

	records, _ := uc.DataLayer(ctx, first.ID)
	assert.Equal(t, []string{"begin_checkout", RecordSklikBeginCheckout}, eventsOf(records))
	records, _ = uc.DataLayer(ctx, second.ID)
	assert.Equal(t, []string{"view_item"}, eventsOf(records), "view_item is deduplicated per page only")
}

func TestTrackingPageUseCase_UnknownPage(t *testing.T) {
	ctx := context.Background()
	uc := newTrackingUseCase(newFakeDataLayers(), nil)

	assert.ErrorIs(t, uc.TrackViewItem(ctx, "missing", sampleView()), ErrTrackingPageNotFound)
	assert.ErrorIs(t, uc.TrackContactClick(ctx, " ", "phone"), ErrInvalidPageID)
	_, err := uc.Activate(ctx, "missing")
	assert.ErrorIs(t, err, ErrTrackingPageNotFound)
	_, err = uc.DataLayer(ctx, "missing")
	assert.ErrorIs(t, err, ErrTrackingPageNotFound)
	assert.ErrorIs(t, uc.ClosePage(ctx, ""), ErrInvalidPageID)
}

func TestTrackingPageUseCase_ClosePage(t *testing.T) {
	ctx := context.Background()
	stores := newFakeDataLayers()
	uc := newTrackingUseCase(stores, nil)

	page, err := uc.OpenPage(ctx, "sess-1", entities.NewConsentSet())
	require.NoError(t, err)

	require.NoError(t, uc.ClosePage(ctx, page.ID))
	assert.Equal(t, []string{page.ID}, stores.discarded)
	assert.ErrorIs(t, uc.ClosePage(ctx, page.ID), ErrTrackingPageNotFound)
	_, err = uc.DataLayer(ctx, page.ID)
	assert.ErrorIs(t, err, ErrTrackingPageNotFound)
}

func TestTrackingPageUseCase_PageRetention(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	newRetainingUseCase := func(stores *fakeDataLayers, r PageRetention) (*TrackingPageUseCase, *time.Time) {
		uc := NewTrackingPageUseCase(testDispatcherConfig(), DefaultPayloadDefaults(), r, newMemorySessions(), stores, nil)
		now := start
		uc.now = func() time.Time { return now }
		return uc, &now
	}

	t.Run("idle pages are swept", func(t *testing.T) {
		stores := newFakeDataLayers()
		uc, now := newRetainingUseCase(stores, PageRetention{IdleTTL: 30 * time.Minute})

		idle, err := uc.OpenPage(ctx, "sess-1", entities.NewConsentSet("analytics"))
		require.NoError(t, err)
		active, err := uc.OpenPage(ctx, "sess-2", entities.NewConsentSet("analytics"))
		require.NoError(t, err)
		_, err = uc.Activate(ctx, idle.ID)
		require.NoError(t, err)

		*now = start.Add(20 * time.Minute)
		require.NoError(t, uc.TrackViewItem(ctx, active.ID, sampleView()))
		assert.Zero(t, uc.SweepIdlePages(ctx))

		*now = start.Add(31 * time.Minute)
		assert.Equal(t, 1, uc.SweepIdlePages(ctx))
		assert.Equal(t, []string{idle.ID}, stores.discarded)

		_, err = uc.DataLayer(ctx, idle.ID)
		assert.ErrorIs(t, err, ErrTrackingPageNotFound)
		_, err = uc.DataLayer(ctx, active.ID)
		assert.NoError(t, err)
	})

	t.Run("opening a page expires idle ones", func(t *testing.T) {
		stores := newFakeDataLayers()
		uc, now := newRetainingUseCase(stores, PageRetention{IdleTTL: time.Minute})

		old, err := uc.OpenPage(ctx, "sess-1", entities.NewConsentSet())
		require.NoError(t, err)

		*now = start.Add(2 * time.Minute)
		_, err = uc.OpenPage(ctx, "sess-2", entities.NewConsentSet())
		require.NoError(t, err)
		assert.Equal(t, []string{old.ID}, stores.discarded)
	})

	t.Run("page cap evicts the longest idle page", func(t *testing.T) {
		stores := newFakeDataLayers()
		uc, now := newRetainingUseCase(stores, PageRetention{MaxPages: 2})

		first, err := uc.OpenPage(ctx, "sess-1", entities.NewConsentSet())
		require.NoError(t, err)
		*now = start.Add(time.Minute)
		second, err := uc.OpenPage(ctx, "sess-2", entities.NewConsentSet())
		require.NoError(t, err)

		*now = start.Add(2 * time.Minute)
		_, err = uc.Activate(ctx, first.ID)
		require.NoError(t, err)

		*now = start.Add(3 * time.Minute)
		third, err := uc.OpenPage(ctx, "sess-3", entities.NewConsentSet())
		require.NoError(t, err)

		assert.Equal(t, []string{second.ID}, stores.discarded)
		for _, id := range []string{first.ID, third.ID} {
			_, err := uc.DataLayer(ctx, id)
			assert.NoError(t, err)
		}
		assert.ErrorIs(t, uc.ClosePage(ctx, second.ID), ErrTrackingPageNotFound)
	})

	t.Run("zero retention keeps every page", func(t *testing.T) {
		stores := newFakeDataLayers()
		uc, now := newRetainingUseCase(stores, PageRetention{})
		for i := 0; i < 5; i++ {
			_, err := uc.OpenPage(ctx, "sess", entities.NewConsentSet())
			require.NoError(t, err)
		}
		*now = start.Add(48 * time.Hour)
		assert.Zero(t, uc.SweepIdlePages(ctx))
		assert.Empty(t, stores.discarded)
	})
}

func TestTrackingPageUseCase_QueueUnavailable(t *testing.T) {
	ctx := context.Background()
	stores := newFakeDataLayers()
	stores.openErr = errors.New("tag manager not loaded")
	uc := newTrackingUseCase(stores, nil)

	page, err := uc.OpenPage(ctx, "sess-1", entities.NewConsentSet("analytics"))
	require.NoError(t, err)
	require.NoError(t, uc.TrackViewItem(ctx, page.ID, sampleView()))

	activated, err := uc.Activate(ctx, page.ID)
	require.NoError(t, err)
	assert.False(t, activated.Ready)

	stores.openErr = nil
	activated, err = uc.Activate(ctx, page.ID)
	require.NoError(t, err)
	assert.True(t, activated.Ready)

	records, _ := uc.DataLayer(ctx, page.ID)
	assert.Equal(t, []string{"view_item"}, eventsOf(records))
}

func TestTrackingPageUseCase_TrackPurchaseFromPayment(t *testing.T) {
	ctx := context.Background()

	openActive := func(t *testing.T, uc *TrackingPageUseCase) string {
		t.Helper()
		page, err := uc.OpenPage(ctx, "sess-1", entities.NewConsentSet("analytics"))
		require.NoError(t, err)
		_, err = uc.Activate(ctx, page.ID)
		require.NoError(t, err)
		return page.ID
	}

	t.Run("blank payment id", func(t *testing.T) {
		uc := newTrackingUseCase(newFakeDataLayers(), nil)
		pageID := openActive(t, uc)
		_, err := uc.TrackPurchaseFromPayment(ctx, pageID, " ", entities.PurchaseData{})
		if !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := newTrackingUseCase(newFakeDataLayers(), nil)
		pageID := openActive(t, uc)
		_, err := uc.TrackPurchaseFromPayment(ctx, pageID, "123", entities.PurchaseData{})
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	gatewayErrors := []struct {
		name string
		err  error
		want error
	}{
		{"invalid id", fmt.Errorf("gateway: %w", entities.ErrInvalidProviderPaymentID), ErrInvalidPaymentID},
		{"not found", errors.New(`{"message":"Payment not found","error":"not_found","status":404}`), ErrPaymentNotFound},
		{"unauthorized", errors.New(`{"message":"invalid token","error":"unauthorized","status":401}`), ErrPaymentGatewayUnauthorized},
	}
	for _, tc := range gatewayErrors {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := newTrackingUseCase(newFakeDataLayers(), gateway)
			pageID := openActive(t, uc)

			gateway.EXPECT().GetPayment(gomock.Any(), "123").Return(entities.ProviderPayment{}, tc.err)

			_, err := uc.TrackPurchaseFromPayment(ctx, pageID, "123", entities.PurchaseData{})
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("other gateway error passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTrackingUseCase(newFakeDataLayers(), gateway)
		pageID := openActive(t, uc)

		gateway.EXPECT().GetPayment(gomock.Any(), "123").Return(entities.ProviderPayment{}, errors.New("timeout"))

		_, err := uc.TrackPurchaseFromPayment(ctx, pageID, "123", entities.PurchaseData{})
		if err == nil || err.Error() != "timeout" {
			t.Fatalf("expected timeout error, got %v", err)
		}
	})

	t.Run("not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		stores := newFakeDataLayers()
		uc := newTrackingUseCase(stores, gateway)
		pageID := openActive(t, uc)

		gateway.EXPECT().GetPayment(gomock.Any(), "123").Return(entities.ProviderPayment{ID: "123", Status: "pending"}, nil)

		_, err := uc.TrackPurchaseFromPayment(ctx, pageID, "123", entities.PurchaseData{})
		if !errors.Is(err, ErrPaymentNotApproved) {
			t.Fatalf("expected ErrPaymentNotApproved, got %v", err)
		}
		records, _ := uc.DataLayer(ctx, pageID)
		if len(records) != 0 {
			t.Fatalf("expected no records, got %v", eventsOf(records))
		}
	})

	t.Run("approved payment becomes a purchase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newTrackingUseCase(newFakeDataLayers(), gateway)
		pageID := openActive(t, uc)

		gateway.EXPECT().GetPayment(gomock.Any(), "123").Return(entities.ProviderPayment{
			ID:                "123",
			Status:            entities.ProviderPaymentStatusApproved,
			ExternalReference: "ORD-9",
			Currency:          "CZK",
			Amount:            decimal.NewFromInt(1210),
			PayerEmail:        "buyer@example.com",
		}, nil).Times(2)

		data, err := uc.TrackPurchaseFromPayment(ctx, pageID, "123", entities.PurchaseData{ValueNoVAT: money("1000")})
		require.NoError(t, err)
		assert.Equal(t, "ORD-9", data.TransactionID)
		assert.Equal(t, "buyer@example.com", data.CustomerEmail)
		require.Len(t, data.Items, 1)
		assert.Equal(t, "ORD-9", data.Items[0].ItemID)
		assert.Equal(t, "1210.00", entities.FormatMoney(data.Value.Decimal))

		_, err = uc.TrackPurchaseFromPayment(ctx, pageID, "123", entities.PurchaseData{})
		require.NoError(t, err)

		records, _ := uc.DataLayer(ctx, pageID)
		require.Equal(t, []string{"purchase", RecordSklikPurchase, RecordHeurekaPurchase}, eventsOf(records),
			"one purchase per transaction")
		assert.Equal(t, "ORD-9", ecommerceOf(records[0])["transaction_id"])
	})
}
