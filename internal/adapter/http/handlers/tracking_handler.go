package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	request "storefront_tracking/internal/adapter/http/dto/request"
	response "storefront_tracking/internal/adapter/http/dto/response"
	"storefront_tracking/internal/domain/entities"
	"storefront_tracking/internal/logging"
	"storefront_tracking/internal/usecase"
	"storefront_tracking/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidTrackingPayload = pkg.NewDomainErrorSimple("INVALID_TRACKING_INPUT", "Invalid tracking payload", http.StatusBadRequest)
)

// TrackingHandler exposes the per-page analytics dispatcher.
//
// Tracked actions are always acknowledged with 202: whether an event is
// pushed, buffered until the page is ready or dropped (missing consent,
// missing fields, already tracked) is visible only in the page's data layer.
type TrackingHandler struct {
	usecase usecase.ITrackingPageUseCase
	log     *zap.Logger
}

func NewTrackingHandler(uc usecase.ITrackingPageUseCase) *TrackingHandler {
	return &TrackingHandler{usecase: uc, log: logging.Named("http")}
}

// OpenPage godoc
// @Summary      Open a tracking page
// @Description  Starts a page lifetime. Consent comes from the body or the cc_cookie cookie.
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        request  body      request.OpenPageRequest  false  "Session and consent"
// @Success      201      {object}  response.TrackingPageResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /tracking/pages [post]
func (h *TrackingHandler) OpenPage(c *gin.Context) {
	var payload request.OpenPageRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}

	cookie, _ := c.Cookie(entities.ConsentCookieName)
	page, err := h.usecase.OpenPage(c.Request.Context(), payload.ResolveSessionID(), payload.ResolveConsent(cookie))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromTrackingPage(page))
}

// UpdateConsent godoc
// @Summary      Notify a consent change
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        page_id  path      string                  true   "Page ID"
// @Param        request  body      request.ConsentRequest  false  "Granted categories"
// @Success      200      {object}  response.TrackingPageResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /tracking/pages/{page_id}/consent [put]
func (h *TrackingHandler) UpdateConsent(c *gin.Context) {
	var payload request.ConsentRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}

	cookie, _ := c.Cookie(entities.ConsentCookieName)
	page, err := h.usecase.UpdateConsent(c.Request.Context(), c.Param("page_id"), payload.ResolveConsent(cookie))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromTrackingPage(page))
}

// Activate godoc
// @Summary      Mark a page as loaded
// @Description  Binds the outbound queue and flushes buffered events.
// @Tags         tracking
// @Produce      json
// @Param        page_id  path      string  true  "Page ID"
// @Success      200      {object}  response.TrackingPageResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /tracking/pages/{page_id}/activate [post]
func (h *TrackingHandler) Activate(c *gin.Context) {
	page, err := h.usecase.Activate(c.Request.Context(), c.Param("page_id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromTrackingPage(page))
}

// TrackEvent godoc
// @Summary      Track a storefront action
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        page_id  path      string                     true  "Page ID"
// @Param        kind     path      string                     true  "view_item, add_to_cart, begin_checkout, purchase or contact_click"
// @Param        request  body      request.TrackEventRequest  true  "Event data"
// @Success      202      {object}  response.EventAcceptedResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /tracking/pages/{page_id}/events/{kind} [post]
func (h *TrackingHandler) TrackEvent(c *gin.Context) {
	pageID := c.Param("page_id")
	kind := entities.EventKind(strings.ToLower(strings.TrimSpace(c.Param("kind"))))
	if !kind.Valid() {
		h.fail(c, usecase.ErrUnknownEventKind)
		return
	}

	var payload request.TrackEventRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}

	ctx := c.Request.Context()
	var err error
	switch kind {
	case entities.EventViewItem:
		err = h.usecase.TrackViewItem(ctx, pageID, payload.ToViewItem())
	case entities.EventAddToCart:
		err = h.usecase.TrackAddToCart(ctx, pageID, payload.ToAddToCart())
	case entities.EventBeginCheckout:
		err = h.usecase.TrackBeginCheckout(ctx, pageID, payload.ToCheckout())
	case entities.EventPurchase:
		err = h.usecase.TrackPurchase(ctx, pageID, payload.ToPurchase())
	case entities.EventContactClick:
		err = h.usecase.TrackContactClick(ctx, pageID, payload.ResolveContactType())
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusAccepted, response.NewEventAccepted(pageID, kind))
}

// PurchaseFromPayment godoc
// @Summary      Track the purchase paid by a provider payment
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        page_id     path      string                              true   "Page ID"
// @Param        payment_id  path      string                              true   "Mercado Pago payment ID"
// @Param        request     body      request.PurchaseFromPaymentRequest  false  "Order lines and VAT split"
// @Success      202         {object}  response.PurchaseResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /tracking/pages/{page_id}/purchases/{payment_id} [post]
func (h *TrackingHandler) PurchaseFromPayment(c *gin.Context) {
	pageID := c.Param("page_id")
	paymentID := c.Param("payment_id")

	var payload request.PurchaseFromPaymentRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}

	purchase, err := h.usecase.TrackPurchaseFromPayment(c.Request.Context(), pageID, paymentID, payload.ToPurchaseData())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusAccepted, response.FromPurchase(pageID, purchase))
}

// GetDataLayer godoc
// @Summary      Read the records pushed for a page
// @Tags         tracking
// @Produce      json
// @Param        page_id  path      string  true  "Page ID"
// @Success      200      {object}  response.DataLayerResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /tracking/pages/{page_id}/datalayer [get]
func (h *TrackingHandler) GetDataLayer(c *gin.Context) {
	pageID := c.Param("page_id")
	records, err := h.usecase.DataLayer(c.Request.Context(), pageID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromDataLayer(pageID, records))
}

// ClosePage godoc
// @Summary      Close a tracking page
// @Tags         tracking
// @Param        page_id  path  string  true  "Page ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /tracking/pages/{page_id} [delete]
func (h *TrackingHandler) ClosePage(c *gin.Context) {
	if err := h.usecase.ClosePage(c.Request.Context(), c.Param("page_id")); err != nil {
		h.fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TrackingHandler) fail(c *gin.Context, err error) {
	appErr := mapTrackingError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.Error("[tracking][handler] request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// bindOptionalJSON binds the body into dst. An empty body leaves dst zero;
// malformed JSON is answered with 400 and reported as false.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidTrackingPayload.HTTPStatus, errInvalidTrackingPayload.ToHTTPError())
		return false
	}
	return true
}

func mapTrackingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPageID), errors.Is(err, usecase.ErrInvalidPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownEventKind):
		return pkg.NewDomainErrorSimple("UNKNOWN_EVENT_KIND", "Unknown event kind", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTrackingPageNotFound):
		return pkg.NewDomainErrorSimple("TRACKING_PAGE_NOT_FOUND", "Tracking page not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Payment not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured), errors.Is(err, usecase.ErrDataLayerStoreNotConfigured):
		return pkg.NewDomainErrorSimple("SERVICE_UNAVAILABLE", "Service not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
