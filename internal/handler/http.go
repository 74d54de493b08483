package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const userIDHeader = "X-User-ID"

type Checkouter interface {
	Checkout(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutResult, error)
}

type OrderManager interface {
	GetOrder(ctx context.Context, number, userID string) (entities.Order, error)
	CancelOrder(ctx context.Context, number, userID, reason string) (entities.Order, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	checkout Checkouter
	orders   OrderManager
}

func NewHTTPHandler(logger *slog.Logger, checkout Checkouter, orders OrderManager) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		checkout: checkout,
		orders:   orders,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/checkout", h.Checkout)
	r.Get("/orders/{number}", h.GetOrder)
	r.Post("/orders/{number}/cancel", h.CancelOrder)
}

// Checkout places an order for the submitted cart.
// @Summary      Checkout
// @Description  Validates and prices the cart, reserves stock, creates a pending order and opens a payment intent
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string           true  "Authenticated user id"
// @Param        request    body      CheckoutRequest  true  "Cart to purchase"
// @Success      201  {object}  CheckoutResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Invalid cart, address or shipping method"
// @Failure      401  {object}  utils.ErrorResponse "Missing user id"
// @Failure      409  {object}  utils.ErrorResponse "Insufficient stock or changed prices"
// @Failure      422  {object}  utils.ErrorResponse "Item no longer sold"
// @Failure      502  {object}  utils.ErrorResponse "Payment processor unavailable"
// @Failure      503  {object}  utils.ErrorResponse "Checkout timed out"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /checkout [post]
func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	defer func() { checkoutDuration.Observe(time.Since(start).Seconds()) }()

	userID := r.Header.Get(userIDHeader)
	if userID == "" {
		utils.WriteError(w, "missing "+userIDHeader+" header", http.StatusUnauthorized)
		return
	}

	var body CheckoutRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		checkoutsTotal.WithLabelValues("invalid").Inc()
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		checkoutsTotal.WithLabelValues("invalid").Inc()
		utils.WriteValidationError(w, err)
		return
	}

	res, err := h.checkout.Checkout(ctx, CheckoutRequestToEntity(userID, body))
	if err != nil {
		h.writeCheckoutError(ctx, w, res, err)
		return
	}

	checkoutsTotal.WithLabelValues("created").Inc()
	utils.WriteJSON(w, CheckoutResponse{
		Order:        OrderEntityToJSON(res.Order),
		ClientSecret: res.ClientSecret,
	}, http.StatusCreated)
}

func (h *HTTPHandler) writeCheckoutError(ctx context.Context, w http.ResponseWriter, res entities.CheckoutResult, err error) {
	var (
		stockErr *entities.StockError
		priceErr *entities.PriceChangedError
	)

	switch {
	case errors.Is(err, entities.ErrInvalidAddress):
		checkoutsTotal.WithLabelValues("invalid").Inc()
		utils.WriteValidationError(w, err)
	case errors.Is(err, entities.ErrEmptyCart),
		errors.Is(err, entities.ErrInvalidQuantity),
		errors.Is(err, entities.ErrInvalidShipping):
		checkoutsTotal.WithLabelValues("invalid").Inc()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &stockErr):
		checkoutsTotal.WithLabelValues("out_of_stock").Inc()
		utils.WriteConflict(w, stockErr.Err.Error(), "insufficient_stock", StockConflict{
			ItemID:    stockErr.ItemID,
			Requested: stockErr.Requested,
			Available: stockErr.Available,
		})
	case errors.As(err, &priceErr):
		checkoutsTotal.WithLabelValues("price_changed").Inc()
		utils.WriteConflict(w, entities.ErrPriceChanged.Error(), "price_changed", PriceConflict{
			Items: CartLinesEntityToJSON(priceErr.Lines),
		})
	case errors.Is(err, entities.ErrItemUnavailable):
		checkoutsTotal.WithLabelValues("unavailable").Inc()
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrPaymentRequestFailed):
		checkoutsTotal.WithLabelValues("payment_failed").Inc()
		utils.WriteJSON(w, utils.ErrorResponse{
			Message: "payment request failed",
			Code:    "payment_unavailable",
			Details: PaymentFailure{OrderNumber: res.Order.Number},
		}, http.StatusBadGateway)
	case errors.Is(err, context.DeadlineExceeded):
		checkoutsTotal.WithLabelValues("timeout").Inc()
		utils.WriteError(w, "checkout timed out", http.StatusServiceUnavailable)
	default:
		checkoutsTotal.WithLabelValues("error").Inc()
		h.logger.ErrorContext(ctx, "failed to checkout", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

// GetOrder returns an order of the caller by its number.
// @Summary      Get order
// @Description  Returns the order with its pricing and current states
// @Tags         orders
// @Produce      json
// @Param        X-User-ID  header    string  true  "Authenticated user id"
// @Param        number     path      string  true  "Order number"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      401  {object}  utils.ErrorResponse "Missing user id"
// @Failure      403  {object}  utils.ErrorResponse "Order belongs to another user"
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders/{number} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	number := chi.URLParam(r, "number")

	if err := h.validate.Var(number, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	userID := r.Header.Get(userIDHeader)
	if userID == "" {
		utils.WriteError(w, "missing "+userIDHeader+" header", http.StatusUnauthorized)
		return
	}

	order, err := h.orders.GetOrder(ctx, number, userID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, entities.ErrForbidden) {
		utils.WriteError(w, "order belongs to another user", http.StatusForbidden)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("number", number))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// CancelOrder cancels an unpaid order of the caller.
// @Summary      Cancel order
// @Description  Cancels a pending order owned by the caller and releases its reserved stock
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string         true   "Authenticated user id"
// @Param        number     path      string         true   "Order number"
// @Param        request    body      CancelRequest  false  "Cancellation reason"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      401  {object}  utils.ErrorResponse "Missing user id"
// @Failure      403  {object}  utils.ErrorResponse "Order belongs to another user"
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      409  {object}  utils.ErrorResponse "Order can no longer be cancelled"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders/{number}/cancel [post]
func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	number := chi.URLParam(r, "number")

	userID := r.Header.Get(userIDHeader)
	if userID == "" {
		utils.WriteError(w, "missing "+userIDHeader+" header", http.StatusUnauthorized)
		return
	}

	var body CancelRequest
	if err := utils.DecodeBody(r, &body); err != nil && !errors.Is(err, io.EOF) {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.CancelOrder(ctx, number, userID, body.Reason)

	switch {
	case err == nil:
		cancellationsTotal.WithLabelValues("cancelled").Inc()
		utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrForbidden):
		cancellationsTotal.WithLabelValues("forbidden").Inc()
		utils.WriteError(w, "order belongs to another user", http.StatusForbidden)
	case errors.Is(err, entities.ErrInvalidTransition):
		cancellationsTotal.WithLabelValues("rejected").Inc()
		utils.WriteConflict(w, "order can no longer be cancelled", "invalid_state", nil)
	default:
		cancellationsTotal.WithLabelValues("error").Inc()
		h.logger.ErrorContext(ctx, "failed to cancel order", slog.Any("error", err), slog.String("number", number))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
