package handlers

import (
	"errors"
	"net/http"

	"coden/models"
	"coden/services/booking"
	"coden/services/payment"
	"coden/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle over REST.
type BookingHandler struct {
	svc    booking.BookingService
	cards  payment.WalkInProcessor
	logger *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, cards payment.WalkInProcessor, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, cards: cards, logger: logger}
}

// respondError maps orchestrator error kinds onto HTTP statuses:
// validation 400, not-found 404, state conflict 409, dependency failure 502.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	var (
		validationErr  *booking.ValidationError
		capacityErr    *booking.CapacityError
		stateErr       *booking.StateError
		invalidCodeErr *booking.InvalidCodeError
		notFoundErr    *booking.NotFoundError
		dependencyErr  *booking.DependencyError
	)

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, booking.KindValidation, validationErr.Message)
	case errors.As(err, &notFoundErr):
		utils.JSONError(c, http.StatusNotFound, booking.KindNotFound, notFoundErr.Error())
	case errors.As(err, &capacityErr):
		utils.JSONError(c, http.StatusConflict, booking.KindCapacity, capacityErr.Error())
	case errors.As(err, &stateErr):
		utils.JSONError(c, http.StatusConflict, booking.KindState, stateErr.Error())
	case errors.As(err, &invalidCodeErr):
		utils.JSONError(c, http.StatusConflict, booking.KindInvalidCode, invalidCodeErr.Error())
	case errors.As(err, &dependencyErr):
		h.logger.Error("dependency failure", zap.String("collaborator", dependencyErr.Collaborator), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{
			"kind":    booking.KindDependency,
			"message": dependencyErr.Error(),
			"booking": dependencyErr.Booking,
		})
	default:
		h.logger.Error("unexpected booking error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "unexpected error")
	}
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	var input models.BookingRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, booking.KindValidation, err.Error())
		return
	}

	b, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": b})
}

// Get handles GET /api/bookings/:id.
func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// List handles GET /api/bookings?status=.
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.svc.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// IssueInvoice handles POST /api/bookings/:id/invoice.
func (h *BookingHandler) IssueInvoice(c *gin.Context) {
	invoice, err := h.svc.IssueInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"invoice": invoice})
}

// ConfirmPayment handles POST /api/bookings/:id/confirm-payment.
func (h *BookingHandler) ConfirmPayment(c *gin.Context) {
	var result models.PaymentResult
	if err := c.ShouldBindJSON(&result); err != nil {
		utils.JSONError(c, http.StatusBadRequest, booking.KindValidation, err.Error())
		return
	}

	b, err := h.svc.ConfirmPayment(c.Request.Context(), c.Param("id"), result)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// Pay handles POST /api/bookings/:id/pay. Staff take walk-in payments at
// the front desk; a settled charge immediately confirms the booking.
func (h *BookingHandler) Pay(c *gin.Context) {
	var input struct {
		Method string `json:"method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, booking.KindValidation, err.Error())
		return
	}

	id := c.Param("id")
	b, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	// Settle state questions before charging the card: a terminal or already
	// paid booking must not reach the payment terminal at all.
	if b.Terminal() || b.PaymentStatus == models.PaymentPaid {
		h.respondError(c, &booking.StateError{Operation: "take payment for", Status: b.Status})
		return
	}

	result, err := h.cards.Process(c.Request.Context(), payment.CardRequest{
		BookingID:   id,
		Amount:      b.TotalAmount,
		Method:      input.Method,
		Description: "CODEN booking " + id,
	})
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, booking.KindValidation, err.Error())
		return
	}

	updated, err := h.svc.ConfirmPayment(c.Request.Context(), id, *result)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": updated})
}

// CheckIn handles POST /api/bookings/:id/check-in.
func (h *BookingHandler) CheckIn(c *gin.Context) {
	var input struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, booking.KindValidation, err.Error())
		return
	}

	b, err := h.svc.CheckIn(c.Request.Context(), c.Param("id"), input.Code)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// GrantNetwork handles POST /api/bookings/:id/network.
func (h *BookingHandler) GrantNetwork(c *gin.Context) {
	b, err := h.svc.GrantNetworkAccess(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// RevokeNetwork handles DELETE /api/bookings/:id/network.
func (h *BookingHandler) RevokeNetwork(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&input)

	b, err := h.svc.RevokeNetworkAccess(c.Request.Context(), c.Param("id"), input.Reason)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// Complete handles POST /api/bookings/:id/complete.
func (h *BookingHandler) Complete(c *gin.Context) {
	b, err := h.svc.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// Cancel handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) Cancel(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&input)

	b, err := h.svc.Cancel(c.Request.Context(), c.Param("id"), input.Reason)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// Usage handles GET /api/bookings/:id/usage.
func (h *BookingHandler) Usage(c *gin.Context) {
	usage, err := h.svc.Usage(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"usage": usage})
}
