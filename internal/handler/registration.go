package handler

import (
	"errors"
	"net/http"

	"github.com/stpnv0/EventZone/internal/domain"
	"github.com/stpnv0/EventZone/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) Eligibility(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	decision, err := h.registrationService.Eligibility(c.Request.Context(), identity(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDecisionResponse(decision))
}

// Register commits free registrations at once (201). Premium events answer 202
// with a checkout; the registration is committed when the payment is verified.
func (h *Handler) Register(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	ident := identity(c)

	event, err := h.registrationService.Register(c.Request.Context(), ident, id)
	if err == nil {
		resp := dto.ToEventResponse(event, userID(ident))
		c.JSON(http.StatusCreated, dto.RegisterResponse{Status: "registered", Event: &resp})
		return
	}
	if !errors.Is(err, domain.ErrPaymentRequired) {
		h.handleError(c, err)
		return
	}

	checkout, err := h.paymentService.ChargeEvent(c.Request.Context(), ident, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.RegisterResponse{Status: "payment_required", Checkout: checkout})
}

func (h *Handler) VerifyPayment(c *ginext.Context) {
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	payment, err := h.paymentService.Confirm(c.Request.Context(), identity(c), domain.PaymentProof{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

func (h *Handler) VIPCheckout(c *ginext.Context) {
	var req dto.VIPCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	checkout, err := h.paymentService.ChargeVIP(c.Request.Context(), identity(c), req.Months)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, checkout)
}
