package handler

import (
	"errors"
	"net/http"

	"github.com/brunosilvadev/rinha-2025/internal/adapter/http/dto"
	"github.com/brunosilvadev/rinha-2025/internal/core/ports"
	"github.com/brunosilvadev/rinha-2025/pkg/apperror"
	"github.com/brunosilvadev/rinha-2025/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// PaymentHandler handles the payment dispatch endpoint.
type PaymentHandler struct {
	paymentSvc ports.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentSvc ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

// ProcessPayment handles POST /payments. Success is a bare 200: the caller
// only needs the acknowledgement, the accounting happens in the summary.
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	correlationID, err := uuid.Parse(req.CorrelationID)
	if err != nil {
		response.Error(c, apperror.ErrInvalidCorrelationID())
		return
	}

	_, err = h.paymentSvc.ProcessPayment(c.Request.Context(), ports.PaymentRequest{
		CorrelationID: correlationID,
		Amount:        req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

// bindError maps binding failures onto the payment error taxonomy.
func bindError(err error) *apperror.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Field() {
			case "Amount":
				return apperror.ErrInvalidAmount()
			case "CorrelationID":
				return apperror.ErrInvalidCorrelationID()
			}
		}
	}
	return apperror.Validation(err.Error())
}
