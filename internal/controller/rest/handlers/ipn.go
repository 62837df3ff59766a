package handlers

import (
	"errors"
	"net/http"

	"paymee-bridge/internal/controller/apperror"
	"paymee-bridge/internal/domain/payment"
	"paymee-bridge/internal/webhook"

	"github.com/gin-gonic/gin"
)

type IPNHandler struct {
	processor webhook.Processor
}

func NewIPNHandler(processor webhook.Processor) IPNHandler {
	return IPNHandler{processor: processor}
}

// Notify receives an instant payment notification from PayMee. The
// provider delivers either a JSON body, a form-encoded POST or a plain
// GET with query parameters, so both binding paths are accepted.
func (h *IPNHandler) Notify(c *gin.Context) {
	var n payment.Notification

	var err error
	if c.Request.Method == http.MethodGet {
		err = c.ShouldBindQuery(&n)
	} else {
		err = c.ShouldBind(&n)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing referenceCode or status"})
		return
	}

	if err := h.processor.ProcessNotification(c.Request.Context(), n); err != nil {
		switch {
		case errors.Is(err, apperror.ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperror.ErrDuplicateNotification):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperror.ErrInvalidStatusTransition):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.Status(http.StatusAccepted)
}
