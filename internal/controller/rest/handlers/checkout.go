package handlers

import (
	"net/http"

	"paymee-bridge/internal/domain/checkout"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	service *checkout.Service
}

func NewCheckoutHandler(s *checkout.Service) CheckoutHandler {
	return CheckoutHandler{service: s}
}

// Create starts a PayMee checkout for the submitted order and returns
// the redirect URL the shopper must be sent to.
func (h *CheckoutHandler) Create(c *gin.Context) {
	var order checkout.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := h.service.Checkout(c.Request.Context(), order)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch result.Kind {
	case checkout.KindSuccess:
		c.JSON(http.StatusOK, gin.H{
			"redirect_url": result.RedirectURL,
			"token":        result.Token,
		})
	case checkout.KindAPIError:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": result.Messages})
	case checkout.KindCredentialError, checkout.KindTransportError:
		c.JSON(http.StatusBadGateway, gin.H{"errors": result.Messages})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"errors": result.Messages})
	}
}
