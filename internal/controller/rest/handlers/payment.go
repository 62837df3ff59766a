package handlers

import (
	"errors"
	"net/http"
	"strings"

	"paymee-bridge/internal/controller/apperror"
	"paymee-bridge/internal/domain/payment"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	service *payment.Service
}

func NewPaymentHandler(s *payment.Service) PaymentHandler {
	return PaymentHandler{service: s}
}

func (h *PaymentHandler) Get(c *gin.Context) {
	reference := c.Param("reference")
	if reference == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing reference"})
		return
	}

	res, err := h.service.GetPaymentByReference(c.Request.Context(), reference)
	if err != nil {
		if errors.Is(err, apperror.ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}

type paymentFilterParams struct {
	Reference string `form:"reference"`
	OrderID   string `form:"order_id"`
	Status    string `form:"status"`
}

func (h *PaymentHandler) Filter(c *gin.Context) {
	query, err := h.createQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.service.GetPayments(c.Request.Context(), *query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *PaymentHandler) createQuery(c *gin.Context) (*payment.PaymentsQuery, error) {
	var params paymentFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	builder := payment.NewPaymentsQueryBuilder()
	if params.Reference != "" {
		builder = builder.WithReferences(strings.Split(params.Reference, ",")...)
	}
	if params.OrderID != "" {
		builder = builder.WithOrderIDs(strings.Split(params.OrderID, ",")...)
	}
	if params.Status != "" {
		statuses := make([]payment.Status, 0)
		for _, v := range strings.Split(params.Status, ",") {
			s, err := payment.NewStatus(v)
			if err != nil {
				return nil, err
			}
			statuses = append(statuses, s)
		}
		builder = builder.WithStatuses(statuses...)
	}

	query, err := builder.Build()
	if err != nil {
		return nil, err
	}

	return query, nil
}
