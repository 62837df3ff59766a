package rest

import (
	"time"

	"paymee-bridge/internal/controller/rest/handlers"
	"paymee-bridge/pkg/health"
	"paymee-bridge/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const readinessTimeout = 5 * time.Second

type Router struct {
	checkout handlers.CheckoutHandler
	payment  handlers.PaymentHandler
	ipn      handlers.IPNHandler
	health   *health.Registry
}

func NewRouter(
	checkout handlers.CheckoutHandler,
	payment handlers.PaymentHandler,
	ipn handlers.IPNHandler,
	health *health.Registry,
) *Router {
	return &Router{
		checkout: checkout,
		payment:  payment,
		ipn:      ipn,
		health:   health,
	}
}

func (r *Router) SetUp(engine *gin.Engine) {
	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(r.health, readinessTimeout))
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	engine.POST("/checkout", r.checkout.Create)

	engine.GET("/payments", r.payment.Filter)
	engine.GET("/payments/:reference", r.payment.Get)

	// PayMee calls back on both verbs depending on the flow
	engine.POST("/ipn/paymee", r.ipn.Notify)
	engine.GET("/ipn/paymee", r.ipn.Notify)
}
