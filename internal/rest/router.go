// Package rest assembles the HTTP surface of the billing engine.
package rest

import (
	"net/http"

	v1 "github.com/clinicore/clinicore/internal/api/v1"
	"github.com/clinicore/clinicore/internal/config"
	"github.com/clinicore/clinicore/internal/logger"
	"github.com/clinicore/clinicore/internal/rest/middleware"
	"github.com/clinicore/clinicore/internal/types"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with the standard middleware chain and the
// billing routes.
func NewRouter(cfg *config.Configuration, log *logger.Logger, billingHandler *v1.BillingHandler) *gin.Engine {
	if cfg.Deployment.Mode != types.ModeLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.LoggingMiddleware(log))
	router.Use(middleware.ErrorHandlerMiddleware)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	billing := router.Group("/v1/billing")
	{
		billing.POST("/orders/calculate", billingHandler.CalculateOrder)
		billing.POST("/invoices/prepare", billingHandler.PrepareInvoice)
		billing.POST("/hospitalizations/charge", billingHandler.CalculateHospitalizationCharge)
		billing.POST("/payments/reconcile", billingHandler.ReconcilePayment)
	}

	return router
}
