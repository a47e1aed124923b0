package main

import (
	"context"
	"net/http"

	v1 "github.com/clinicore/clinicore/internal/api/v1"
	"github.com/clinicore/clinicore/internal/config"
	"github.com/clinicore/clinicore/internal/domain/proration"
	"github.com/clinicore/clinicore/internal/logger"
	"github.com/clinicore/clinicore/internal/rest"
	"github.com/clinicore/clinicore/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		fx.Provide(
			config.NewConfig,
			logger.NewLogger,
			proration.NewCalculator,
			newServiceParams,
			service.NewBillingService,
			v1.NewBillingHandler,
			rest.NewRouter,
		),
		fx.Invoke(startServer),
	)

	app.Run()
}

func newServiceParams(
	log *logger.Logger,
	cfg *config.Configuration,
	calculator proration.Calculator,
) service.ServiceParams {
	return service.ServiceParams{
		Logger:              log,
		Config:              cfg,
		ProrationCalculator: calculator,
	}
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	log *logger.Logger,
	router *gin.Engine,
) {
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting billing server", "address", cfg.Server.Address)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("shutting down billing server")
			return server.Shutdown(ctx)
		},
	})
}
