package service

import (
	"github.com/clinicore/clinicore/internal/config"
	"github.com/clinicore/clinicore/internal/domain/proration"
	"github.com/clinicore/clinicore/internal/logger"
)

// ServiceParams holds the common dependencies shared by all services.
type ServiceParams struct {
	Logger              *logger.Logger
	Config              *config.Configuration
	ProrationCalculator proration.Calculator
}
