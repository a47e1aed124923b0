// Package testutil provides shared scaffolding for service-level tests.
package testutil

import (
	"context"

	"github.com/clinicore/clinicore/internal/config"
	"github.com/clinicore/clinicore/internal/logger"
	"github.com/stretchr/testify/suite"
)

// BaseServiceTestSuite provides the common dependencies service tests need:
// a default configuration and a logger. Services hold no state, so there is
// nothing to reset between tests beyond the context.
type BaseServiceTestSuite struct {
	suite.Suite
	ctx context.Context
	cfg *config.Configuration
	log *logger.Logger
}

// SetupTest initializes the suite dependencies.
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.cfg = config.GetDefaultConfig()

	log, err := logger.NewLogger(s.cfg)
	s.Require().NoError(err)
	s.log = log
}

// GetContext returns the test context.
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration.
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.cfg
}

// GetLogger returns the test logger.
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.log
}
