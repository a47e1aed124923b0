package config

import (
	"strings"

	ierr "github.com/clinicore/clinicore/internal/errors"
	"github.com/clinicore/clinicore/internal/types"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration holds the full runtime configuration of the service.
type Configuration struct {
	Deployment DeploymentConfig `mapstructure:"deployment"`
	Server     ServerConfig     `mapstructure:"server"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

type DeploymentConfig struct {
	Mode types.RunMode `mapstructure:"mode" default:"api"`
}

type ServerConfig struct {
	Address string `mapstructure:"address" default:":8080"`
}

type LoggingConfig struct {
	Level types.LogLevel `mapstructure:"level" default:"info"`
}

// NewConfig loads configuration from the environment, optionally seeded from
// a local .env file.
func NewConfig() (*Configuration, error) {
	v := viper.New()

	// Local development convenience only; absence is not an error.
	_ = godotenv.Load()

	v.SetEnvPrefix("CLINICORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("deployment.mode", string(types.ModeAPI))
	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", string(types.LogLevelInfo))

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to load configuration from environment").
			Mark(ierr.ErrInternal)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the loaded configuration for obvious misconfiguration.
func (c *Configuration) Validate() error {
	if c.Server.Address == "" {
		return ierr.NewError("server address is required").
			WithHint("Set CLINICORE_SERVER_ADDRESS").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// GetDefaultConfig returns the configuration used before the environment is
// loaded, e.g. by the package-level logger.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8080"},
		Logging:    LoggingConfig{Level: types.LogLevelInfo},
	}
}
