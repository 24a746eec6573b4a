// Package config loads the process configuration from MODESCOPE_* environment
// variables and validates it.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/modescope/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name, e.g. MODESCOPE_LOG_LEVEL.
const Prefix = "MODESCOPE"

// Config holds the settings shared by every command.
type Config struct {
	ExplorerURL      string        `envconfig:"EXPLORER_URL" default:"https://explorer.mode.network/api" validate:"required,url"`
	HTTPTimeout      time.Duration `envconfig:"HTTP_TIMEOUT" default:"15s" validate:"gte=0"`
	LogLevel         string        `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	AgentName        string        `envconfig:"AGENT_NAME" default:"modescope" validate:"required"`
	TelemetryEnabled bool          `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName      string        `envconfig:"SERVICE_NAME" default:"modescope" validate:"required"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("reading configuration: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
