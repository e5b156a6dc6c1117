// Package config holds the configuration helpers shared by command entry points.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by the game commands.
const EnvPrefix = "FAIRRPS_"

// ParseEnv loads configuration from environment variables.
//
// Field tags name variables without the shared prefix, so a field tagged
// `env:"ROUNDS"` is read from FAIRRPS_ROUNDS.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
