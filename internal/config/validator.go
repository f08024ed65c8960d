package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ValidateConfig validates configuration values after viper has
// loaded them.
func ValidateConfig() error {
	var errs []string

	switch strings.ToLower(viper.GetString("store.type")) {
	case "sqlite", "sqlite3", "postgres", "postgresql", "":
	default:
		errs = append(errs, fmt.Sprintf("store.type must be sqlite or postgres, got: %s", viper.GetString("store.type")))
	}

	if viper.IsSet("session.poll_interval") {
		if d := viper.GetDuration("session.poll_interval"); d <= 0 {
			errs = append(errs, fmt.Sprintf("session.poll_interval must be positive, got: %v", d))
		}
	}

	if viper.IsSet("notification.ttl") {
		if d := viper.GetDuration("notification.ttl"); d <= 0 {
			errs = append(errs, fmt.Sprintf("notification.ttl must be positive, got: %v", d))
		}
	}

	if port := viper.GetInt("api.port"); port < 0 || port > 65535 {
		errs = append(errs, fmt.Sprintf("api.port must be a valid port, got: %d", port))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
