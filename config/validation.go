package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks that the loaded configuration can actually run
// the service. Artifact paths always have defaults, so only the values
// with no sane default are enforced.
func ValidateConfig(cfg *Config) error {
	var errs []string

	if cfg.DBPassword == "" {
		errs = append(errs, "database password is not set")
	}
	if cfg.JWTSecret == "" {
		errs = append(errs, "jwt secret is not set")
	}
	if IsProduction() && cfg.DBSSLMode == "disable" {
		errs = append(errs, "ssl must not be disabled in production")
	}
	for name, path := range map[string]string{
		"encoder":    cfg.EncoderPath,
		"imputer":    cfg.ImputerPath,
		"model":      cfg.ModelPath,
		"dictionary": cfg.DictionaryPath,
	} {
		if path == "" {
			errs = append(errs, fmt.Sprintf("%s artifact path is not set", name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}
