// internal/pkg/config/validators.go
package config

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// rule checks one aspect of the configuration
type rule func(cfg *Config) error

// baseRules apply in every environment, in order
var baseRules = []rule{
	requiredFields,
	poolSizes,
	saleTimeouts,
	cardResolver,
}

// productionRules are added when APP_ENV is production
var productionRules = []rule{
	productionCredentials,
	productionTransport,
	productionSurface,
}

// Validate runs the rules that apply to the current environment and
// returns the first failure
func (c *Config) Validate() error {
	rules := baseRules
	if c.IsProduction() {
		rules = slices.Concat(baseRules, productionRules)
	}
	for _, check := range rules {
		if err := check(c); err != nil {
			return err
		}
	}
	return nil
}

func poolSizes(cfg *Config) error {
	if cfg.Database.MaxConnections < cfg.Database.MinConnections {
		return errors.New("database max_connections must be >= min_connections")
	}
	if cfg.Redis.PoolSize <= 0 {
		return errors.New("redis pool_size must be positive")
	}
	if cfg.Security.RateLimitRequests <= 0 {
		return errors.New("rate_limit_requests must be positive")
	}
	return nil
}

// saleTimeouts rejects settings that would let a sale wait forever on a lock
func saleTimeouts(cfg *Config) error {
	if cfg.Sales.LockTimeout <= 0 {
		return errors.New("sales lock_timeout must be positive")
	}
	if cfg.Sales.StatementTimeout > 0 && cfg.Sales.StatementTimeout < cfg.Sales.LockTimeout {
		return errors.New("sales statement_timeout must be >= lock_timeout")
	}
	return nil
}

func cardResolver(cfg *Config) error {
	if !cfg.Scryfall.Enabled {
		return nil
	}
	if cfg.Scryfall.BaseURL == "" {
		return fmt.Errorf("%w: scryfall base url", ErrMissingRequiredConfig)
	}
	if cfg.Scryfall.RequestsPerSecond <= 0 {
		return errors.New("scryfall requests_per_second must be positive")
	}
	return nil
}

func productionCredentials(cfg *Config) error {
	if isPlaceholder(cfg.Database.Password) {
		return fmt.Errorf("%w: database password", ErrMissingRequiredConfig)
	}
	if cfg.AWS.S3Bucket == "" {
		return fmt.Errorf("%w: export bucket", ErrMissingRequiredConfig)
	}
	return nil
}

func productionTransport(cfg *Config) error {
	if cfg.Database.SSLMode == "disable" {
		return errors.New("database SSL must be enabled in production")
	}
	if cfg.Server.TLSEnabled && (cfg.Server.TLSCertFile == "" || cfg.Server.TLSKeyFile == "") {
		return errors.New("TLS cert and key files must be provided when TLS is enabled")
	}
	return nil
}

func productionSurface(cfg *Config) error {
	if !cfg.Security.SecureHeaders {
		return errors.New("secure headers must be enabled in production")
	}
	switch {
	case len(cfg.Security.AllowedOrigins) == 0:
		return errors.New("allowed origins must be configured in production")
	case slices.Contains(cfg.Security.AllowedOrigins, "*"):
		return errors.New("wildcard origin (*) not allowed in production")
	}
	if cfg.Server.EnablePprof {
		return errors.New("pprof must be disabled in production")
	}
	return nil
}

// requiredFields walks the config and fails on the first field tagged
// required:"true" that is empty or still a MISSING_ placeholder
func requiredFields(cfg *Config) error {
	return walkRequired(reflect.ValueOf(cfg).Elem(), "")
}

func walkRequired(v reflect.Value, prefix string) error {
	t := v.Type()
	for i := range v.NumField() {
		field, meta := v.Field(i), t.Field(i)
		name := meta.Name
		if prefix != "" {
			name = prefix + "." + name
		}

		if meta.Tag.Get("required") == "true" && isEmpty(field) {
			return fmt.Errorf("%w: %s", ErrMissingRequiredConfig, name)
		}
		if field.Kind() == reflect.Struct {
			if err := walkRequired(field, name); err != nil {
				return err
			}
		}
	}
	return nil
}

func isEmpty(v reflect.Value) bool {
	if v.Kind() == reflect.String {
		return isPlaceholder(v.String())
	}
	return v.IsZero()
}

func isPlaceholder(s string) bool {
	return s == "" || strings.HasPrefix(s, "MISSING_")
}
