package config

import (
	"errors"
	"time"
)

// Defaults applied when neither env, flags, nor the JSON file set a value.
const (
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultAdapterTimeout = 15 * time.Second
	defaultCooldown       = 30 * time.Second
	defaultGuardWindow    = 3 * time.Second
	defaultSweepSchedule  = "@hourly"
	defaultRequestTTL     = 30 * 24 * time.Hour
	defaultHomeCountry    = "United States"
)

func (c *StructuredConfig) applyDefaults() {
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}
	if c.Adapter.Timeout <= 0 {
		c.Adapter.Timeout = defaultAdapterTimeout
	}
	if c.App.CooldownDuration <= 0 {
		c.App.CooldownDuration = defaultCooldown
	}
	if c.App.RestoreGuardWindow <= 0 {
		c.App.RestoreGuardWindow = defaultGuardWindow
	}
	if c.App.HomeCountry == "" {
		c.App.HomeCountry = defaultHomeCountry
	}
	if c.Workers.SweepSchedule == "" {
		c.Workers.SweepSchedule = defaultSweepSchedule
	}
	if c.Workers.RequestTTL <= 0 {
		c.Workers.RequestTTL = defaultRequestTTL
	}
}

// validate checks the merged configuration for values the application cannot
// run without.
func (c *StructuredConfig) validate() error {
	var errs []error

	if c.Adapter.VaultBaseURL == "" {
		errs = append(errs, errNoVaultBaseURL)
	}
	if c.Adapter.PlatformBaseURL == "" {
		errs = append(errs, errNoPlatformBaseURL)
	}
	if c.App.TokenSignKey == "" {
		errs = append(errs, errNoTokenSignKey)
	}

	return errors.Join(errs...)
}
