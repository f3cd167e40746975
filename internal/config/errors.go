package config

import "errors"

var (
	errNoVaultBaseURL    = errors.New("vault backend base URL is not configured")
	errNoPlatformBaseURL = errors.New("ticketing platform base URL is not configured")
	errNoTokenSignKey    = errors.New("panel token sign key is not configured")
)
