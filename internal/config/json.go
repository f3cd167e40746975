package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration so that JSON config files can carry durations
// as strings ("30s", "1h") or raw nanosecond numbers.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler for Duration.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		*d = Duration(time.Duration(v))
		return nil
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", v, err)
		}
		*d = Duration(parsed)
		return nil
	default:
		return fmt.Errorf("invalid duration value %v", raw)
	}
}

// StructuredJSONConfig mirrors StructuredConfig with JSON-friendly field
// types. It exists so the JSON file format can stay stable independently of
// the in-memory configuration shape.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey       string   `json:"token_sign_key"`
		TokenIssuer        string   `json:"token_issuer"`
		HomeCountry        string   `json:"home_country"`
		DefaultReviewer    string   `json:"default_reviewer"`
		CooldownDuration   Duration `json:"cooldown_duration"`
		RestoreGuardWindow Duration `json:"restore_guard_window"`
		Version            string   `json:"version"`
	} `json:"app"`

	Storage struct {
		DatabaseURI   string `json:"database_uri"`
		FileStorePath string `json:"file_store_path"`
	} `json:"storage"`

	Server struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`

	Adapter struct {
		VaultBaseURL    string   `json:"vault_base_url"`
		PlatformBaseURL string   `json:"platform_base_url"`
		Token           string   `json:"token"`
		Timeout         Duration `json:"timeout"`
	} `json:"adapter"`

	Workers struct {
		SweepSchedule string   `json:"sweep_schedule"`
		RequestTTL    Duration `json:"request_ttl"`
	} `json:"workers"`
}

// parseJSON reads the JSON config file at path and converts it into a
// StructuredConfig suitable for merging.
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading json config file: %w", err)
	}

	var jsonCfg StructuredJSONConfig
	if err = json.Unmarshal(data, &jsonCfg); err != nil {
		return nil, fmt.Errorf("error parsing json config file: %w", err)
	}

	return jsonCfg.toStructured(), nil
}

func (j *StructuredJSONConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:       j.App.TokenSignKey,
			TokenIssuer:        j.App.TokenIssuer,
			HomeCountry:        j.App.HomeCountry,
			DefaultReviewer:    j.App.DefaultReviewer,
			CooldownDuration:   time.Duration(j.App.CooldownDuration),
			RestoreGuardWindow: time.Duration(j.App.RestoreGuardWindow),
			Version:            j.App.Version,
		},
		Storage: Storage{
			DB:   DB{DSN: j.Storage.DatabaseURI},
			File: File{Path: j.Storage.FileStorePath},
		},
		Server: Server{
			HTTPAddress:    j.Server.Address,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
		},
		Adapter: Adapter{
			VaultBaseURL:    j.Adapter.VaultBaseURL,
			PlatformBaseURL: j.Adapter.PlatformBaseURL,
			Token:           j.Adapter.Token,
			Timeout:         time.Duration(j.Adapter.Timeout),
		},
		Workers: Workers{
			SweepSchedule: j.Workers.SweepSchedule,
			RequestTTL:    time.Duration(j.Workers.RequestTTL),
		},
	}
}
