package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-f file store path
//	-c/-config json file path with configs
//	-vault-url vault backend base URL
//	-platform-url ticketing platform base URL
//	-adapter-token bearer token for outbound collaborator calls
//	-adapter-timeout outbound request timeout (e.g., "15s")
//	-token-sign-key panel token signing key
//	-token-issuer panel token issuer name
//	-home-country default country suppressed in address display
//	-reviewer default assigned reviewer identity
//	-cooldown post-execute session cooldown (e.g., "30s")
//	-guard-window restore guard window (e.g., "3s")
//	-request-timeout inbound request timeout (e.g., "30s")
//	-sweep-schedule cron schedule for the expired-request sweeper
//	-request-ttl stored request time-to-live (e.g., "720h")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var fileStorePath string
	var jsonConfigPath string
	var vaultBaseURL string
	var platformBaseURL string
	var adapterToken string
	var adapterTimeout time.Duration
	var tokenSignKey string
	var tokenIssuer string
	var homeCountry string
	var defaultReviewer string
	var cooldown time.Duration
	var guardWindow time.Duration
	var requestTimeout time.Duration
	var sweepSchedule string
	var requestTTL time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&fileStorePath, "f", "", "File store path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&vaultBaseURL, "vault-url", "", "Vault backend base URL")
	flag.StringVar(&platformBaseURL, "platform-url", "", "Ticketing platform base URL")
	flag.StringVar(&adapterToken, "adapter-token", "", "Bearer token for outbound calls")
	flag.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Outbound request timeout (e.g., 15s)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Panel token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Panel token issuer")
	flag.StringVar(&homeCountry, "home-country", "", "Default country suppressed in address display")
	flag.StringVar(&defaultReviewer, "reviewer", "", "Default assigned reviewer identity")
	flag.DurationVar(&cooldown, "cooldown", 0, "Post-execute session cooldown (e.g., 30s)")
	flag.DurationVar(&guardWindow, "guard-window", 0, "Restore guard window (e.g., 3s)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Inbound request timeout (e.g., 30s)")
	flag.StringVar(&sweepSchedule, "sweep-schedule", "", "Cron schedule for the expired-request sweeper")
	flag.DurationVar(&requestTTL, "request-ttl", 0, "Stored request time-to-live (e.g., 720h)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:       tokenSignKey,
			TokenIssuer:        tokenIssuer,
			HomeCountry:        homeCountry,
			DefaultReviewer:    defaultReviewer,
			CooldownDuration:   cooldown,
			RestoreGuardWindow: guardWindow,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			File: File{
				Path: fileStorePath,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			VaultBaseURL:    vaultBaseURL,
			PlatformBaseURL: platformBaseURL,
			Token:           adapterToken,
			Timeout:         adapterTimeout,
		},
		Workers: Workers{
			SweepSchedule: sweepSchedule,
			RequestTTL:    requestTTL,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
