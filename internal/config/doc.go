// Package config loads and merges the application configuration from three
// sources, in order of precedence: environment variables, command-line flags,
// and an optional JSON file. Merging uses mergo so that later sources fill
// only values earlier sources left empty.
package config
