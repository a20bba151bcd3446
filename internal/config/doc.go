// Package config handles configuration loading, parsing, and validation
// from defaults, an optional config file, a .env file and environment
// variables. It provides type-safe access to the settings needed by the
// server and the persistence gateway.
package config
