// Package config loads and validates scribe's configuration.
//
// Configuration is layered: config.yml provides the base, a .env file plus
// process environment variables override it. Provider credentials are only
// ever read from the environment.
//
// # Usage
//
//	cfg, err := config.Load()
//
// Environment variables map to nested keys with underscores, e.g.
// TRANSCRIPTION_PROVIDER overrides transcription.provider.
package config
