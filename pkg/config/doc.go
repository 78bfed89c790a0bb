// Package config loads typed configuration structs from environment variables.
//
// It layers godotenv (optional .env file for local development) under
// github.com/caarlos0/env struct parsing. Each package that needs configuration
// declares its own env-tagged struct and the binary loads them at startup.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
package config
