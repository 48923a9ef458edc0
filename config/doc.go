// Package config loads client configuration from YAML files and the
// environment. It follows a convention over ceremony approach: Load finds a
// config.yml and an optional .env file in standard locations, binds
// environment variables through viper, unmarshals into the caller's struct,
// then runs the struct's ApplyDefaults and Validate methods when present.
package config
