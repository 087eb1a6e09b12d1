// Package config provides configuration management for the Horizon CLI.
package config
