// Package config provides configuration management for go-arcade.
package config

import (
	"log"
)

var AppVersion = "-unset-" // will be set at build time

const (
	// Default web interface settings
	DefaultListenPort = 11380

	// Dice route bounds
	DiceSides = 6
)

// MainConfig holds the main configuration for go-arcade
type MainConfig struct {
	// Web interface settings
	Web WebConfig `json:"web"`

	// Database settings
	Database DatabaseConfig `json:"database"`

	AppVersion string `json:"app_version"` // Application version, set at build time
}

// WebConfig holds web interface configuration
type WebConfig struct {
	ListenPort int    `json:"listen_port"`
	SSL        bool   `json:"ssl"`
	CertFile   string `json:"cert_file,omitempty"`
	KeyFile    string `json:"key_file,omitempty"`
	Debug      bool   `json:"debug"` // Enable debug logging for requests
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	DataDir string `json:"data_dir"` // Directory for database files
}

// NewDefaultConfig returns a configuration with sensible defaults
func NewDefaultConfig() *MainConfig {
	maincfg := &MainConfig{
		AppVersion: AppVersion, // Set application version

		Web: WebConfig{
			ListenPort: DefaultListenPort,
			SSL:        false,
		},
		Database: DatabaseConfig{
			DataDir: "data",
		},
	}

	log.Printf("MainConfig initialized (version: %s)", maincfg.AppVersion)
	return maincfg
}
