// Package config provides data path helpers shared by the CLI and server.
package config

import (
	"os"
	"path/filepath"
)

// GetDataPath returns the data directory path.
// It checks for DATA_PATH environment variable, otherwise uses a default.
func GetDataPath() string {
	if path := os.Getenv("DATA_PATH"); path != "" {
		return path
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return filepath.Join(cwd, ".data")
}

// GetDatabasePath returns the analytics database path.
// It checks for DATABASE_PATH environment variable, otherwise uses a default.
func GetDatabasePath() string {
	if path := os.Getenv("DATABASE_PATH"); path != "" {
		return path
	}

	return filepath.Join(GetDataPath(), "plat-fonts.db")
}
