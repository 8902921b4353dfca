package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by Discover when no config file exists.
var ErrNotFound = errors.New("config not found")

// EnvVar names the environment variable that points at a config file.
const EnvVar = "DISCDB_CONFIG"

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./discdb.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "discdb", "config.toml")
}

// Discover finds the config file using the standard search order.
// Search order:
//  1. DISCDB_CONFIG environment variable
//  2. ./discdb.toml (current directory)
//  3. $XDG_CONFIG_HOME/discdb/config.toml
//  4. /etc/discdb/config.toml
func Discover() (string, error) {
	if envPath := os.Getenv(EnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("%s=%s: %w", EnvVar, envPath, err)
		}
		return envPath, nil
	}

	paths := []string{
		"./discdb.toml",
		DefaultPath(),
		"/etc/discdb/config.toml",
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w, checked: %s", ErrNotFound, strings.Join(paths, ", "))
}
