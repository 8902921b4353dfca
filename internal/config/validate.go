package config

import (
	"fmt"
	"net/url"

	"github.com/vmunix/discdb/pkg/match"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Client.Origin != "" {
		u, err := url.Parse(c.Client.Origin)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Sprintf("client.origin: must be an http or https URL, got %q", c.Client.Origin))
		}
	}
	if c.Client.Timeout < 0 {
		errs = append(errs, fmt.Sprintf("client.timeout: must not be negative, got %s", c.Client.Timeout))
	}

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	if c.Identify.Concurrency < 0 {
		errs = append(errs, fmt.Sprintf("identify.concurrency: must be at least 1, got %d", c.Identify.Concurrency))
	}
	if c.Identify.MinConfidence != "" {
		if _, ok := match.ParseConfidence(c.Identify.MinConfidence); !ok {
			errs = append(errs, fmt.Sprintf("identify.min_confidence: must be one of none, low, medium, high; got %q", c.Identify.MinConfidence))
		}
	}

	return errs
}

// MinConfidence returns the parsed identify.min_confidence, defaulting to medium.
func (c *Config) MinConfidence() match.Confidence {
	if conf, ok := match.ParseConfidence(c.Identify.MinConfidence); ok {
		return conf
	}
	return match.ConfidenceMedium
}
