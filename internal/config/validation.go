package config

import (
	"fmt"
	"strings"

	cerr "github.com/cockroachdb/errors"
)

// ErrConfigMissing means the tool has not been configured, or the
// configured model lacks its credential.
var ErrConfigMissing = cerr.WithHint(
	cerr.New("configuration not found"),
	`run "git-commit-ai config" to set up the tool`,
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks cfg before a run. A nil config or a missing credential
// wraps ErrConfigMissing; an unknown model is a *ValidationError.
func Validate(cfg *Config) error {
	if cfg == nil {
		return ErrConfigMissing
	}
	return cfg.Validate()
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Model {
	case ModelAnthropic:
		if strings.TrimSpace(c.APIKey) == "" {
			return cerr.Wrap(ErrConfigMissing, "Anthropic API key is not set")
		}
	case ModelVertex:
		if strings.TrimSpace(c.ProjectName) == "" {
			return cerr.Wrap(ErrConfigMissing, "Google Cloud project name is not set")
		}
	case "":
		return &ValidationError{Field: "model", Message: "model must be specified"}
	default:
		valid := make([]string, len(Models))
		for i, m := range Models {
			valid[i] = string(m)
		}
		return &ValidationError{
			Field:   "model",
			Message: fmt.Sprintf("unknown model '%s', valid: %s", c.Model, strings.Join(valid, ", ")),
		}
	}
	return nil
}
