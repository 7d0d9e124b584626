// Package provider talks to the language models that draft commit messages.
package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/Dhanuzh/git-commit-ai/internal/config"
)

// DefaultTimeout bounds a single generation request.
const DefaultTimeout = 60 * time.Second

// Generator produces a commit message from a system and a user prompt.
type Generator interface {
	Name() string
	Generate(ctx context.Context, system, user string) (string, error)
}

// New creates the Generator selected by cfg.Model.
func New(ctx context.Context, cfg *config.Config) (Generator, error) {
	if cfg == nil {
		return nil, config.ErrConfigMissing
	}

	switch cfg.Model {
	case config.ModelAnthropic:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("anthropic: %w", config.ErrConfigMissing)
		}
		return NewAnthropicProvider(cfg.APIKey), nil
	case config.ModelVertex:
		if cfg.ProjectName == "" {
			return nil, fmt.Errorf("vertex: %w", config.ErrConfigMissing)
		}
		return NewVertexProvider(ctx, cfg.ProjectName)
	default:
		return nil, fmt.Errorf("unsupported model: %q", cfg.Model)
	}
}

// DisplayName is the model name shown to the user for a configured model.
func DisplayName(model config.Model) string {
	switch model {
	case config.ModelAnthropic:
		return AnthropicModel
	case config.ModelVertex:
		return "vertex-" + VertexModel
	}
	return string(model)
}
