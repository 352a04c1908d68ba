package llm

import (
	"context"

	"github.com/dhabedank/teardown/internal/core"
)

// Client is the interface all LLM clients must implement.
// The method set matches core.LLMClient so clients plug straight into the
// generator.
type Client interface {
	// Name returns the client identifier for display.
	Name() string

	// IsAvailable checks if this client can be used (API key set).
	IsAvailable() bool

	// Complete sends a prompt to the model and returns raw output text.
	Complete(ctx context.Context, prompt string, opts core.CompleteOptions) (string, error)
}

// Config holds configuration for LLM clients.
type Config struct {
	// Provider selects the backend: auto, openai, or anthropic.
	Provider string

	// Model specifies which model to use (optional, client chooses default).
	Model string

	// APIKey for direct API access. Empty falls back to the provider's
	// conventional environment variable.
	APIKey string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{Provider: "auto"}
}
