package core

import (
	"context"
	"time"
)

// GenerateConfig configures teardown generation behavior.
type GenerateConfig struct {
	// MaxRetries is the number of regeneration attempts after the first call.
	MaxRetries int

	// Timeout bounds each individual collaborator call.
	Timeout time.Duration

	// Backoff is the initial wait between attempts; doubles per attempt.
	Backoff time.Duration

	// Temperature and MaxTokens pass through to the collaborator.
	Temperature float32
	MaxTokens   int
}

// DefaultGenerateConfig returns sensible defaults.
func DefaultGenerateConfig() GenerateConfig {
	return GenerateConfig{
		MaxRetries:  2,
		Timeout:     60 * time.Second,
		Backoff:     500 * time.Millisecond,
		Temperature: 0.2,
		MaxTokens:   4096,
	}
}

// Generator turns a composed prompt payload into a validated Teardown.
// Malformed model output is retried with an amended prompt; sections still
// missing after the retry budget are filled with placeholders and flagged,
// so downstream consumers can always render a report. Collaborator failures
// (transport, rate limit) propagate to the caller unchanged once the budget
// is spent.
type Generator struct {
	client LLMClient
	config GenerateConfig
}

// NewGenerator creates a generator. Zero config fields take defaults.
func NewGenerator(client LLMClient, config GenerateConfig) *Generator {
	defaults := DefaultGenerateConfig()
	if config.MaxRetries <= 0 {
		config.MaxRetries = defaults.MaxRetries
	}
	if config.Timeout <= 0 {
		config.Timeout = defaults.Timeout
	}
	if config.Backoff <= 0 {
		config.Backoff = defaults.Backoff
	}
	if config.MaxTokens <= 0 {
		config.MaxTokens = defaults.MaxTokens
	}
	return &Generator{client: client, config: config}
}

// Generate runs the full call-parse-validate loop for one payload.
func (g *Generator) Generate(ctx context.Context, payload PromptPayload) (*Teardown, error) {
	opts := CompleteOptions{
		System:      payload.System,
		Temperature: g.config.Temperature,
		MaxTokens:   g.config.MaxTokens,
	}

	attempts := g.config.MaxRetries + 1
	prompt := payload.User

	collected := Sections{}
	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			if err := waitBackoff(ctx, g.config.Backoff<<(attempt-1)); err != nil {
				return nil, err
			}
		}

		raw, err := g.complete(ctx, prompt, opts)
		if err != nil {
			if ctx.Err() != nil {
				// Request abandoned: stop retrying, discard in-flight work.
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}
		lastErr = nil

		parsed, schemaErr := ParseSections(raw, payload.Sections)
		for name, content := range parsed {
			if collected[name] == "" {
				collected[name] = content
			}
		}
		if schemaErr == nil {
			return g.newTeardown(payload, collected, nil), nil
		}

		missing := missingSections(collected, payload.Sections)
		if len(missing) == 0 {
			return g.newTeardown(payload, collected, nil), nil
		}
		prompt = BuildAmendedPrompt(payload, missing)
	}

	// Nothing ever parsed: surface the collaborator failure as-is.
	if len(collected) == 0 && lastErr != nil {
		return nil, lastErr
	}

	// Partial result: fill placeholders so the report stays renderable.
	missing := missingSections(collected, payload.Sections)
	for _, name := range missing {
		collected[name] = Unavailable
	}
	return g.newTeardown(payload, collected, missing), nil
}

func (g *Generator) newTeardown(payload PromptPayload, sections Sections, missing []SectionName) *Teardown {
	return &Teardown{
		Product:     payload.Product,
		Sections:    sections,
		GeneratedAt: time.Now().UTC(),
		Partial:     len(missing) > 0,
		Missing:     missing,
	}
}

// complete runs one collaborator call under the configured timeout.
func (g *Generator) complete(ctx context.Context, prompt string, opts CompleteOptions) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()
	return g.client.Complete(cctx, prompt, opts)
}

// missingSections returns required sections absent from have, in canonical order.
func missingSections(have Sections, want []SectionName) []SectionName {
	var missing []SectionName
	for _, name := range want {
		if have[name] == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// waitBackoff sleeps for the given duration, aborting early on cancellation.
func waitBackoff(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
