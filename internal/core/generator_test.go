package core

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dhabedank/teardown/internal/industry"
)

// scriptedClient replays canned responses or errors, one per call.
type scriptedClient struct {
	script  []scriptStep
	calls   int
	prompts []string
}

type scriptStep struct {
	out string
	err error
}

func (c *scriptedClient) Name() string { return "scripted" }

func (c *scriptedClient) Complete(ctx context.Context, prompt string, opts CompleteOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c.prompts = append(c.prompts, prompt)
	step := c.script[len(c.script)-1]
	if c.calls < len(c.script) {
		step = c.script[c.calls]
	}
	c.calls++
	return step.out, step.err
}

// responseFor builds a valid JSON response covering the given sections.
func responseFor(t *testing.T, sections []SectionName) string {
	t.Helper()
	m := make(map[string]string, len(sections))
	for _, s := range sections {
		m[string(s)] = "Analysis of " + s.Title() + " with one concrete experiment idea."
	}
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return string(data)
}

func fastConfig() GenerateConfig {
	return GenerateConfig{
		MaxRetries: 2,
		Timeout:    time.Second,
		Backoff:    time.Millisecond,
		MaxTokens:  1024,
	}
}

func mustPayload(t *testing.T) PromptPayload {
	t.Helper()
	payload, err := BuildPrompt(TeardownRequest{
		Product:  "Google Pay",
		Industry: industry.Lookup("fintech"),
		Depth:    DepthStandard,
	})
	if err != nil {
		t.Fatalf("BuildPrompt() error = %v", err)
	}
	return payload
}

func TestGenerateComplete(t *testing.T) {
	payload := mustPayload(t)
	client := &scriptedClient{script: []scriptStep{
		{out: responseFor(t, payload.Sections)},
	}}

	td, err := NewGenerator(client, fastConfig()).Generate(context.Background(), payload)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if td.Partial {
		t.Error("complete response should not be flagged partial")
	}
	if len(td.Sections) != 8 {
		t.Errorf("got %d sections, want 8", len(td.Sections))
	}
	if td.Product != "Google Pay" {
		t.Errorf("Product = %q", td.Product)
	}
	if td.GeneratedAt.IsZero() {
		t.Error("GeneratedAt should be set")
	}
	if err := td.Validate(DepthStandard); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if client.calls != 1 {
		t.Errorf("expected a single collaborator call, got %d", client.calls)
	}
}

func TestGenerateRetriesMissingSections(t *testing.T) {
	payload := mustPayload(t)

	// First attempt drops two sections; the retry supplies everything.
	incomplete := payload.Sections[:6]
	client := &scriptedClient{script: []scriptStep{
		{out: responseFor(t, incomplete)},
		{out: responseFor(t, payload.Sections)},
	}}

	td, err := NewGenerator(client, fastConfig()).Generate(context.Background(), payload)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if td.Partial {
		t.Error("teardown should be complete after the retry")
	}
	for _, s := range payload.Sections {
		if td.Sections[s] == "" || td.Sections[s] == Unavailable {
			t.Errorf("section %q should be filled after retry", s)
		}
	}
	if client.calls != 2 {
		t.Errorf("expected 2 calls (initial + 1 retry), got %d", client.calls)
	}

	// The retry prompt must list the missing sections explicitly.
	retryPrompt := client.prompts[1]
	if !strings.Contains(retryPrompt, "INCOMPLETE") {
		t.Error("retry prompt should flag the incomplete attempt")
	}
	for _, s := range payload.Sections[6:] {
		if !strings.Contains(retryPrompt, string(s)) {
			t.Errorf("retry prompt should name missing section %q", s)
		}
	}
}

func TestGeneratePartialAfterBudget(t *testing.T) {
	payload := mustPayload(t)
	incomplete := payload.Sections[:5]
	client := &scriptedClient{script: []scriptStep{
		{out: responseFor(t, incomplete)},
	}}

	td, err := NewGenerator(client, fastConfig()).Generate(context.Background(), payload)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !td.Partial {
		t.Fatal("teardown should be flagged partial")
	}
	if len(td.Missing) != 3 {
		t.Errorf("Missing = %v, want 3 entries", td.Missing)
	}
	for _, s := range td.Missing {
		if td.Sections[s] != Unavailable {
			t.Errorf("missing section %q should carry the placeholder", s)
		}
	}
	// Required set is present even if as placeholders.
	if err := td.Validate(DepthStandard); err != nil {
		t.Errorf("partial teardown should still validate: %v", err)
	}
	if client.calls != 3 {
		t.Errorf("expected initial + 2 retries, got %d calls", client.calls)
	}
}

func TestGeneratePropagatesCollaboratorError(t *testing.T) {
	rateLimited := errors.New("rate limited by provider")
	payload := mustPayload(t)
	client := &scriptedClient{script: []scriptStep{
		{err: rateLimited},
	}}

	td, err := NewGenerator(client, fastConfig()).Generate(context.Background(), payload)
	if td != nil {
		t.Error("no partial teardown should be returned when every call fails")
	}
	if !errors.Is(err, rateLimited) {
		t.Errorf("error = %v, want the collaborator error unchanged", err)
	}
	if client.calls != 3 {
		t.Errorf("expected full retry budget, got %d calls", client.calls)
	}
}

func TestGenerateLaterErrorKeepsEarlierSections(t *testing.T) {
	payload := mustPayload(t)
	client := &scriptedClient{script: []scriptStep{
		{out: responseFor(t, payload.Sections[:7])},
		{err: errors.New("transport blip")},
		{err: errors.New("transport blip")},
	}}

	td, err := NewGenerator(client, fastConfig()).Generate(context.Background(), payload)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !td.Partial || len(td.Missing) != 1 {
		t.Errorf("expected partial with 1 missing section, got partial=%v missing=%v", td.Partial, td.Missing)
	}
}

func TestGenerateCancellation(t *testing.T) {
	payload := mustPayload(t)
	client := &scriptedClient{script: []scriptStep{
		{err: errors.New("unreachable")},
	}}

	config := fastConfig()
	config.Backoff = time.Minute // cancellation must interrupt the backoff wait

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := NewGenerator(client, config).Generate(ctx, payload)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want context deadline", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Error("cancellation should stop retries promptly")
	}
}
