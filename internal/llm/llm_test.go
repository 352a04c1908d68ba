package llm

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

func TestErrorTaxonomy(t *testing.T) {
	cause := errors.New("connection reset")

	var transport error = &TransportError{Err: cause}
	if !errors.Is(transport, cause) {
		t.Error("TransportError should unwrap to its cause")
	}
	if !strings.Contains(transport.Error(), "transport") {
		t.Errorf("TransportError message = %q", transport.Error())
	}

	var limited error = &RateLimitError{Err: cause, RetryAfter: 2 * time.Second}
	if !errors.Is(limited, cause) {
		t.Error("RateLimitError should unwrap to its cause")
	}
	if !strings.Contains(limited.Error(), "2s") {
		t.Errorf("RateLimitError should report retry-after: %q", limited.Error())
	}

	var rl *RateLimitError
	if !errors.As(limited, &rl) {
		t.Error("errors.As should match *RateLimitError")
	}
	var te *TransportError
	if errors.As(limited, &te) {
		t.Error("rate limit errors must not match *TransportError")
	}
}

func TestClassifyOpenAIError(t *testing.T) {
	rateLimit := &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests, Message: "slow down"}
	if _, ok := classifyOpenAIError(rateLimit).(*RateLimitError); !ok {
		t.Error("429 should classify as rate limit")
	}

	serverErr := &openai.APIError{HTTPStatusCode: http.StatusInternalServerError, Message: "boom"}
	if _, ok := classifyOpenAIError(serverErr).(*TransportError); !ok {
		t.Error("5xx should classify as transport error")
	}

	if _, ok := classifyOpenAIError(errors.New("dial tcp: timeout")).(*TransportError); !ok {
		t.Error("plain errors should classify as transport errors")
	}
}

func TestDetectClientUnknownProvider(t *testing.T) {
	_, err := DetectClient(Config{Provider: "mystery"})
	if err == nil {
		t.Fatal("unknown provider should error")
	}
	if !strings.Contains(err.Error(), "mystery") {
		t.Errorf("error should name the provider: %v", err)
	}
}

func TestDetectClientExplicitProvider(t *testing.T) {
	client, err := DetectClient(Config{Provider: "openai", APIKey: "sk-test", Model: "gpt-4o-mini"})
	if err != nil {
		t.Fatalf("DetectClient() error = %v", err)
	}
	if client.Name() != "openai-api" {
		t.Errorf("Name() = %q, want openai-api", client.Name())
	}
}

func TestDetectClientAutoNoKeys(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	if _, err := DetectClient(Config{Provider: "auto"}); err == nil {
		t.Error("auto detection without keys should error")
	}
}

func TestNewOpenAIClientRequiresKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	if _, err := NewOpenAIClient(Config{}); err == nil {
		t.Error("missing API key should error")
	}
}

func TestModelsForProvider(t *testing.T) {
	openaiCatalog := ModelsForProvider("openai")
	if len(openaiCatalog) == 0 {
		t.Fatal("openai catalog should not be empty")
	}
	for _, m := range openaiCatalog {
		if m.Provider != "openai" {
			t.Errorf("model %s tagged %q, want openai", m.ID, m.Provider)
		}
	}

	anthropicCatalog := ModelsForProvider("anthropic")
	if len(anthropicCatalog) == 0 {
		t.Fatal("anthropic catalog should not be empty")
	}

	if ModelsForProvider("unknown") != nil {
		t.Error("unknown provider should return nil catalog")
	}
}

func TestAvailableModels(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("ANTHROPIC_API_KEY", "")

	available := AvailableModels()
	if _, ok := available["openai"]; !ok {
		t.Error("openai models should be available with its key set")
	}
	if _, ok := available["anthropic"]; ok {
		t.Error("anthropic models should require its key")
	}
}
