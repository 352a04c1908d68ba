package llm

import (
	"fmt"
	"os"
)

// ModelInfo describes an available model.
type ModelInfo struct {
	ID          string // Model identifier (e.g., "gpt-4o-mini")
	Name        string // Human-readable name (e.g., "GPT-4o Mini")
	Description string // Brief description
	Provider    string // Provider name ("openai" or "anthropic")
}

// openaiModels lists OpenAI models suitable for teardown generation.
var openaiModels = []ModelInfo{
	{ID: "gpt-4o-mini", Name: "GPT-4o Mini", Description: "Fast and cost-effective, good default", Provider: "openai"},
	{ID: "gpt-4o", Name: "GPT-4o", Description: "Stronger analysis, higher cost", Provider: "openai"},
	{ID: "gpt-4-turbo", Name: "GPT-4 Turbo", Description: "Legacy premium model", Provider: "openai"},
}

// anthropicModels lists Claude models suitable for teardown generation.
var anthropicModels = []ModelInfo{
	{ID: "claude-sonnet-4-5-20250929", Name: "Claude Sonnet 4.5", Description: "Best balance of speed and capability", Provider: "anthropic"},
	{ID: "claude-haiku-4-5-20251001", Name: "Claude Haiku 4.5", Description: "Fastest, most cost-effective", Provider: "anthropic"},
	{ID: "claude-opus-4-5-20251101", Name: "Claude Opus 4.5", Description: "Maximum analysis depth", Provider: "anthropic"},
}

// AvailableModels returns models grouped by provider based on configured keys.
func AvailableModels() map[string][]ModelInfo {
	result := make(map[string][]ModelInfo)

	if os.Getenv("OPENAI_API_KEY") != "" {
		result["openai"] = openaiModels
	}
	if os.Getenv("ANTHROPIC_API_KEY") != "" {
		result["anthropic"] = anthropicModels
	}

	return result
}

// ModelsForProvider returns the model catalog for one provider.
func ModelsForProvider(provider string) []ModelInfo {
	switch provider {
	case "openai":
		return openaiModels
	case "anthropic":
		return anthropicModels
	}
	return nil
}

// DetectClient finds the best available LLM client for the config.
// Priority with provider "auto": OpenAI > Anthropic.
func DetectClient(config Config) (Client, error) {
	switch config.Provider {
	case "", "auto":
		if os.Getenv("OPENAI_API_KEY") != "" || config.APIKey != "" {
			return NewOpenAIClient(config)
		}
		if os.Getenv("ANTHROPIC_API_KEY") != "" {
			return NewAnthropicClient(config)
		}
		return nil, fmt.Errorf("no LLM client available - set OPENAI_API_KEY or ANTHROPIC_API_KEY")
	case "openai":
		return NewOpenAIClient(config)
	case "anthropic":
		return NewAnthropicClient(config)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", config.Provider)
	}
}

// ListAvailableClients returns identifiers for all usable clients.
func ListAvailableClients() []string {
	available := []string{}
	if os.Getenv("OPENAI_API_KEY") != "" {
		available = append(available, "openai-api")
	}
	if os.Getenv("ANTHROPIC_API_KEY") != "" {
		available = append(available, "anthropic-api")
	}
	return available
}
