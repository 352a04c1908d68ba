package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dhabedank/teardown/internal/core"
	"github.com/dhabedank/teardown/internal/export"
	"github.com/dhabedank/teardown/internal/industry"
	"github.com/dhabedank/teardown/internal/llm"
	"github.com/dhabedank/teardown/internal/tui"
)

var (
	industryTag string
	depthFlag   string
	llmProvider string
	llmModel    string
	temperature float32
	maxTokens   int
	timeoutSecs int
	retries     int
	format      string
	outputPath  string
	configFile  string
)

// addGenerationFlags registers the flags shared by run and compare.
func addGenerationFlags(c *cobra.Command) {
	c.Flags().StringVarP(&industryTag, "industry", "i", "general",
		fmt.Sprintf("Industry lens (%s)", strings.Join(industry.Tags(), "/")))
	c.Flags().StringVarP(&depthFlag, "depth", "d", "standard", "Analysis depth (quick/standard/deep)")

	c.Flags().StringVarP(&llmProvider, "provider", "l", "auto", "LLM provider (auto/openai/anthropic)")
	c.Flags().StringVarP(&llmModel, "model", "m", "", "Model to use (provider-specific)")
	c.Flags().Float32Var(&temperature, "temperature", 0.2, "Sampling temperature (0.0-0.9)")
	c.Flags().IntVar(&maxTokens, "max-tokens", 4096, "Response token limit")
	c.Flags().IntVar(&timeoutSecs, "timeout", 60, "Per-call timeout in seconds")
	c.Flags().IntVar(&retries, "retries", 2, "Regeneration retries for incomplete output")

	c.Flags().StringVarP(&format, "format", "f", "markdown", "Output format (markdown/json)")
	c.Flags().StringVarP(&outputPath, "output", "o", "", "Write report to file (default: stdout)")
	c.Flags().StringVar(&configFile, "config", "", "Config file (default: .teardown.yaml)")
}

// Config file structure
type configFileData struct {
	Provider    string  `yaml:"provider"`
	Model       string  `yaml:"model"`
	Industry    string  `yaml:"industry"`
	Depth       string  `yaml:"depth"`
	Temperature float32 `yaml:"temperature"`
	Format      string  `yaml:"format"`
}

// loadConfig reads the config file; explicitly set flags win over it.
func loadConfig(cmd *cobra.Command) error {
	configPath := configFile
	if configPath == "" {
		// Check .teardown.yaml in current dir
		if _, err := os.Stat(".teardown.yaml"); err == nil {
			configPath = ".teardown.yaml"
		} else if home, err := os.UserHomeDir(); err == nil {
			// Check ~/.teardown.yaml
			homePath := filepath.Join(home, ".teardown.yaml")
			if _, err := os.Stat(homePath); err == nil {
				configPath = homePath
			}
		}
	}

	if configPath == "" {
		return nil // No config file, use defaults
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg configFileData
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if !cmd.Flags().Changed("provider") && cfg.Provider != "" {
		llmProvider = cfg.Provider
	}
	if !cmd.Flags().Changed("model") && cfg.Model != "" {
		llmModel = cfg.Model
	}
	if !cmd.Flags().Changed("industry") && cfg.Industry != "" {
		industryTag = cfg.Industry
	}
	if !cmd.Flags().Changed("depth") && cfg.Depth != "" {
		depthFlag = cfg.Depth
	}
	if !cmd.Flags().Changed("temperature") && cfg.Temperature > 0 {
		temperature = cfg.Temperature
	}
	if !cmd.Flags().Changed("format") && cfg.Format != "" {
		format = cfg.Format
	}

	return nil
}

// buildRequest assembles a teardown request from args and flags.
func buildRequest(product string) (core.TeardownRequest, error) {
	depth, err := core.ParseDepth(depthFlag)
	if err != nil {
		return core.TeardownRequest{}, err
	}
	return core.TeardownRequest{
		Product:  product,
		Industry: industry.Lookup(industryTag),
		Depth:    depth,
	}, nil
}

// newGenerator wires the detected LLM client into a generator.
func newGenerator() (*core.Generator, error) {
	client, err := llm.DetectClient(llm.Config{
		Provider: llmProvider,
		Model:    llmModel,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	gen := core.NewGenerator(client, core.GenerateConfig{
		MaxRetries:  retries,
		Timeout:     time.Duration(timeoutSecs) * time.Second,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	return gen, nil
}

// effectiveModel returns the model name used for cost display.
func effectiveModel() string {
	if llmModel != "" {
		return llmModel
	}
	switch llmProvider {
	case "anthropic":
		return "claude-sonnet-4-5-20250929"
	default:
		return "gpt-4o-mini"
	}
}

// renderTeardown serializes a teardown per --format.
func renderTeardown(t *core.Teardown) (string, error) {
	switch format {
	case "json":
		return export.TeardownJSON(t)
	case "markdown", "md":
		return export.TeardownMarkdown(t), nil
	default:
		return "", fmt.Errorf("unknown format: %s", format)
	}
}

// renderComparison serializes a comparison per --format.
func renderComparison(c *core.Comparison) (string, error) {
	switch format {
	case "json":
		return export.ComparisonJSON(c)
	case "markdown", "md":
		return export.ComparisonMarkdown(c), nil
	default:
		return "", fmt.Errorf("unknown format: %s", format)
	}
}

// writeReport prints to stdout or writes the report file.
func writeReport(content string) error {
	if outputPath == "" {
		fmt.Println(content)
		return nil
	}
	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Printf("%s Report written to %s\n", tui.SuccessStyle.Render("✓"), outputPath)
	return nil
}
