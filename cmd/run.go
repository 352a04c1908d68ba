package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhabedank/teardown/internal/core"
	"github.com/dhabedank/teardown/internal/tui"
)

// RunCmd represents the run command.
var RunCmd = &cobra.Command{
	Use:   "run <product>",
	Short: "Generate a product teardown",
	Long: `Generate a structured product teardown for one product.

The teardown covers strategy, growth loops, engagement, KPIs, UX, SWOT,
an opportunity map, and an executive summary. Quick depth trims the
section set; standard and deep cover all eight with increasing detail.

Examples:
  teardown run "Google Pay" --industry fintech
  teardown run "Duolingo" --industry edtech --depth deep --format json -o duolingo.json`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	addGenerationFlags(RunCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	if err := loadConfig(cmd); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	req, err := buildRequest(args[0])
	if err != nil {
		return err
	}

	payload, err := core.BuildPrompt(req)
	if err != nil {
		return err
	}

	gen, err := newGenerator()
	if err != nil {
		return err
	}

	inputChars := len(payload.System) + len(payload.User)
	fmt.Println(tui.RenderRunStart(payload.Product, effectiveModel(), inputChars))

	start := time.Now()
	teardown, err := gen.Generate(cmd.Context(), payload)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	outputChars := 0
	for _, content := range teardown.Sections {
		outputChars += len(content)
	}
	fmt.Println(tui.RenderRunComplete(payload.Product, time.Since(start), inputChars, outputChars, effectiveModel()))

	if teardown.Partial {
		fmt.Printf("%s Partial result - sections unavailable:\n", tui.WarningStyle.Render("⚠"))
		for _, name := range teardown.Missing {
			fmt.Printf("  • %s\n", name.Title())
		}
	}

	report, err := renderTeardown(teardown)
	if err != nil {
		return err
	}
	return writeReport(report)
}
