package cmd

import (
	"context"
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dhabedank/teardown/internal/core"
	"github.com/dhabedank/teardown/internal/tui"
)

var plainOutput bool

// CompareCmd represents the compare command.
var CompareCmd = &cobra.Command{
	Use:   "compare <productA> <productB>",
	Short: "Generate and compare two product teardowns",
	Long: `Generate teardowns for two products concurrently, then compare them
section by section with deterministic scoring heuristics.

Both teardowns use the same industry lens and depth so their section sets
line up. Sections that could not be generated on either side are marked
not comparable rather than failing the comparison.

Examples:
  teardown compare "Google Pay" "Cred" --industry fintech
  teardown compare "Notion" "Obsidian" --depth deep --format json -o versus.json`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	addGenerationFlags(CompareCmd)
	CompareCmd.Flags().BoolVar(&plainOutput, "plain", false, "Disable the interactive progress display")
}

func runCompare(cmd *cobra.Command, args []string) error {
	if err := loadConfig(cmd); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	payloads := make([]core.PromptPayload, 2)
	for i, product := range args {
		req, err := buildRequest(product)
		if err != nil {
			return err
		}
		payloads[i], err = core.BuildPrompt(req)
		if err != nil {
			return err
		}
	}

	gen, err := newGenerator()
	if err != nil {
		return err
	}

	teardowns, err := generatePair(cmd.Context(), gen, payloads)
	if err != nil {
		return err
	}

	comparison := core.NewAssembler(nil).Assemble(*teardowns[0], *teardowns[1])

	for _, t := range teardowns {
		if t.Partial {
			fmt.Printf("%s %s: %d section(s) unavailable\n",
				tui.WarningStyle.Render("⚠"), t.Product, len(t.Missing))
		}
	}

	report, err := renderComparison(&comparison)
	if err != nil {
		return err
	}
	return writeReport(report)
}

// generatePair runs both teardown generations concurrently and joins on
// completion. The two calls share no mutable state.
func generatePair(ctx context.Context, gen *core.Generator, payloads []core.PromptPayload) ([]*core.Teardown, error) {
	results := make([]*core.Teardown, len(payloads))
	errs := make([]error, len(payloads))

	var prog *tea.Program
	if plainOutput {
		for _, p := range payloads {
			fmt.Println(tui.RenderRunStart(p.Product, effectiveModel(), len(p.System)+len(p.User)))
		}
	} else {
		runs := make([]tui.RunInfo, len(payloads))
		for i, p := range payloads {
			runs[i] = tui.RunInfo{
				Product:    p.Product,
				Model:      effectiveModel(),
				InputChars: len(p.System) + len(p.User),
			}
		}
		prog = tea.NewProgram(tui.NewProgress(runs))
	}

	start := time.Now()
	var wg sync.WaitGroup
	for i, payload := range payloads {
		wg.Add(1)
		go func(idx int, p core.PromptPayload) {
			defer wg.Done()

			t, err := gen.Generate(ctx, p)
			results[idx] = t
			errs[idx] = err

			outputChars := 0
			if t != nil {
				for _, content := range t.Sections {
					outputChars += len(content)
				}
			}
			if prog != nil {
				prog.Send(tui.RunCompleteMsg{Index: idx, OutputChars: outputChars, Failed: err != nil})
			} else if err == nil {
				fmt.Println(tui.RenderRunComplete(p.Product, time.Since(start),
					len(p.System)+len(p.User), outputChars, effectiveModel()))
			}
		}(i, payload)
	}

	if prog != nil {
		go func() {
			wg.Wait()
			prog.Send(tui.AllDoneMsg{})
		}()
		if _, err := prog.Run(); err != nil {
			return nil, fmt.Errorf("progress display failed: %w", err)
		}
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("teardown for %q failed: %w", payloads[i].Product, err)
		}
	}
	return results, nil
}
