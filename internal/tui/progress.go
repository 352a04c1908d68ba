package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// RunInfo tracks one in-flight teardown generation.
type RunInfo struct {
	Product     string
	Model       string
	InputChars  int
	OutputChars int
	StartTime   time.Time
	EndTime     time.Time
	Done        bool
	Failed      bool
}

// RunCompleteMsg marks a run as finished. Sent from the generation
// goroutines via Program.Send.
type RunCompleteMsg struct {
	Index       int
	OutputChars int
	Failed      bool
}

// AllDoneMsg tells the display every run has finished.
type AllDoneMsg struct{}

// Progress is a Bubble Tea model showing concurrent teardown runs.
type Progress struct {
	spinner  spinner.Model
	runs     []RunInfo
	quitting bool
}

// NewProgress creates a progress display for the given runs.
func NewProgress(runs []RunInfo) *Progress {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	now := time.Now()
	for i := range runs {
		runs[i].StartTime = now
	}

	return &Progress{spinner: s, runs: runs}
}

// Init implements tea.Model.
func (p *Progress) Init() tea.Cmd {
	return p.spinner.Tick
}

// Update implements tea.Model.
func (p *Progress) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			p.quitting = true
			return p, tea.Quit
		}

	case RunCompleteMsg:
		if msg.Index >= 0 && msg.Index < len(p.runs) {
			p.runs[msg.Index].Done = true
			p.runs[msg.Index].Failed = msg.Failed
			p.runs[msg.Index].EndTime = time.Now()
			p.runs[msg.Index].OutputChars = msg.OutputChars
		}
		return p, nil

	case AllDoneMsg:
		p.quitting = true
		return p, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd
	}

	return p, nil
}

// View implements tea.Model.
func (p *Progress) View() string {
	if p.quitting {
		return p.summaryView()
	}

	var b strings.Builder
	for _, run := range p.runs {
		var status string
		switch {
		case run.Failed:
			status = ErrorStyle.Render("✗")
		case run.Done:
			status = SuccessStyle.Render("✓")
		default:
			status = p.spinner.View()
		}

		elapsed := time.Since(run.StartTime).Truncate(time.Second)
		fmt.Fprintf(&b, "%s %s  %s  %s  ~%s input\n",
			status,
			ProductStyle.Render(run.Product),
			ModelStyle.Render(run.Model),
			HelpStyle.Render(elapsed.String()),
			FormatTokens(EstimateTokens(run.InputChars)),
		)
	}
	return b.String()
}

// summaryView shows the final token/cost summary after completion.
func (p *Progress) summaryView() string {
	if len(p.runs) == 0 {
		return ""
	}

	var totalInputTokens, totalOutputTokens int
	var totalCost float64
	var totalDuration time.Duration

	for _, run := range p.runs {
		inputTokens := EstimateTokens(run.InputChars)
		outputTokens := EstimateTokens(run.OutputChars)
		totalInputTokens += inputTokens
		totalOutputTokens += outputTokens
		totalCost += EstimateCost(run.Model, inputTokens, outputTokens)
		if run.Done {
			totalDuration += run.EndTime.Sub(run.StartTime)
		}
	}

	return fmt.Sprintf("\n%s\n  Teardowns: %d  Tokens: ~%s in / ~%s out  Est. cost: %s  Time: %s\n",
		TitleStyle.Render("Generation Complete"),
		len(p.runs),
		FormatTokens(totalInputTokens),
		FormatTokens(totalOutputTokens),
		CostStyle.Render(FormatCost(totalCost)),
		totalDuration.Truncate(time.Second).String(),
	)
}

// RenderRunStart returns a start line for non-interactive mode.
func RenderRunStart(product, model string, inputChars int) string {
	return fmt.Sprintf("%s %s  %s  ~%s input tokens",
		SpinnerStyle.Render("→"),
		ProductStyle.Render(product),
		ModelStyle.Render(model),
		FormatTokens(EstimateTokens(inputChars)),
	)
}

// RenderRunComplete returns a completion line for non-interactive mode.
func RenderRunComplete(product string, duration time.Duration, inputChars, outputChars int, model string) string {
	inputTokens := EstimateTokens(inputChars)
	outputTokens := EstimateTokens(outputChars)
	cost := EstimateCost(model, inputTokens, outputTokens)

	return fmt.Sprintf("%s %s  %s  ~%s tokens  %s",
		SuccessStyle.Render("✓"),
		ProductStyle.Render(product),
		HelpStyle.Render(duration.Truncate(time.Second).String()),
		FormatTokens(inputTokens+outputTokens),
		CostStyle.Render(FormatCost(cost)),
	)
}
