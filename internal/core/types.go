package core

import (
	"context"
	"fmt"
	"time"

	"github.com/dhabedank/teardown/internal/industry"
)

// SectionName identifies one block of a teardown report.
type SectionName string

const (
	SectionStrategy       SectionName = "strategy"
	SectionGrowthLoops    SectionName = "growth_loops"
	SectionEngagement     SectionName = "engagement"
	SectionKPIs           SectionName = "kpis"
	SectionUX             SectionName = "ux"
	SectionSWOT           SectionName = "swot"
	SectionOpportunityMap SectionName = "opportunity_map"
	SectionExecSummary    SectionName = "executive_summary"
)

// CanonicalSections is the full section universe in render order.
// Exporters and the prompt schema both follow this ordering.
var CanonicalSections = []SectionName{
	SectionStrategy,
	SectionGrowthLoops,
	SectionEngagement,
	SectionKPIs,
	SectionUX,
	SectionSWOT,
	SectionOpportunityMap,
	SectionExecSummary,
}

// sectionTitles maps section keys to human-readable headings.
var sectionTitles = map[SectionName]string{
	SectionStrategy:       "Product Strategy & Positioning",
	SectionGrowthLoops:    "Growth Loops & Acquisition",
	SectionEngagement:     "Engagement Mechanics & Retention",
	SectionKPIs:           "KPIs & Measurement Plan",
	SectionUX:             "Design & UX Tear-Down",
	SectionSWOT:           "SWOT & Competitive Positioning",
	SectionOpportunityMap: "Opportunity Map & Roadmap Ideas",
	SectionExecSummary:    "One-Page Executive Summary",
}

// Title returns the human-readable heading for a section.
func (s SectionName) Title() string {
	if t, ok := sectionTitles[s]; ok {
		return t
	}
	return string(s)
}

// IsCanonical reports whether s belongs to the fixed section universe.
func (s SectionName) IsCanonical() bool {
	_, ok := sectionTitles[s]
	return ok
}

// Unavailable is the placeholder content written into sections the model
// never produced after the retry budget was spent.
const Unavailable = "unavailable"

// Depth controls how thorough (and expensive) a teardown is.
type Depth string

const (
	DepthQuick    Depth = "quick"
	DepthStandard Depth = "standard"
	DepthDeep     Depth = "deep"
)

// ParseDepth validates a depth string from flags or config.
func ParseDepth(s string) (Depth, error) {
	switch Depth(s) {
	case DepthQuick, DepthStandard, DepthDeep:
		return Depth(s), nil
	}
	return "", fmt.Errorf("unknown depth %q (expected quick, standard, or deep)", s)
}

// Sections returns the sections required at this depth, in canonical order.
// Quick is a strict subset of standard; standard and deep cover the full
// universe and differ only in detail instructions.
func (d Depth) Sections() []SectionName {
	if d == DepthQuick {
		return []SectionName{SectionStrategy, SectionKPIs, SectionSWOT, SectionExecSummary}
	}
	sections := make([]SectionName, len(CanonicalSections))
	copy(sections, CanonicalSections)
	return sections
}

// Instructions returns the per-section detail instruction for this depth.
func (d Depth) Instructions() string {
	switch d {
	case DepthQuick:
		return "concise bullet points (1-3 bullets per section)"
	case DepthDeep:
		return "comprehensive multi-paragraph analysis with frameworks and examples"
	default:
		return "detailed analysis with examples and 5-7 bullets per section"
	}
}

// TeardownRequest is a single user submission: what to analyze and how hard.
// Consumed once by the generator; fields are not mutated after creation.
type TeardownRequest struct {
	Product  string           `json:"product"`
	Industry industry.Profile `json:"industry"`
	Depth    Depth            `json:"depth"`
}

// Sections maps section names to their generated content.
// It marshals in canonical order so exported JSON is byte-stable.
type Sections map[SectionName]string

// Teardown is a completed, section-organized analysis of one product.
// Read-only once returned by the generator.
type Teardown struct {
	Product     string        `json:"product_identifier"`
	Sections    Sections      `json:"sections"`
	GeneratedAt time.Time     `json:"generated_at"`
	Partial     bool          `json:"partial,omitempty"`
	Missing     []SectionName `json:"missing_sections,omitempty"`
}

// Complete reports whether every section was generated for real,
// with no placeholder content.
func (t *Teardown) Complete() bool {
	return !t.Partial
}

// Validate checks the teardown against the section set required by depth.
// Required sections must be present, possibly as placeholders, never absent.
func (t *Teardown) Validate(depth Depth) error {
	if t.Product == "" {
		return &ValidationError{Field: "product_identifier", Message: "required"}
	}
	for name := range t.Sections {
		if !name.IsCanonical() {
			return &ValidationError{Field: string(name), Message: "not a known section"}
		}
	}
	for _, name := range depth.Sections() {
		if t.Sections[name] == "" {
			return &ValidationError{Field: string(name), Message: "required section missing"}
		}
	}
	return nil
}

// Verdict is the per-section outcome of a comparison.
type Verdict string

const (
	VerdictAWins         Verdict = "a_wins"
	VerdictBWins         Verdict = "b_wins"
	VerdictTie           Verdict = "tie"
	VerdictNotComparable Verdict = "not_comparable"
)

// Invert swaps the winner. Tie and not_comparable are their own inverses.
func (v Verdict) Invert() Verdict {
	switch v {
	case VerdictAWins:
		return VerdictBWins
	case VerdictBWins:
		return VerdictAWins
	}
	return v
}

// Comparison pairs two completed teardowns with per-section verdicts.
// Immutable after assembly.
type Comparison struct {
	TeardownA Teardown                `json:"teardown_a"`
	TeardownB Teardown                `json:"teardown_b"`
	Verdicts  map[SectionName]Verdict `json:"per_section_verdict"`
	Summary   string                  `json:"summary"`
}

// CompleteOptions tune a single collaborator call.
type CompleteOptions struct {
	System      string
	Temperature float32
	MaxTokens   int
}

// LLMClient is the external collaborator used by the generator.
// This matches llm.Client but is defined here to avoid import cycles.
type LLMClient interface {
	// Name returns the client identifier for display.
	Name() string

	// Complete sends a prompt and returns the raw model output.
	Complete(ctx context.Context, prompt string, opts CompleteOptions) (string, error)
}

// ValidationError represents a validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}
