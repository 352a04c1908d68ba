package core

import (
	"fmt"
	"regexp"
	"strings"
)

// Scorer scores one section's content for comparison purposes.
// Implementations must be deterministic: identical input, identical score.
type Scorer interface {
	Score(section SectionName, content string) int
}

// Assembler merges two teardowns into a Comparison with per-section verdicts.
type Assembler struct {
	scorer Scorer
}

// NewAssembler creates an assembler. A nil scorer uses the default heuristics.
func NewAssembler(scorer Scorer) *Assembler {
	if scorer == nil {
		scorer = HeuristicScorer{}
	}
	return &Assembler{scorer: scorer}
}

// Assemble compares two teardowns section by section. Sections present in
// only one teardown, or filled with the unavailable placeholder on either
// side, are marked not_comparable rather than failing. Assemble(a, b) and
// Assemble(b, a) produce exactly inverse verdicts.
func (asm *Assembler) Assemble(a, b Teardown) Comparison {
	verdicts := make(map[SectionName]Verdict)

	for _, name := range CanonicalSections {
		ca, okA := a.Sections[name]
		cb, okB := b.Sections[name]
		if !okA && !okB {
			continue
		}
		if !okA || !okB || ca == Unavailable || cb == Unavailable {
			verdicts[name] = VerdictNotComparable
			continue
		}

		scoreA := asm.scorer.Score(name, ca)
		scoreB := asm.scorer.Score(name, cb)
		switch {
		case scoreA > scoreB:
			verdicts[name] = VerdictAWins
		case scoreB > scoreA:
			verdicts[name] = VerdictBWins
		default:
			verdicts[name] = VerdictTie
		}
	}

	return Comparison{
		TeardownA: a,
		TeardownB: b,
		Verdicts:  verdicts,
		Summary:   buildSummary(a.Product, b.Product, verdicts),
	}
}

// buildSummary renders the verdict map as a templated sentence. Deliberately
// not an LLM call: the comparison step stays deterministic and offline.
func buildSummary(productA, productB string, verdicts map[SectionName]Verdict) string {
	var winsA, winsB, ties, skipped []string
	for _, name := range CanonicalSections {
		v, ok := verdicts[name]
		if !ok {
			continue
		}
		switch v {
		case VerdictAWins:
			winsA = append(winsA, name.Title())
		case VerdictBWins:
			winsB = append(winsB, name.Title())
		case VerdictTie:
			ties = append(ties, name.Title())
		case VerdictNotComparable:
			skipped = append(skipped, name.Title())
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s vs %s: %s leads in %d section(s), %s in %d, with %d tied.",
		productA, productB, productA, len(winsA), productB, len(winsB), len(ties))
	if len(winsA) > 0 {
		fmt.Fprintf(&b, " %s is stronger on %s.", productA, joinList(winsA))
	}
	if len(winsB) > 0 {
		fmt.Fprintf(&b, " %s is stronger on %s.", productB, joinList(winsB))
	}
	if len(skipped) > 0 {
		fmt.Fprintf(&b, " Not comparable: %s.", joinList(skipped))
	}
	return b.String()
}

func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

// HeuristicScorer is the default section scorer. KPI sections score by the
// number of concrete metric mentions; everything else by distinct item count.
type HeuristicScorer struct{}

// metricPattern matches numeric figures and well-known metric names.
var metricPattern = regexp.MustCompile(`(?i)\d+(\.\d+)?%?|\b(dau|mau|wau|arpu|ltv|cac|nps|retention|churn|conversion|activation|north[- ]star)\b`)

func (HeuristicScorer) Score(section SectionName, content string) int {
	if section == SectionKPIs {
		return len(metricPattern.FindAllString(content, -1))
	}
	return countItems(content)
}

// countItems counts distinct bullet or line items; prose falls back to
// sentence count so single-paragraph sections still score.
func countItems(content string) int {
	seen := make(map[string]struct{})
	count := 0
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• \t")
		if line == "" {
			continue
		}
		key := strings.ToLower(line)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		count++
	}
	if count > 1 {
		return count
	}

	sentences := 0
	for _, s := range strings.FieldsFunc(content, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	if sentences > count {
		return sentences
	}
	return count
}
