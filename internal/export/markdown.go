package export

import (
	"fmt"
	"strings"

	"github.com/dhabedank/teardown/internal/core"
)

// TeardownMarkdown renders a teardown as Markdown: one heading per section
// in canonical order, placeholder markers for unavailable sections.
func TeardownMarkdown(t *core.Teardown) string {
	var b strings.Builder

	b.WriteString("# Product Teardown — ")
	b.WriteString(sanitize(t.Product))
	b.WriteString("\n\n")

	if t.Partial {
		b.WriteString("> Partial report: some sections could not be generated.\n\n")
	}

	for _, name := range core.CanonicalSections {
		content, ok := t.Sections[name]
		if !ok {
			continue
		}
		b.WriteString("## ")
		b.WriteString(name.Title())
		b.WriteString("\n\n")
		if content == core.Unavailable {
			b.WriteString("_unavailable_\n\n")
			continue
		}
		b.WriteString(sanitize(content))
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "_Generated at %s_\n", t.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	return b.String()
}

// ComparisonMarkdown renders a comparison: summary first, then a verdict
// table, then both full teardowns.
func ComparisonMarkdown(c *core.Comparison) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Comparison — %s vs %s\n\n", sanitize(c.TeardownA.Product), sanitize(c.TeardownB.Product))
	b.WriteString(sanitize(c.Summary))
	b.WriteString("\n\n## Verdicts\n\n")

	b.WriteString("| Section | Verdict |\n|---|---|\n")
	for _, name := range core.CanonicalSections {
		v, ok := c.Verdicts[name]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s |\n", name.Title(), verdictLabel(v, c.TeardownA.Product, c.TeardownB.Product))
	}
	b.WriteString("\n---\n\n")

	b.WriteString(TeardownMarkdown(&c.TeardownA))
	b.WriteString("\n---\n\n")
	b.WriteString(TeardownMarkdown(&c.TeardownB))
	return b.String()
}

func verdictLabel(v core.Verdict, productA, productB string) string {
	switch v {
	case core.VerdictAWins:
		return sanitize(productA)
	case core.VerdictBWins:
		return sanitize(productB)
	case core.VerdictTie:
		return "Tie"
	default:
		return "Not comparable"
	}
}

// sanitize strips control characters that would break Markdown rendering.
// Newlines and tabs pass through.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
