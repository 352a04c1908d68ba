package core

import (
	"strings"
	"testing"
	"time"
)

func teardownFor(product string, sections Sections) Teardown {
	return Teardown{
		Product:     product,
		Sections:    sections,
		GeneratedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestAssembleVerdicts(t *testing.T) {
	a := teardownFor("Stripe", Sections{
		SectionStrategy: "- Platform play\n- Developer-first distribution\n- Global rails",
		SectionKPIs:     "Track payment volume growth 20% QoQ, churn below 2%, NPS above 60.",
		SectionSWOT:     "- Strength: brand\n- Weakness: pricing",
	})
	b := teardownFor("Square", Sections{
		SectionStrategy: "- SMB hardware wedge",
		SectionKPIs:     "Track GPV and churn.",
		SectionSWOT:     "- Strength: omnichannel\n- Weakness: enterprise reach",
	})

	cmp := NewAssembler(nil).Assemble(a, b)

	want := map[SectionName]Verdict{
		SectionStrategy: VerdictAWins, // 3 items vs 1
		SectionKPIs:     VerdictAWins, // more metric mentions
		SectionSWOT:     VerdictTie,   // 2 items each
	}
	for name, v := range want {
		if cmp.Verdicts[name] != v {
			t.Errorf("verdict[%s] = %s, want %s", name, cmp.Verdicts[name], v)
		}
	}
	if len(cmp.Verdicts) != len(want) {
		t.Errorf("got %d verdicts, want %d (absent-both sections are skipped)", len(cmp.Verdicts), len(want))
	}
}

func TestAssembleIdenticalContentTies(t *testing.T) {
	sections := Sections{
		SectionKPIs:        "DAU, MAU, 30-day retention at 40%.",
		SectionExecSummary: "A focused wallet product with strong engagement loops.",
	}
	a := teardownFor("Google Pay", sections)
	b := teardownFor("Apple Pay", sections)

	cmp := NewAssembler(nil).Assemble(a, b)
	for name, v := range cmp.Verdicts {
		if v != VerdictTie {
			t.Errorf("verdict[%s] = %s, want tie for identical content", name, v)
		}
	}
}

func TestAssembleNotComparable(t *testing.T) {
	a := teardownFor("A", Sections{
		SectionStrategy: "- wedge",
		SectionKPIs:     Unavailable,
		SectionUX:       "- clean onboarding",
	})
	b := teardownFor("B", Sections{
		SectionStrategy: "- moat",
		SectionKPIs:     "DAU and churn.",
	})

	cmp := NewAssembler(nil).Assemble(a, b)
	if cmp.Verdicts[SectionKPIs] != VerdictNotComparable {
		t.Errorf("placeholder side should be not_comparable, got %s", cmp.Verdicts[SectionKPIs])
	}
	if cmp.Verdicts[SectionUX] != VerdictNotComparable {
		t.Errorf("one-sided section should be not_comparable, got %s", cmp.Verdicts[SectionUX])
	}
	if !strings.Contains(cmp.Summary, "Not comparable") {
		t.Errorf("summary should mention skipped sections: %q", cmp.Summary)
	}
}

func TestAssembleInverseSymmetry(t *testing.T) {
	a := teardownFor("Stripe", Sections{
		SectionStrategy:    "- a\n- b\n- c",
		SectionGrowthLoops: "- referral loop",
		SectionKPIs:        "40% retention, NPS 70",
		SectionEngagement:  Unavailable,
	})
	b := teardownFor("Square", Sections{
		SectionStrategy:    "- x",
		SectionGrowthLoops: "- seller network\n- app marketplace",
		SectionKPIs:        "churn",
		SectionEngagement:  "- weekly digest",
	})

	asm := NewAssembler(nil)
	forward := asm.Assemble(a, b)
	reverse := asm.Assemble(b, a)

	for name, v := range forward.Verdicts {
		if reverse.Verdicts[name] != v.Invert() {
			t.Errorf("verdict[%s]: forward %s, reverse %s, want inverse", name, v, reverse.Verdicts[name])
		}
	}
	if len(forward.Verdicts) != len(reverse.Verdicts) {
		t.Error("verdict coverage must match regardless of argument order")
	}
}

func TestAssembleSummaryDeterministic(t *testing.T) {
	a := teardownFor("A", Sections{SectionStrategy: "- one\n- two"})
	b := teardownFor("B", Sections{SectionStrategy: "- one"})

	asm := NewAssembler(nil)
	first := asm.Assemble(a, b).Summary
	second := asm.Assemble(a, b).Summary
	if first != second {
		t.Errorf("summary not deterministic:\n%q\n%q", first, second)
	}
	if !strings.Contains(first, "A leads in 1 section(s)") {
		t.Errorf("summary = %q", first)
	}
	if !strings.Contains(first, "stronger on Product Strategy & Positioning") {
		t.Errorf("summary should name winning sections: %q", first)
	}
}

func TestHeuristicScorer(t *testing.T) {
	s := HeuristicScorer{}

	tests := []struct {
		name    string
		section SectionName
		content string
		want    int
	}{
		{"kpi metric mentions", SectionKPIs, "DAU up 12%, churn 2.5%, NPS 60", 6},
		{"bullet items", SectionStrategy, "- alpha\n- beta\n- gamma", 3},
		{"duplicate bullets collapse", SectionStrategy, "- alpha\n- alpha\n- beta", 2},
		{"prose sentence fallback", SectionUX, "Onboarding is smooth. Checkout has friction. Search is weak.", 3},
		{"empty content", SectionStrategy, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Score(tt.section, tt.content); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}
