package core

import (
	"strings"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare object", `{"a": 1}`, `{"a": 1}`},
		{"fenced json", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"plain fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding prose", "Here you go:\n{\"a\": 1}\nHope that helps!", `{"a": 1}`},
		{"no object", "sorry, I can't do that", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractJSON(tt.input); got != tt.want {
				t.Errorf("ExtractJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseSectionsComplete(t *testing.T) {
	raw := `{
		"strategy": "Positioned as the default payment layer.",
		"kpis": ["MAU", "transaction volume"],
		"swot": {"strengths": ["distribution"], "weaknesses": ["margin"]},
		"executive_summary": "A strong default with growth headroom."
	}`
	want := DepthQuick.Sections()

	sections, schemaErr := ParseSections(raw, want)
	if schemaErr != nil {
		t.Fatalf("ParseSections() schema error = %v", schemaErr)
	}
	if len(sections) != len(want) {
		t.Errorf("parsed %d sections, want %d", len(sections), len(want))
	}
	if !strings.Contains(sections[SectionKPIs], "- MAU") {
		t.Errorf("array value should flatten to bullets, got %q", sections[SectionKPIs])
	}
	if !strings.Contains(sections[SectionSWOT], "strengths") {
		t.Errorf("object value should render as JSON, got %q", sections[SectionSWOT])
	}
}

func TestParseSectionsMissing(t *testing.T) {
	raw := `{"strategy": "something", "kpis": ""}`
	want := DepthQuick.Sections()

	sections, schemaErr := ParseSections(raw, want)
	if schemaErr == nil {
		t.Fatal("expected schema error for incomplete response")
	}
	if len(schemaErr.Missing) != 3 {
		t.Errorf("missing = %v, want 3 entries (empty kpis counts as missing)", schemaErr.Missing)
	}
	if sections[SectionStrategy] == "" {
		t.Error("parsed sections should still carry what was present")
	}
}

func TestParseSectionsGarbage(t *testing.T) {
	for _, raw := range []string{"", "not json at all", "{broken"} {
		sections, schemaErr := ParseSections(raw, DepthQuick.Sections())
		if schemaErr == nil {
			t.Errorf("ParseSections(%q) should report a schema error", raw)
		}
		if len(sections) != 0 {
			t.Errorf("ParseSections(%q) returned sections from garbage", raw)
		}
	}
}

func TestSchemaErrorNamesMissingSections(t *testing.T) {
	_, schemaErr := ParseSections(`{"strategy": "x"}`, DepthQuick.Sections())
	if schemaErr == nil {
		t.Fatal("expected schema error")
	}
	if !strings.Contains(schemaErr.Error(), "kpis") {
		t.Errorf("schema error should name missing sections, got: %s", schemaErr.Error())
	}
}
