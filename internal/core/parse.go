package core

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON extracts a JSON object from raw model output, tolerating
// markdown fences and surrounding prose. Returns "" if no object is found.
func ExtractJSON(output string) string {
	output = strings.TrimSpace(output)

	// Remove markdown fences
	if strings.HasPrefix(output, "```json") {
		output = strings.TrimPrefix(output, "```json")
		if idx := strings.LastIndex(output, "```"); idx != -1 {
			output = output[:idx]
		}
		output = strings.TrimSpace(output)
	} else if strings.HasPrefix(output, "```") {
		output = strings.TrimPrefix(output, "```")
		if idx := strings.LastIndex(output, "```"); idx != -1 {
			output = output[:idx]
		}
		output = strings.TrimSpace(output)
	}

	// Find JSON object
	start := strings.Index(output, "{")
	end := strings.LastIndex(output, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}

	return output[start : end+1]
}

// SchemaError reports model output that could not be parsed against the
// declared section schema. Never surfaced outside the generator; it drives
// the retry/partial-result policy.
type SchemaError struct {
	Reason  string
	Missing []SectionName
}

func (e *SchemaError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("schema error: %s (missing: %v)", e.Reason, e.Missing)
	}
	return "schema error: " + e.Reason
}

// ParseSections parses raw model output against the declared schema.
// Values may be strings, arrays, or objects (the prompt allows all three);
// arrays flatten to bullet lists and objects to indented JSON, mirroring how
// the report renders them. Empty content counts as missing.
func ParseSections(raw string, want []SectionName) (Sections, *SchemaError) {
	jsonStr := ExtractJSON(raw)
	if jsonStr == "" {
		return nil, &SchemaError{Reason: "no JSON object in response", Missing: want}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(jsonStr), &fields); err != nil {
		return nil, &SchemaError{Reason: "invalid JSON: " + err.Error(), Missing: want}
	}

	sections := Sections{}
	var missing []SectionName
	for _, name := range want {
		rawVal, ok := fields[string(name)]
		if !ok {
			missing = append(missing, name)
			continue
		}
		content := normalizeValue(rawVal)
		if content == "" {
			missing = append(missing, name)
			continue
		}
		sections[name] = content
	}

	if len(missing) > 0 {
		return sections, &SchemaError{Reason: "incomplete response", Missing: missing}
	}
	return sections, nil
}

// normalizeValue renders a section value as display text.
func normalizeValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var items []string
	if err := json.Unmarshal(raw, &items); err == nil {
		var b strings.Builder
		for _, item := range items {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			b.WriteString("- ")
			b.WriteString(item)
			b.WriteString("\n")
		}
		return strings.TrimRight(b.String(), "\n")
	}

	// Objects and mixed arrays render as indented JSON
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	if v == nil {
		return ""
	}
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	text := strings.TrimSpace(string(pretty))
	if text == "{}" || text == "[]" {
		return ""
	}
	return text
}
