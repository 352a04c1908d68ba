// Package export serializes teardowns and comparisons for download or piping.
// All functions are pure: they return strings and never touch disk.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dhabedank/teardown/internal/core"
)

// TeardownJSON serializes a teardown with stable key order:
// product_identifier, sections (canonical order), generated_at.
func TeardownJSON(t *core.Teardown) (string, error) {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal teardown: %w", err)
	}
	return string(data), nil
}

// ComparisonJSON serializes a comparison. Verdict keys sort alphabetically
// (encoding/json map behavior), so repeated exports are byte-identical.
func ComparisonJSON(c *core.Comparison) (string, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal comparison: %w", err)
	}
	return string(data), nil
}

// ImportTeardown round-trips a TeardownJSON export back into a record.
func ImportTeardown(data string) (*core.Teardown, error) {
	var t core.Teardown
	if err := json.Unmarshal([]byte(data), &t); err != nil {
		return nil, fmt.Errorf("failed to parse teardown JSON: %w", err)
	}
	if t.Product == "" {
		return nil, &core.ValidationError{Field: "product_identifier", Message: "required"}
	}
	for name := range t.Sections {
		if !name.IsCanonical() {
			return nil, &core.ValidationError{Field: string(name), Message: "not a known section"}
		}
	}
	return &t, nil
}

// Filename suggests a download name for an export, matching the
// teardown_<product>.<ext> convention.
func Filename(product, ext string) string {
	slug := strings.ReplaceAll(strings.TrimSpace(product), " ", "_")
	return fmt.Sprintf("teardown_%s.%s", slug, ext)
}
