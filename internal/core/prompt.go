package core

import (
	"fmt"
	"strings"
)

// SystemPrompt is the system instruction for teardown generation.
// This enforces strict JSON output keyed by the declared section schema.
const SystemPrompt = `You are an expert Product Manager, Growth Lead, and UX Strategist. You produce structured PRODUCT TEARDOWNS and output ONLY valid JSON. No explanations, no commentary, no markdown - just the JSON object.

CRITICAL: Output ONLY the JSON object. Do NOT explain what you're doing. Do NOT ask questions. Do NOT add commentary.

## OUTPUT CONTRACT

- Return EXACTLY one JSON object whose keys are the section identifiers listed in the user message, in that order.
- Each value is either a string, an array of strings, or an object with named fields - whichever fits the section best.
- Every listed section MUST be present and non-empty. A missing or empty section is INVALID output and triggers retry.
- Keep output actionable and concrete; include at least one experiment idea per major section.
- For numeric recommendations (e.g., expected conversion uplift), give reasoned ballpark percentages.

## ANTI-PATTERNS TO AVOID

1. Generic analysis that could apply to any product - be SPECIFIC to the product and its industry
2. Sections that restate each other - each section has its own job
3. Markdown fencing around the JSON (no ` + "```json" + ` or ` + "```" + `)
4. Commentary before or after the JSON object`

// userPromptTemplate is the template for user messages.
const userPromptTemplate = `Produce a structured PRODUCT TEARDOWN for the following product: """%s"""

Industry lens: %s. Weigh these industry-specific dimensions throughout the analysis:
%s

Depth instruction: %s.

Return a JSON object with EXACTLY these keys, in this order:
%s

OUTPUT REQUIREMENTS (CRITICAL):
- Return ONLY the JSON object - no explanations before or after
- Start your response with { and end with }
- Every key listed above MUST be present with non-empty content
- The JSON must be valid and parseable`

// PromptPayload is a fully-composed collaborator request. The Sections slice
// is the schema contract the generator validates parsed output against.
type PromptPayload struct {
	Product  string
	System   string
	User     string
	Sections []SectionName
}

// BuildPrompt composes the collaborator payload for a teardown request.
// Pure function of its inputs: the same request always yields a
// byte-identical payload.
func BuildPrompt(req TeardownRequest) (PromptPayload, error) {
	product := strings.TrimSpace(req.Product)
	if product == "" {
		return PromptPayload{}, &ValidationError{Field: "product", Message: "required"}
	}
	depth, err := ParseDepth(string(req.Depth))
	if err != nil {
		return PromptPayload{}, err
	}

	sections := depth.Sections()

	var dims strings.Builder
	for _, d := range req.Industry.Dimensions {
		dims.WriteString("- ")
		dims.WriteString(d)
		dims.WriteString("\n")
	}

	var schema strings.Builder
	for _, s := range sections {
		fmt.Fprintf(&schema, "- %q: %s\n", string(s), s.Title())
	}

	user := fmt.Sprintf(
		userPromptTemplate,
		product,
		req.Industry.Tag,
		strings.TrimRight(dims.String(), "\n"),
		depth.Instructions(),
		strings.TrimRight(schema.String(), "\n"),
	)

	return PromptPayload{
		Product:  product,
		System:   SystemPrompt,
		User:     user,
		Sections: sections,
	}, nil
}

// BuildAmendedPrompt extends a payload's user prompt with an explicit list of
// sections the previous attempt missed. Used on regeneration retries.
func BuildAmendedPrompt(payload PromptPayload, missing []SectionName) string {
	var list strings.Builder
	for _, s := range missing {
		fmt.Fprintf(&list, "- %q: %s\n", string(s), s.Title())
	}

	return fmt.Sprintf(`%s

PREVIOUS ATTEMPT WAS INCOMPLETE. These sections were missing or empty:
%s
Regenerate the FULL JSON object with every required key present and non-empty.`,
		payload.User,
		list.String(),
	)
}
