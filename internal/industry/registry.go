// Package industry holds the static registry of analysis dimensions per
// industry. Profiles are immutable and looked up by tag; unknown tags fall
// back to the General profile.
package industry

import "sort"

// Tag names an industry vertical.
type Tag string

const (
	TagFinTech     Tag = "fintech"
	TagSaaS        Tag = "saas"
	TagMarketplace Tag = "marketplace"
	TagSocial      Tag = "social"
	TagGaming      Tag = "gaming"
	TagHealth      Tag = "health"
	TagEdTech      Tag = "edtech"
	TagEcommerce   Tag = "ecommerce"
	TagGeneral     Tag = "general"
)

// Profile is a named set of domain-specific analytical dimensions.
// Dimensions are ordered; the prompt builder interpolates them as written.
type Profile struct {
	Tag        Tag      `json:"tag"`
	Dimensions []string `json:"dimensions"`
}

var registry = map[Tag]Profile{
	TagFinTech: {Tag: TagFinTech, Dimensions: []string{
		"KYC and onboarding friction",
		"fraud and risk controls",
		"trust and security signaling",
		"regulatory and compliance posture",
		"payment rails and settlement speed",
	}},
	TagSaaS: {Tag: TagSaaS, Dimensions: []string{
		"time-to-value and activation",
		"seat expansion and pricing tiers",
		"integration ecosystem",
		"churn and net revenue retention",
	}},
	TagMarketplace: {Tag: TagMarketplace, Dimensions: []string{
		"supply/demand liquidity",
		"take rate and disintermediation risk",
		"trust and ratings systems",
		"geographic density effects",
	}},
	TagSocial: {Tag: TagSocial, Dimensions: []string{
		"network effects and graph density",
		"content creation vs consumption balance",
		"moderation and safety",
		"session frequency and habit loops",
	}},
	TagGaming: {Tag: TagGaming, Dimensions: []string{
		"core loop and session design",
		"monetization (IAP, ads, battle pass)",
		"retention cohorts and live-ops cadence",
		"social and competitive mechanics",
	}},
	TagHealth: {Tag: TagHealth, Dimensions: []string{
		"clinical credibility and outcomes",
		"privacy and data sensitivity",
		"habit formation and adherence",
		"payer/provider distribution",
	}},
	TagEdTech: {Tag: TagEdTech, Dimensions: []string{
		"learning outcomes and efficacy",
		"streaks and motivation mechanics",
		"B2C vs B2B2C distribution",
		"curriculum depth and progression",
	}},
	TagEcommerce: {Tag: TagEcommerce, Dimensions: []string{
		"conversion funnel and checkout friction",
		"logistics and delivery promise",
		"repeat purchase and loyalty",
		"catalog breadth vs curation",
	}},
	TagGeneral: {Tag: TagGeneral, Dimensions: []string{
		"value proposition clarity",
		"acquisition channels",
		"retention and engagement",
		"monetization model",
	}},
}

// Lookup resolves a tag to its profile, falling back to General for
// unknown or empty tags.
func Lookup(tag string) Profile {
	if p, ok := registry[Tag(tag)]; ok {
		return p
	}
	return registry[TagGeneral]
}

// Tags returns all registered tags, sorted for stable display.
func Tags() []string {
	tags := make([]string, 0, len(registry))
	for t := range registry {
		tags = append(tags, string(t))
	}
	sort.Strings(tags)
	return tags
}
