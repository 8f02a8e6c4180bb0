// Package classify maps a free-text query onto an analysis mode by keyword
// and area-name substring matching.
package classify

import "strings"

// Mode is the top-level intent of a query.
type Mode string

const (
	ModeComparison Mode = "comparison"
	ModeSingle     Mode = "single"
	ModeGeneral    Mode = "general"
)

// GeneralKind sub-classifies queries that mention no area.
type GeneralKind string

const (
	GeneralNone           GeneralKind = ""
	GeneralList           GeneralKind = "list"
	GeneralHelp           GeneralKind = "help"
	GeneralRecommendation GeneralKind = "recommendation"
	GeneralFallback       GeneralKind = "fallback"
)

// Focus selects the report for a single-area query.
type Focus string

const (
	FocusNone          Focus = ""
	FocusPrice         Focus = "price"
	FocusDemand        Focus = "demand"
	FocusGrowth        Focus = "growth"
	FocusInvestment    Focus = "investment"
	FocusComprehensive Focus = "comprehensive"
)

// Keyword sets. Matching is plain substring containment on the lower-cased
// query, so "vs" also matches inside longer words.
var (
	comparisonKeywords = []string{"compare", "vs", "versus", "difference", "between"}
	listKeywords       = []string{"list", "show", "all areas", "available"}
	helpKeywords       = []string{"help", "what can", "how to"}
	recommendKeywords  = []string{"best", "top", "recommend"}
)

// focusRules are tried in order; the first rule with a matching keyword wins.
var focusRules = []struct {
	focus    Focus
	keywords []string
}{
	{FocusPrice, []string{"price", "cost", "expensive", "cheap", "rate"}},
	{FocusDemand, []string{"demand", "popular", "trending", "hot"}},
	{FocusGrowth, []string{"growth", "increase", "decrease", "trend"}},
	{FocusInvestment, []string{"investment", "invest", "return"}},
}

// Intent is the classifier's decision for one query.
type Intent struct {
	Query     string      `json:"query"` // normalized
	Mode      Mode        `json:"mode"`
	Mentioned []string    `json:"mentioned"` // every matched area, known-area order
	Areas     []string    `json:"areas"`     // areas the mode operates on
	General   GeneralKind `json:"general,omitempty"`
	Focus     Focus       `json:"focus,omitempty"`
}

// Normalize lower-cases and trims a raw query.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// MentionedAreas returns the known areas that appear in the query, in
// known-area order. An area matches when its lower-cased name is a substring
// of the query, or its space-stripped name is a substring of the
// space-stripped query.
func MentionedAreas(query string, known []string) []string {
	q := Normalize(query)
	compact := strings.ReplaceAll(q, " ", "")

	var out []string
	for _, area := range known {
		lower := strings.ToLower(area)
		if lower == "" {
			continue
		}
		if strings.Contains(q, lower) || strings.Contains(compact, strings.ReplaceAll(lower, " ", "")) {
			out = append(out, area)
		}
	}
	return out
}

// Classify decides the mode of query against the known areas.
//
// A query naming two or more areas plus a comparison keyword compares the
// first two. A query naming exactly one area analyzes it. A query naming
// none is a general query. A query naming several areas without a comparison
// keyword analyzes only the first.
func Classify(query string, known []string) Intent {
	q := Normalize(query)
	mentioned := MentionedAreas(q, known)
	intent := Intent{Query: q, Mentioned: mentioned}

	switch {
	case len(mentioned) >= 2 && containsAny(q, comparisonKeywords):
		intent.Mode = ModeComparison
		intent.Areas = []string{mentioned[0], mentioned[1]}
	case len(mentioned) == 0:
		intent.Mode = ModeGeneral
		intent.General = generalKind(q)
	default:
		intent.Mode = ModeSingle
		intent.Areas = []string{mentioned[0]}
		intent.Focus = FocusFor(q)
	}
	return intent
}

// FocusFor picks the single-area report for a normalized query.
func FocusFor(query string) Focus {
	for _, rule := range focusRules {
		if containsAny(query, rule.keywords) {
			return rule.focus
		}
	}
	return FocusComprehensive
}

func generalKind(query string) GeneralKind {
	switch {
	case containsAny(query, listKeywords):
		return GeneralList
	case containsAny(query, helpKeywords):
		return GeneralHelp
	case containsAny(query, recommendKeywords):
		return GeneralRecommendation
	default:
		return GeneralFallback
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
