// Package report computes typed market summaries from area metrics and
// renders them as markdown-flavoured text.
package report

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report is a computed summary that can render itself as text.
type Report interface {
	Render() string
}

// Money formats a rupee amount with English digit grouping and no decimals.
func Money(v float64) string {
	return "₹" + message.NewPrinter(language.English).Sprintf("%.0f", v)
}

// Percent formats a signed percentage with one decimal, e.g. "+36.4%".
func Percent(v float64) string {
	return fmt.Sprintf("%+.1f%%", v)
}

// Score formats a 0-10 demand score, e.g. "8.3/10".
func Score(v float64) string {
	return fmt.Sprintf("%.1f/10", v)
}
