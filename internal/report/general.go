package report

import (
	"fmt"
	"strings"
)

// AreaListReport lists the available areas.
type AreaListReport struct {
	Areas []string `json:"areas"`
}

func (r AreaListReport) Render() string {
	lines := make([]string, 0, len(r.Areas))
	for _, a := range r.Areas {
		lines = append(lines, "• "+a)
	}
	return fmt.Sprintf("🏘️ **AVAILABLE AREAS**\n\n%s\n\n💡 Ask about any area for detailed analysis!", strings.Join(lines, "\n"))
}

const helpText = `🤖 **REAL ESTATE AI ASSISTANT**

I can help you with:

🔍 **Area Analysis**
• "Tell me about Wakad"
• "Analyze Aundh prices"
• "Show me demand in Akurdi"

📊 **Comparisons**
• "Compare Aundh and Wakad"
• "Which is better: Aundh vs Akurdi?"

💹 **Trends & Growth**
• "Price growth in Wakad"
• "Demand trends for Aundh"
• "Investment potential in Akurdi"

📈 **Market Insights**
• "Latest market trends"
• "Best investment areas"
• "Price predictions"

Just ask me anything about real estate! 🏠`

// HelpReport describes what the assistant can answer.
type HelpReport struct{}

func (HelpReport) Render() string {
	return helpText
}

// FallbackReport answers a query that matched nothing.
type FallbackReport struct {
	Query string   `json:"query"`
	Areas []string `json:"areas"`
}

func (r FallbackReport) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "🤔 **I UNDERSTOOD: \"%s\"**\n\n", r.Query)
	b.WriteString("I can help you analyze real estate data! Try:\n\n")
	b.WriteString("• Mention an area: \"Tell me about Wakad\", \"Aundh prices\"\n")
	b.WriteString("• Compare areas: \"Compare Aundh and Wakad\"\n")
	b.WriteString("• Ask about trends: \"Price growth\", \"Demand analysis\"\n\n")
	fmt.Fprintf(&b, "Available areas: %s", strings.Join(r.Areas, ", "))
	return b.String()
}

// NotFoundReport answers a query about an area with no records.
type NotFoundReport struct {
	Area  string   `json:"area"`
	Areas []string `json:"areas"`
}

func (r NotFoundReport) Render() string {
	return fmt.Sprintf("❌ No data available for %s. Available areas: %s", r.Area, strings.Join(r.Areas, ", "))
}
