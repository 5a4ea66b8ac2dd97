package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	savings "github.com/subodhkangale07/savings"
)

// ReportMarkdown assembles the full report: summary, goal list, insights
// and achievements in one document.
func ReportMarkdown(goals []*savings.Goal, s *savings.Summary, in *savings.Insights, unlocked []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	writeSummary(doc, s)
	writeGoals(doc, goals)
	writeInsights(doc, in)
	writeAchievements(doc, unlocked)

	return doc.String()
}
