package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"
	savings "github.com/subodhkangale07/savings"
)

// InsightsMarkdown renders the derived saving metrics.
func InsightsMarkdown(in *savings.Insights) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	writeInsights(doc, in)
	return doc.String()
}

func writeInsights(doc *md.Markdown, in *savings.Insights) {
	doc.H1("Savings Insights")

	if in.TotalContributions == 0 {
		doc.PlainText("Not enough history yet. Record a few contributions first.")
		return
	}

	projection := "n/a"
	if in.ProjectedCompletion != nil {
		projection = in.ProjectedCompletion.String()
	}

	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Contributions", strconv.Itoa(in.TotalContributions)},
			{"Average Contribution", in.AvgContribution.String()},
			{"Days Active", strconv.Itoa(in.DaysActive)},
			{"Current Streak", fmt.Sprintf("%d day(s)", in.Streak)},
			{"Projected Completion", projection},
			{"Suggested Monthly Saving", in.SuggestedMonthly.String()},
		},
	})
}
