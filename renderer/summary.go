package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	savings "github.com/subodhkangale07/savings"
)

// SummaryMarkdown renders the aggregate position across all goals.
func SummaryMarkdown(s *savings.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	writeSummary(doc, s)
	return doc.String()
}

func writeSummary(doc *md.Markdown, s *savings.Summary) {
	doc.H1("Savings Summary")
	doc.PlainText(fmt.Sprintf("Tracking %d goal(s) at a USD/INR rate of %s.", s.Goals, s.Rate))

	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Target", s.TotalTarget.String()},
			{"Total Saved", s.TotalSaved.String()},
			{"Remaining", s.Remaining().String()},
			{"Overall Progress", percent(s.Progress)},
		},
	})
}
