package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	savings "github.com/subodhkangale07/savings"
)

// TemplatesMarkdown renders the built-in goal presets.
func TemplatesMarkdown(templates []savings.Template) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Goal Templates")
	rows := make([][]string, 0, len(templates))
	for _, t := range templates {
		rows = append(rows, []string{
			t.ID,
			t.Name,
			savings.M(t.Target, t.Currency).String(),
			t.Category,
			t.Tip,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Name", "Target", "Category", "Tip"},
		Rows:   rows,
	})
	return doc.String()
}
