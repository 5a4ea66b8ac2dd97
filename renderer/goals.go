package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
	savings "github.com/subodhkangale07/savings"
)

// GoalsMarkdown renders the goal list, one row per goal.
func GoalsMarkdown(goals []*savings.Goal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	writeGoals(doc, goals)
	return doc.String()
}

func writeGoals(doc *md.Markdown, goals []*savings.Goal) {
	doc.H1("Savings Goals")
	if len(goals) == 0 {
		doc.PlainText("No goals yet. Create one to start saving.")
		return
	}

	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		name := g.Name
		if g.Completed() {
			name = md.Bold(name)
		}
		rows = append(rows, []string{
			g.ID,
			name,
			g.TargetMoney().String(),
			g.SavedMoney().String(),
			percent(g.Progress()),
			g.CreatedAt.String(),
			strconv.Itoa(len(g.Contributions)),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Name", "Target", "Saved", "Progress", "Created", "Contributions"},
		Rows:   rows,
	})
}

// GoalMarkdown renders a single goal with its full contribution history.
// The rate is used to show the saved amount in the other currency; a zero
// rate just omits that line.
func GoalMarkdown(g *savings.Goal, rate decimal.Decimal) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Goal %s: %s", g.ID, g.Name))
	doc.PlainText(fmt.Sprintf("%s of %s saved (%s), created on %s.",
		g.SavedMoney(), g.TargetMoney(), percent(g.Progress()), g.CreatedAt))
	if converted, err := savings.Convert(g.Saved, g.Currency, rate); err == nil {
		doc.PlainText(fmt.Sprintf("That is about %s.", converted))
	}
	if g.Completed() {
		doc.PlainText(md.Bold("Completed."))
	}

	if len(g.Contributions) > 0 {
		doc.H2("Contributions")
		rows := make([][]string, 0, len(g.Contributions))
		for _, c := range g.Contributions {
			rows = append(rows, []string{
				c.Date.String(),
				savings.M(c.Amount, g.Currency).String(),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Date", "Amount"},
			Rows:   rows,
		})
	}
	return doc.String()
}
