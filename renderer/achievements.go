package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	savings "github.com/subodhkangale07/savings"
)

// AchievementsMarkdown renders every achievement with its unlocked state.
func AchievementsMarkdown(unlocked []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	writeAchievements(doc, unlocked)
	return doc.String()
}

func writeAchievements(doc *md.Markdown, unlocked []string) {
	doc.H1("Achievements")

	isUnlocked := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		isUnlocked[id] = true
	}

	all := savings.AllAchievements()
	rows := make([][]string, 0, len(all))
	count := 0
	for _, a := range all {
		status := "locked"
		title := a.Title
		if isUnlocked[a.ID] {
			status = "unlocked"
			title = md.Bold(title)
			count++
		}
		rows = append(rows, []string{status, title, a.Rarity, a.Description})
	}

	doc.PlainText(fmt.Sprintf("%d of %d unlocked.", count, len(all)))
	doc.Table(md.TableSet{
		Header: []string{"Status", "Title", "Rarity", "Description"},
		Rows:   rows,
	})
}
