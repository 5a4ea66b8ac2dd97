package savings

import (
	"slices"

	"github.com/shopspring/decimal"
	"github.com/subodhkangale07/savings/date"
)

// Achievement is a read-only predicate over the goal set. Persistent
// achievements, once unlocked, are never revoked even if their condition
// later turns false; non-persistent ones are revoked when it does.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Rarity      string
	Persistent  bool
	predicate   func(goals []*Goal, today date.Date) bool
}

// Unlockable reports whether the achievement's condition currently holds.
func (a Achievement) Unlockable(goals []*Goal, today date.Date) bool {
	return a.predicate(goals, today)
}

var bigSaverThreshold = decimal.NewFromInt(100_000)

// AllAchievements returns the fixed achievement set, in display order.
func AllAchievements() []Achievement {
	return []Achievement{
		{
			ID: "first_goal", Title: "Goal Setter", Rarity: "common",
			Description: "Created your first savings goal",
			predicate: func(goals []*Goal, _ date.Date) bool {
				return len(goals) >= 1
			},
		},
		{
			ID: "big_saver", Title: "Big Saver", Rarity: "rare",
			Description: "Saved over ₹1,00,000 total",
			predicate: func(goals []*Goal, _ date.Date) bool {
				total := decimal.Zero
				for _, g := range goals {
					total = total.Add(g.Saved)
				}
				return total.GreaterThanOrEqual(bigSaverThreshold)
			},
		},
		{
			ID: "goal_crusher", Title: "Goal Crusher", Rarity: "epic",
			Description: "Completed your first goal",
			Persistent:  true,
			predicate: func(goals []*Goal, _ date.Date) bool {
				return slices.ContainsFunc(goals, (*Goal).Completed)
			},
		},
		{
			ID: "multi_goaler", Title: "Multi-Goaler", Rarity: "uncommon",
			Description: "Managing 3 or more goals",
			predicate: func(goals []*Goal, _ date.Date) bool {
				return len(goals) >= 3
			},
		},
		{
			ID: "consistent_saver", Title: "Consistent Saver", Rarity: "uncommon",
			Description: "Made 10 contributions",
			Persistent:  true,
			predicate: func(goals []*Goal, _ date.Date) bool {
				n := 0
				for _, g := range goals {
					n += len(g.Contributions)
				}
				return n >= 10
			},
		},
		{
			ID: "international_saver", Title: "International Saver", Rarity: "rare",
			Description: "Have goals in both INR and USD",
			predicate: func(goals []*Goal, _ date.Date) bool {
				var hasINR, hasUSD bool
				for _, g := range goals {
					hasINR = hasINR || g.Currency == INR
					hasUSD = hasUSD || g.Currency == USD
				}
				return hasINR && hasUSD
			},
		},
		{
			ID: "marathon_saver", Title: "Marathon Saver", Rarity: "legendary",
			Description: "Saved for 30 consecutive days",
			Persistent:  true,
			predicate: func(goals []*Goal, today date.Date) bool {
				return streak(goals, today) >= 30
			},
		},
		{
			ID: "perfectionist", Title: "Perfectionist", Rarity: "legendary",
			Description: "Completed 3 goals",
			Persistent:  true,
			predicate: func(goals []*Goal, _ date.Date) bool {
				n := 0
				for _, g := range goals {
					if g.Completed() {
						n++
					}
				}
				return n >= 3
			},
		},
	}
}

// EvaluateAchievements compares the current goal set against the previously
// unlocked ids and returns the updated set plus what changed. An achievement
// joins the set the first time its condition holds; it leaves only if the
// condition no longer holds and it is not persistent. The updated set is in
// the fixed display order, so persisting it is deterministic.
func EvaluateAchievements(goals []*Goal, unlocked []string) (updated, newly, revoked []string) {
	return evaluateAchievementsAt(goals, unlocked, date.Today())
}

func evaluateAchievementsAt(goals []*Goal, unlocked []string, today date.Date) (updated, newly, revoked []string) {
	was := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		was[id] = true
	}

	for _, a := range AllAchievements() {
		holds := a.Unlockable(goals, today)
		switch {
		case holds && !was[a.ID]:
			newly = append(newly, a.ID)
			updated = append(updated, a.ID)
		case !holds && was[a.ID] && !a.Persistent:
			revoked = append(revoked, a.ID)
		case was[a.ID]:
			updated = append(updated, a.ID)
		}
	}
	return updated, newly, revoked
}
