package savings

import (
	"slices"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/subodhkangale07/savings/date"
)

func goalWithSaved(name string, target, saved int64, cur Currency) *Goal {
	return &Goal{
		Name:     name,
		Target:   decimal.NewFromInt(target),
		Saved:    decimal.NewFromInt(saved),
		Currency: cur,
	}
}

func TestEvaluateAchievementsFirstGoal(t *testing.T) {
	today := date.New(2025, time.June, 15)
	goals := []*Goal{goalWithSaved("First Goal", 1000, 0, INR)}

	updated, newly, revoked := evaluateAchievementsAt(goals, nil, today)

	if !slices.Contains(newly, "first_goal") {
		t.Errorf("first_goal not newly unlocked: %v", newly)
	}
	if !slices.Equal(updated, []string{"first_goal"}) {
		t.Errorf("updated = %v, want [first_goal]", updated)
	}
	if len(revoked) != 0 {
		t.Errorf("unexpected revocations: %v", revoked)
	}
}

func TestEvaluateAchievementsConditions(t *testing.T) {
	today := date.New(2025, time.June, 15)
	cases := []struct {
		name  string
		goals []*Goal
		want  string
	}{
		{
			"big saver at the threshold",
			[]*Goal{goalWithSaved("Pile", 1_000_000, 100_000, INR)},
			"big_saver",
		},
		{
			"goal crusher on completion",
			[]*Goal{goalWithSaved("Done", 100, 100, INR)},
			"goal_crusher",
		},
		{
			"multi goaler at three",
			[]*Goal{
				goalWithSaved("One", 100, 0, INR),
				goalWithSaved("Two", 100, 0, INR),
				goalWithSaved("Three", 100, 0, INR),
			},
			"multi_goaler",
		},
		{
			"international saver",
			[]*Goal{
				goalWithSaved("Home", 100, 0, INR),
				goalWithSaved("Abroad", 100, 0, USD),
			},
			"international_saver",
		},
		{
			"perfectionist at three completions",
			[]*Goal{
				goalWithSaved("One", 100, 100, INR),
				goalWithSaved("Two", 100, 100, INR),
				goalWithSaved("Three", 100, 150, INR),
			},
			"perfectionist",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, newly, _ := evaluateAchievementsAt(tc.goals, nil, today)
			if !slices.Contains(newly, tc.want) {
				t.Errorf("%s not unlocked, got %v", tc.want, newly)
			}
		})
	}
}

func TestEvaluateAchievementsConsistentSaver(t *testing.T) {
	today := date.New(2025, time.June, 15)
	g := goalWithSaved("Steady", 10000, 100, INR)
	for i := 0; i < 10; i++ {
		g.Contributions = append(g.Contributions, Contribution{
			Amount: decimal.NewFromInt(10), Date: today.Add(-i * 2),
		})
	}

	_, newly, _ := evaluateAchievementsAt([]*Goal{g}, nil, today)
	if !slices.Contains(newly, "consistent_saver") {
		t.Errorf("consistent_saver not unlocked, got %v", newly)
	}
}

func TestEvaluateAchievementsMarathonSaver(t *testing.T) {
	today := date.New(2025, time.June, 15)
	g := goalWithSaved("Marathon", 10000, 300, INR)
	for i := 0; i < 30; i++ {
		g.Contributions = append(g.Contributions, Contribution{
			Amount: decimal.NewFromInt(10), Date: today.Add(-i),
		})
	}

	_, newly, _ := evaluateAchievementsAt([]*Goal{g}, nil, today)
	if !slices.Contains(newly, "marathon_saver") {
		t.Errorf("marathon_saver not unlocked, got %v", newly)
	}
}

func TestPersistentAchievementSurvives(t *testing.T) {
	today := date.New(2025, time.June, 15)

	// goal_crusher was earned earlier; the completed goal is gone now.
	unlocked := []string{"first_goal", "goal_crusher"}
	goals := []*Goal{goalWithSaved("Fresh Start", 1000, 0, INR)}

	updated, _, revoked := evaluateAchievementsAt(goals, unlocked, today)

	if !slices.Contains(updated, "goal_crusher") {
		t.Errorf("persistent achievement lost: %v", updated)
	}
	if slices.Contains(revoked, "goal_crusher") {
		t.Error("persistent achievement revoked")
	}
}

func TestNonPersistentAchievementRevoked(t *testing.T) {
	today := date.New(2025, time.June, 15)

	// multi_goaler held before; only one goal remains.
	unlocked := []string{"first_goal", "multi_goaler"}
	goals := []*Goal{goalWithSaved("Last One", 1000, 0, INR)}

	updated, _, revoked := evaluateAchievementsAt(goals, unlocked, today)

	if !slices.Contains(revoked, "multi_goaler") {
		t.Errorf("multi_goaler not revoked: revoked=%v", revoked)
	}
	if slices.Contains(updated, "multi_goaler") {
		t.Errorf("revoked achievement kept: %v", updated)
	}
}

func TestEvaluateAchievementsDisplayOrder(t *testing.T) {
	today := date.New(2025, time.June, 15)
	goals := []*Goal{
		goalWithSaved("One", 100, 100, INR),
		goalWithSaved("Two", 100, 0, USD),
		goalWithSaved("Three", 100, 0, INR),
	}

	// Pass previously unlocked ids in scrambled order: the updated set
	// comes back in display order regardless.
	updated, _, _ := evaluateAchievementsAt(goals, []string{"multi_goaler", "first_goal"}, today)

	want := []string{"first_goal", "goal_crusher", "multi_goaler", "international_saver"}
	if !slices.Equal(updated, want) {
		t.Errorf("updated = %v, want %v", updated, want)
	}
}
