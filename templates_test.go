package savings

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAllTemplatesAreValidGoals(t *testing.T) {
	templates := AllTemplates()
	if len(templates) == 0 {
		t.Fatal("no templates")
	}

	seen := make(map[string]bool)
	for _, tpl := range templates {
		if seen[tpl.ID] {
			t.Errorf("duplicate template id %q", tpl.ID)
		}
		seen[tpl.ID] = true

		// Every preset must pass goal creation as-is.
		l := testLedger()
		if _, err := l.CreateGoal(tpl.Name, tpl.Target, tpl.Currency); err != nil {
			t.Errorf("template %q does not create a valid goal: %v", tpl.ID, err)
		}
	}
}

func TestTemplateByID(t *testing.T) {
	tpl, err := TemplateByID("japan_trip")
	if err != nil {
		t.Fatal(err)
	}
	if tpl.Name != "Trip to Japan" || tpl.Currency != USD || !tpl.Target.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("unexpected template: %+v", tpl)
	}

	if _, err := TemplateByID("no-such-template"); err == nil {
		t.Error("expected an error for an unknown id")
	}
}
