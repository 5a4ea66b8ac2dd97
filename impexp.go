package savings

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/subodhkangale07/savings/date"
)

// This file contains the backup import/export format. It should remain human
// readable and single file, so a backup can be inspected and carried around.

// backupVersion is written into every export.
const backupVersion = "1.0"

// jcontribution is the import/export shape of a contribution.
type jcontribution struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Date      date.Date       `json:"date"`
	Timestamp time.Time       `json:"timestamp"`
}

// jgoal is the import/export shape of a goal.
type jgoal struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Target        decimal.Decimal `json:"target"`
	Currency      Currency        `json:"currency"`
	Saved         decimal.Decimal `json:"saved"`
	CreatedAt     date.Date       `json:"createdAt"`
	Contributions []jcontribution `json:"contributions"`
}

// jbackup is the full backup document. The rate is a decimal so documents
// carrying either a quoted or a plain number both load.
type jbackup struct {
	Goals        []jgoal         `json:"goals"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	ExportDate   time.Time       `json:"exportDate"`
	Version      string          `json:"version"`
}

// ExportBackup writes a full-fidelity JSON dump of the goals and the
// effective rate to w.
func ExportBackup(w io.Writer, goals []*Goal, rate decimal.Decimal) error {
	b := jbackup{
		Goals:        make([]jgoal, 0, len(goals)),
		ExchangeRate: rate,
		ExportDate:   time.Now().UTC(),
		Version:      backupVersion,
	}
	for _, g := range goals {
		jg := jgoal{
			ID:            g.ID,
			Name:          g.Name,
			Target:        g.Target,
			Currency:      g.Currency,
			Saved:         g.Saved,
			CreatedAt:     g.CreatedAt,
			Contributions: make([]jcontribution, 0, len(g.Contributions)),
		}
		for _, c := range g.Contributions {
			jg.Contributions = append(jg.Contributions, jcontribution{
				ID: c.ID, Amount: c.Amount, Date: c.Date, Timestamp: c.Timestamp,
			})
		}
		b.Goals = append(b.Goals, jg)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("cannot write backup: %w", err)
	}
	return nil
}

// ImportBackup reads a backup document and rebuilds a ledger from it, with
// replace-all semantics: the result stands in for the whole previous state.
// The document is never trusted wholesale: the goals array must be present
// and every goal must carry name, target, currency and saved before the
// import is accepted. Saved amounts are recomputed from the contribution
// history rather than taken from the file.
func ImportBackup(r io.Reader) (*Ledger, error) {
	// Field presence cannot be told apart from zero values after the typed
	// unmarshal, so the document is checked as raw JSON first.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read backup: %w", err)
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, validationErrorf("not a valid backup document: %v", err)
	}
	rawGoals, ok := probe["goals"]
	if !ok {
		return nil, validationErrorf("invalid backup: goals array not found")
	}
	var rawItems []map[string]json.RawMessage
	if err := json.Unmarshal(rawGoals, &rawItems); err != nil {
		return nil, validationErrorf("invalid backup: goals is not an array")
	}
	for i, item := range rawItems {
		for _, field := range []string{"name", "target", "currency", "saved"} {
			if _, ok := item[field]; !ok {
				return nil, validationErrorf("invalid goal at index %d: missing %s", i, field)
			}
		}
	}

	var b jbackup
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, validationErrorf("invalid backup: %v", err)
	}

	ledger := NewLedger()
	for i, jg := range b.Goals {
		if _, err := ParseCurrency(string(jg.Currency)); err != nil {
			return nil, validationErrorf("invalid goal at index %d: %v", i, err)
		}
		id := jg.ID
		if id == "" {
			id = strconv.Itoa(i + 1)
		}
		createdAt := jg.CreatedAt
		if createdAt.IsZero() {
			createdAt = date.Today()
		}
		ledger.apply(Create{
			ID:       id,
			Date:     createdAt,
			Name:     jg.Name,
			Target:   jg.Target,
			Currency: jg.Currency,
		})
		for j, jc := range jg.Contributions {
			cid := jc.ID
			if cid == "" {
				cid = fmt.Sprintf("%s-%d", id, j+1)
			}
			ledger.apply(Contribute{
				Goal:      id,
				ID:        cid,
				Date:      jc.Date,
				Amount:    jc.Amount,
				Timestamp: jc.Timestamp,
			})
		}
	}
	return ledger, nil
}

// ExportCSV writes a spreadsheet report: one row per goal, then a second
// section with one row per contribution.
func ExportCSV(w io.Writer, goals []*Goal) error {
	cw := csv.NewWriter(w)

	cw.Write([]string{"Goal Name", "Target Amount", "Currency", "Saved Amount", "Progress %", "Created Date", "Contributions Count"})
	for _, g := range goals {
		cw.Write([]string{
			g.Name,
			g.Target.String(),
			string(g.Currency),
			g.Saved.String(),
			g.Progress().StringFixed(2),
			g.CreatedAt.String(),
			strconv.Itoa(len(g.Contributions)),
		})
	}

	// Section break, then the detailed contributions.
	cw.Write([]string{})
	cw.Write([]string{"Goal Name", "Contribution Amount", "Date", "Recorded At"})
	for _, g := range goals {
		for _, c := range g.Contributions {
			cw.Write([]string{
				g.Name,
				c.Amount.String(),
				c.Date.String(),
				c.Timestamp.UTC().Format(time.RFC3339),
			})
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("cannot write CSV: %w", err)
	}
	return nil
}
