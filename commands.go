package savings

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/subodhkangale07/savings/date"
)

// CommandType is a typed string identifying a ledger command.
type CommandType string

// Command types recorded in the goal log.
const (
	CmdCreate     CommandType = "create"
	CmdContribute CommandType = "contribute"
	CmdDelete     CommandType = "delete"
)

// Command is a single entry of the goal log. The ledger is the replay of all
// commands in recorded order.
type Command interface {
	What() CommandType // What returns the command type ("create", "contribute", "delete").
	When() date.Date   // When returns the calendar day the command refers to.
}

// Create records the creation of a goal.
type Create struct {
	ID       string          `json:"id"`
	Date     date.Date       `json:"date"` // the goal's creation day
	Name     string          `json:"name"`
	Target   decimal.Decimal `json:"target"`
	Currency Currency        `json:"currency"`
}

func (c Create) What() CommandType { return CmdCreate }
func (c Create) When() date.Date   { return c.Date }

// MarshalJSON writes the command with a fixed field order.
func (c Create) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", CmdCreate)
	w.Append("id", c.ID)
	w.Append("date", c.Date)
	w.Append("name", c.Name)
	w.Append("target", c.Target)
	w.Append("currency", c.Currency)
	return w.MarshalJSON()
}

// Contribute records a contribution toward an existing goal.
type Contribute struct {
	Goal   string          `json:"goal"` // parent goal id
	ID     string          `json:"id"`
	Date   date.Date       `json:"date"` // when the saving occurred
	Amount decimal.Decimal `json:"amount"`
	// Timestamp is the instant the entry was made, distinct from Date.
	Timestamp time.Time `json:"timestamp"`
}

func (c Contribute) What() CommandType { return CmdContribute }
func (c Contribute) When() date.Date   { return c.Date }

// MarshalJSON writes the command with a fixed field order.
func (c Contribute) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", CmdContribute)
	w.Append("goal", c.Goal)
	w.Append("id", c.ID)
	w.Append("date", c.Date)
	w.Append("amount", c.Amount)
	w.Append("timestamp", c.Timestamp.UTC().Format(time.RFC3339))
	return w.MarshalJSON()
}

// Delete records the removal of a goal and, implicitly, all its contributions.
type Delete struct {
	Goal string    `json:"goal"`
	Date date.Date `json:"date"` // the day the deletion was recorded
}

func (c Delete) What() CommandType { return CmdDelete }
func (c Delete) When() date.Date   { return c.Date }

// MarshalJSON writes the command with a fixed field order.
func (c Delete) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", CmdDelete)
	w.Append("goal", c.Goal)
	w.Append("date", c.Date)
	return w.MarshalJSON()
}
