package savings

import (
	"log"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/subodhkangale07/savings/date"
)

// Ledger is the authoritative collection of goals and their contributions.
//
// A Ledger is the in-memory replay of an append-only command log. Mutations
// follow validate-then-commit: every check completes before any state is
// touched, so an error always leaves the ledger untouched and the invariant
// saved == sum(contributions) holds after every completed mutation.
type Ledger struct {
	commands []Command
	goals    []*Goal          // insertion order
	index    map[string]*Goal // goals by id
	lastID   int64            // high-water mark for issued ids
	now      func() time.Time
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		goals: make([]*Goal, 0),
		index: make(map[string]*Goal),
		now:   time.Now,
	}
}

// Goals returns the goals in insertion order. The returned slice is shared;
// callers must not modify it.
func (l *Ledger) Goals() []*Goal { return l.goals }

// Goal returns the goal with this id, or nil if unknown.
func (l *Ledger) Goal(id string) *Goal { return l.index[id] }

// Commands returns the full command log in recorded order.
func (l *Ledger) Commands() []Command { return l.commands }

// CreateGoal validates the inputs and appends a new goal with no savings.
// The goal's creation day is today and becomes the lower bound for its
// contribution dates.
func (l *Ledger) CreateGoal(name string, target decimal.Decimal, cur Currency) (*Goal, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	if err := validateTarget(target); err != nil {
		return nil, err
	}
	if cur != INR && cur != USD {
		return nil, validationErrorf("unknown currency %q, want INR or USD", cur)
	}

	id, last := issueID(l.now(), l.lastID)
	cmd := Create{
		ID:       id,
		Date:     date.FromTime(l.now()),
		Name:     name,
		Target:   target,
		Currency: cur,
	}
	l.lastID = last
	l.commands = append(l.commands, cmd)
	return l.applyCreate(cmd), nil
}

// AddContribution validates and appends a contribution, then recomputes the
// goal's saved amount from the full history.
func (l *Ledger) AddContribution(goalID string, amount decimal.Decimal, on date.Date) (*Goal, error) {
	g := l.index[goalID]
	if g == nil {
		return nil, ErrNotFound
	}
	if err := g.validateContribution(amount, on); err != nil {
		return nil, err
	}

	id, last := issueID(l.now(), l.lastID)
	cmd := Contribute{
		Goal:      goalID,
		ID:        id,
		Date:      on,
		Amount:    amount,
		Timestamp: l.now().UTC(),
	}
	l.lastID = last
	l.commands = append(l.commands, cmd)
	l.applyContribute(cmd)
	return g, nil
}

// DeleteGoal removes the goal and all its contributions. Deleting an unknown
// id is an idempotent no-op: repeated deletion behaves identically both times.
func (l *Ledger) DeleteGoal(goalID string) {
	if _, ok := l.index[goalID]; !ok {
		return
	}
	cmd := Delete{Goal: goalID, Date: date.FromTime(l.now())}
	l.commands = append(l.commands, cmd)
	l.applyDelete(cmd)
}

// apply replays a single command into the ledger state. Used when decoding a
// persisted log. A contribution to an unknown goal indicates a damaged log;
// it is logged and skipped rather than failing the whole load.
func (l *Ledger) apply(cmd Command) {
	switch c := cmd.(type) {
	case Create:
		l.applyCreate(c)
		l.bumpLastID(c.ID)
	case Contribute:
		if l.index[c.Goal] == nil {
			log.Printf("skipping contribution %s: goal %s not in ledger", c.ID, c.Goal)
			return
		}
		l.applyContribute(c)
		l.bumpLastID(c.ID)
	case Delete:
		l.applyDelete(c)
	}
	l.commands = append(l.commands, cmd)
}

func (l *Ledger) applyCreate(c Create) *Goal {
	g := &Goal{
		ID:            c.ID,
		Name:          c.Name,
		Target:        c.Target,
		Currency:      c.Currency,
		Saved:         decimal.Zero,
		Contributions: make([]Contribution, 0),
		CreatedAt:     c.Date,
	}
	l.goals = append(l.goals, g)
	l.index[g.ID] = g
	return g
}

func (l *Ledger) applyContribute(c Contribute) {
	g := l.index[c.Goal]
	g.Contributions = append(g.Contributions, Contribution{
		ID:        c.ID,
		Amount:    c.Amount,
		Date:      c.Date,
		Timestamp: c.Timestamp,
	})
	// Full recompute rather than an incremental add: a duplicated or
	// retried command cannot make Saved drift from the history.
	g.recompute()
}

func (l *Ledger) applyDelete(c Delete) {
	g, ok := l.index[c.Goal]
	if !ok {
		return
	}
	delete(l.index, c.Goal)
	for i, x := range l.goals {
		if x == g {
			l.goals = append(l.goals[:i], l.goals[i+1:]...)
			break
		}
	}
}

func (l *Ledger) bumpLastID(id string) {
	if n, err := strconv.ParseInt(id, 10, 64); err == nil && n > l.lastID {
		l.lastID = n
	}
}

// Compact returns a copy of the ledger whose command log only contains the
// commands of goals still present: deleted goals and their contributions are
// dropped. The replayed state is identical.
func (l *Ledger) Compact() *Ledger {
	out := NewLedger()
	out.now = l.now
	for _, cmd := range l.commands {
		switch c := cmd.(type) {
		case Create:
			if l.index[c.ID] != nil {
				out.apply(c)
			}
		case Contribute:
			if l.index[c.Goal] != nil {
				out.apply(c)
			}
		case Delete:
			// dropped: the goal's create never made it into the copy
		}
	}
	return out
}
