package savings

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
)

// File names inside the state directory.
const (
	goalsFilename        = "goals.jsonl"
	rateFilename         = "exchange_rate.json"
	achievementsFilename = "achievements.json"
)

// Store is the persistence gateway: the only component touching the storage
// boundary. State lives in a directory of small human-readable files, one
// per logical key, so each can be loaded and degraded independently.
type Store struct {
	Dir string
}

// NewStore returns a store over the given state directory.
func NewStore(dir string) *Store { return &Store{Dir: dir} }

// State is everything the store persists.
type State struct {
	Ledger   *Ledger
	Rate     *RateCache
	Unlocked []string // unlocked achievement ids
}

// jrate is the on-disk shape of the rate snapshot. The rate is
// string-encoded to keep the decimal exact.
type jrate struct {
	ExchangeRate string    `json:"exchangeRate"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// Load reads all state from the directory. Each entry is independently
// absent-tolerant: a missing or corrupt file yields its empty default with a
// logged warning, never an error. Only a directory that exists but cannot be
// read at all is reported.
func (s *Store) Load() (*State, error) {
	state := &State{
		Ledger:   NewLedger(),
		Rate:     NewRateCache(),
		Unlocked: []string{},
	}

	// Goals.
	goalsPath := filepath.Join(s.Dir, goalsFilename)
	if f, err := os.Open(goalsPath); err == nil {
		ledger, derr := DecodeLedger(f)
		f.Close()
		if derr != nil {
			log.Printf("warning: corrupt goal log %q, starting empty: %v", goalsPath, derr)
		} else {
			state.Ledger = ledger
		}
	} else if !os.IsNotExist(err) {
		return nil, &StorageError{Op: "load", Path: goalsPath, Err: err}
	}

	// Exchange rate snapshot.
	ratePath := filepath.Join(s.Dir, rateFilename)
	if data, err := os.ReadFile(ratePath); err == nil {
		var jr jrate
		if jerr := json.Unmarshal(data, &jr); jerr != nil {
			log.Printf("warning: corrupt rate snapshot %q, ignored: %v", ratePath, jerr)
		} else if rate, derr := decimal.NewFromString(jr.ExchangeRate); derr != nil || !rate.IsPositive() {
			log.Printf("warning: invalid rate %q in %q, ignored", jr.ExchangeRate, ratePath)
		} else {
			state.Rate.Set(rate, jr.LastUpdated)
		}
	} else if !os.IsNotExist(err) {
		return nil, &StorageError{Op: "load", Path: ratePath, Err: err}
	}

	// Unlocked achievements.
	achPath := filepath.Join(s.Dir, achievementsFilename)
	if data, err := os.ReadFile(achPath); err == nil {
		var ids []string
		if jerr := json.Unmarshal(data, &ids); jerr != nil {
			log.Printf("warning: corrupt achievements %q, ignored: %v", achPath, jerr)
		} else {
			state.Unlocked = ids
		}
	} else if !os.IsNotExist(err) {
		return nil, &StorageError{Op: "load", Path: achPath, Err: err}
	}

	return state, nil
}

// SaveLedger persists the full goal log. Must be called after Load so an
// unfinished load cannot clobber saved goals with an empty ledger.
func (s *Store) SaveLedger(l *Ledger) error {
	path := filepath.Join(s.Dir, goalsFilename)
	if err := s.ensureDir(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	defer f.Close()
	if err := EncodeLedger(f, l); err != nil {
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	return nil
}

// SaveRate persists the rate snapshot.
func (s *Store) SaveRate(snap RateSnapshot) error {
	path := filepath.Join(s.Dir, rateFilename)
	if err := s.ensureDir(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(jrate{
		ExchangeRate: snap.Rate.String(),
		LastUpdated:  snap.FetchedAt.UTC(),
	}, "", "  ")
	if err != nil {
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	return nil
}

// SaveAchievements persists the unlocked achievement ids.
func (s *Store) SaveAchievements(ids []string) error {
	path := filepath.Join(s.Dir, achievementsFilename)
	if err := s.ensureDir(); err != nil {
		return err
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	return nil
}

func (s *Store) ensureDir() error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return &StorageError{Op: "save", Path: s.Dir, Err: err}
	}
	return nil
}
