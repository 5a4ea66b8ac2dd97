package savings

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// This file contains the JSONL codec for the goal log. One command per line,
// in recorded order, human readable and git friendly.

// EncodeCommand marshals a single command and writes it to w followed by a
// newline, in JSONL format.
func EncodeCommand(w io.Writer, cmd Command) error {
	data, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("failed to marshal %s command: %w", cmd.What(), err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write %s command: %w", cmd.What(), err)
	}
	return nil
}

// EncodeLedger persists the full command log to w in JSONL format.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, cmd := range l.Commands() {
		if err := EncodeCommand(w, cmd); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger reads a JSONL stream of commands and replays them into a
// ledger. Empty lines are skipped; a malformed line fails the whole decode
// so a damaged file is noticed rather than silently truncated.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var identifier struct {
			Command CommandType `json:"command"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify command in line %q: %w", string(line), err)
		}

		var cmd Command
		var err error
		switch identifier.Command {
		case CmdCreate:
			var c Create
			err = json.Unmarshal(line, &c)
			cmd = c
		case CmdContribute:
			var c Contribute
			err = json.Unmarshal(line, &c)
			cmd = c
		case CmdDelete:
			var c Delete
			err = json.Unmarshal(line, &c)
			cmd = c
		default:
			err = fmt.Errorf("unknown ledger command: %q", identifier.Command)
		}
		if err != nil {
			return nil, err
		}
		ledger.apply(cmd)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return ledger, nil
}
