// Package agent implements the interactive savings coach, a Gemini-backed
// chat session grounded in the user's own goals.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent runs the chat session between the user and the advisor.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	Advisor *Advisor
}

// New creates a new Agent around an advisor. It takes an io.Writer for the
// agent's output (e.g., os.Stdout) and an io.Reader for user input
// (e.g., os.Stdin).
func New(w io.Writer, r io.Reader, advisor *Advisor) *Agent {
	return &Agent{
		w:       w,
		r:       bufio.NewReader(r),
		Advisor: advisor,
	}
}

const prompt = "assist> "

// Run starts the interactive REPL session. Initial prompts are consumed
// before reading from the user, so `syfe assist "how am I doing"` answers
// once and then hands over the keyboard.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if err := a.Advisor.Start(ctx, client); err != nil {
		return err
	}

	fmt.Fprintln(a.w, "Welcome to syfe savings assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		content, err := a.Advisor.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, content.Parts[0].Text)
	}
}
