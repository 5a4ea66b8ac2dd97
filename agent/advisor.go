package agent

import (
	"context"
	"fmt"

	savings "github.com/subodhkangale07/savings"
	"github.com/subodhkangale07/savings/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Advisor is the savings coach: a single chat with tools to read the
// user's goals on demand, so its answers are grounded in real numbers
// rather than whatever was pasted at session start.
type Advisor struct {
	store *savings.Store
	chat  *genai.Chat
}

// NewAdvisor creates an advisor over the given state store.
func NewAdvisor(store *savings.Store) *Advisor {
	return &Advisor{store: store}
}

// Start opens the Gemini chat session.
func (a *Advisor) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, model, a.config(), nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

func (a *Advisor) config() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{FunctionDeclarations: []*genai.FunctionDeclaration{reportDeclaration}},
		},
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a personal savings coach. The user tracks savings goals in INR and USD
			and records contributions against them.

			Use the Report tool to read the user's current goals, totals, insights and
			achievements before answering. Never invent figures: every number you quote
			must come from the report.

			Be encouraging but concrete. When asked for advice, anchor it on the user's
			actual progress, streak and suggested monthly saving. Keep answers short.
		`}}},
	}
}

// Ask sends the user's message and resolves any tool calls before
// returning the final answer.
func (a *Advisor) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := a.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from advisor")
	}
	part0 := resp.Candidates[0].Content.Parts[0]
	if part0.FunctionCall != nil {
		// Answer the tool call and ask again until we have a real response.
		return a.Ask(ctx, &genai.Part{FunctionResponse: a.call(part0.FunctionCall)})
	}
	return resp.Candidates[0].Content, nil
}

var reportDeclaration = &genai.FunctionDeclaration{
	Name: "Report",
	Description: `Report returns the user's full savings report: every goal with its
	target, saved amount and progress, the aggregate totals converted to INR,
	the derived insights (streak, projection, suggested monthly saving) and
	the achievement board.`,
	Parameters: &genai.Schema{
		Type:       genai.TypeObject,
		Properties: map[string]*genai.Schema{},
	},
	Response: &genai.Schema{
		Type:        genai.TypeString,
		Description: "A markdown-formatted savings report.",
	},
}

func (a *Advisor) call(fc *genai.FunctionCall) *genai.FunctionResponse {
	fresp := &genai.FunctionResponse{ID: fc.ID, Name: fc.Name}
	if fc.Name != reportDeclaration.Name {
		fresp.Response = map[string]any{"error": fmt.Sprintf("unknown function %s", fc.Name)}
		return fresp
	}

	report, err := a.report()
	if err != nil {
		fresp.Response = map[string]any{"error": err.Error()}
		return fresp
	}
	fresp.Response = map[string]any{"output": report}
	return fresp
}

// report loads the current state and renders the full markdown report.
func (a *Advisor) report() (string, error) {
	state, err := a.store.Load()
	if err != nil {
		return "", fmt.Errorf("could not load savings state: %w", err)
	}
	goals := state.Ledger.Goals()
	rate := state.Rate.EffectiveRate()
	summary := savings.Totals(goals, rate)
	insights := savings.ComputeInsights(goals, rate)
	return renderer.ReportMarkdown(goals, &summary, &insights, state.Unlocked), nil
}
