// Package agent provides an AI analyst that explains a portfolio summary in
// plain language.
package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Analyst is a chat with a portfolio accounting expert. It receives the
// rendered summary once, then answers questions about it.
type Analyst struct {
	chat *genai.Chat
}

// NewAnalyst creates the analyst chat on the given Gemini client.
func NewAnalyst(ctx context.Context, client *genai.Client) (*Analyst, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
		You are a portfolio accountant reviewing a valuation summary for an
		individual investor.

		The summary uses weighted-average costing in a single accounting
		currency. Explain the figures in plain language: what drives the
		unrealized and realized P&L, what the annualized XIRR figure means
		for this cash-flow history, and anything in the warnings section the
		investor should fix in their ledger.

		Do not give investment advice. Stick to what the numbers say.
	`}}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return nil, fmt.Errorf("could not start analyst chat: %w", err)
	}
	return &Analyst{chat: chat}, nil
}

// Review sends the rendered summary with an optional question and returns
// the analyst's answer as markdown.
func (a *Analyst) Review(ctx context.Context, summaryMarkdown, question string) (string, error) {
	if question == "" {
		question = "Review this portfolio summary."
	}
	prompt := question + "\n\n" + summaryMarkdown

	resp, err := a.chat.Send(ctx, &genai.Part{Text: prompt})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
