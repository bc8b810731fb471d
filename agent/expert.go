package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Expert represent a chat with a business expert.
type Expert struct {
	Name        string
	Description string
	ModelName   string
	Config      *genai.GenerateContentConfig
	chat        *genai.Chat
}

func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Ask is a simple wrapper on top of Chat.Send to make it simpler for callers.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from expert %s", e.Name)
	}
	return resp.Candidates[0].Content, nil
}

// NewAnalyst returns the CPPI analyst expert, primed with the rendered
// report of a simulation run.
func NewAnalyst(report string) *Expert {
	prompt := `You are an analyst specialized in Constant Proportion Portfolio
Insurance (CPPI). You are given the report of one simulation run over a
historical price series. Answer the user's questions about the run:
why the risky allocation moved as it did, what the floor and multiplier
imply, and how a different max-loss assumption would have behaved.
Be factual and concise, and only use numbers from the report.

The report:

` + report

	return &Expert{
		Name:        "analyst",
		Description: "Answers questions about a CPPI simulation run.",
		ModelName:   "gemini-2.5-flash",
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: prompt}},
			},
		},
	}
}
