// Package agent implements the interactive AI analyst over a
// simulation run.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	Analyst *Expert
}

// New creates a new Agent around the analyst expert.
//
// It takes an io.Writer for the agent's output (e.g., os.Stdout), and
// an io.Reader for user input (e.g., os.Stdin).
func New(w io.Writer, r io.Reader, analyst *Expert) *Agent {
	return &Agent{
		w:       w,
		r:       bufio.NewReader(r),
		Analyst: analyst,
	}
}

const prompt = "assist> "

// Run starts the chat session and loops on user input until EOF or
// "quit". An optional initial prompt is asked before the loop.
func (a *Agent) Run(ctx context.Context, client *genai.Client, initialPrompt string) error {
	if err := a.Analyst.Start(ctx, client); err != nil {
		return err
	}

	if initialPrompt != "" {
		if err := a.ask(ctx, initialPrompt); err != nil {
			return err
		}
	}

	for {
		fmt.Fprint(a.w, prompt)
		line, err := a.r.ReadString('\n')
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		question := strings.TrimSpace(line)
		if question == "" {
			continue
		}
		if question == "quit" || question == "exit" {
			return nil
		}
		if err := a.ask(ctx, question); err != nil {
			return err
		}
	}
}

func (a *Agent) ask(ctx context.Context, question string) error {
	content, err := a.Analyst.Ask(ctx, &genai.Part{Text: question})
	if err != nil {
		return err
	}
	for _, part := range content.Parts {
		fmt.Fprintln(a.w, part.Text)
	}
	return nil
}
