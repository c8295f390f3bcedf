package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/staffdesk/staffdesk/internal/prompt"
)

// Answer is one scripted reply to a prompt
type Answer struct {
	text string
	pick string
	err  error
}

// Type answers a free-text prompt
func Type(text string) Answer { return Answer{text: text} }

// Pick answers a select prompt with the choice carrying this label
func Pick(label string) Answer { return Answer{pick: label} }

// Fail makes the prompt return err, e.g. prompt.ErrAborted
func Fail(err error) Answer { return Answer{err: err} }

// ScriptedPrompter replays answers in order and records what was asked.
// Running out of answers fails the test.
type ScriptedPrompter struct {
	t       *testing.T
	answers []Answer

	// Titles of every prompt shown, in order
	Titles []string
	// Choices offered by every Select call, in order
	Offered [][]prompt.Choice
}

// NewScriptedPrompter creates a prompter that replays answers
func NewScriptedPrompter(t *testing.T, answers ...Answer) *ScriptedPrompter {
	return &ScriptedPrompter{t: t, answers: answers}
}

// Remaining reports how many answers have not been consumed
func (p *ScriptedPrompter) Remaining() int {
	return len(p.answers)
}

func (p *ScriptedPrompter) next(title string) Answer {
	p.t.Helper()
	p.Titles = append(p.Titles, title)
	if len(p.answers) == 0 {
		p.t.Fatalf("unexpected prompt %q: script exhausted", title)
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer
}

// Select returns the offered choice whose label matches the scripted pick
func (p *ScriptedPrompter) Select(_ context.Context, title string, choices []prompt.Choice) (prompt.Choice, error) {
	p.Offered = append(p.Offered, choices)
	answer := p.next(title)
	if answer.err != nil {
		return prompt.Choice{}, answer.err
	}
	for _, choice := range choices {
		if choice.Label == answer.pick {
			return choice, nil
		}
	}
	return prompt.Choice{}, fmt.Errorf("scripted pick %q not offered for %q", answer.pick, title)
}

// Input returns the scripted text after running validate on it
func (p *ScriptedPrompter) Input(_ context.Context, title string, validate func(string) error) (string, error) {
	answer := p.next(title)
	if answer.err != nil {
		return "", answer.err
	}
	if validate != nil {
		if err := validate(answer.text); err != nil {
			return "", fmt.Errorf("scripted text %q rejected: %w", answer.text, err)
		}
	}
	return answer.text, nil
}

var _ prompt.Prompter = (*ScriptedPrompter)(nil)
