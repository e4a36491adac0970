// Package collector reads validated die rolls and strength choices from a
// line-oriented input such as a terminal.
package collector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/eykd/diceseed-go/internal/domain"
	"github.com/eykd/diceseed-go/internal/entropy"
	"github.com/eykd/diceseed-go/internal/token"
)

// ErrQuit is returned when the user enters a quit token.
var ErrQuit = errors.New("exiting due to user request")

// ErrInputClosed is returned when input ends before a valid answer.
var ErrInputClosed = errors.New("input closed")

// Prompter renders prompts and feedback. It is purely observational.
type Prompter interface {
	Progress(bitsGenerated, totalBits int)
	Prompt(text string)
	Notice(text string)
}

// Collector asks for answers one line at a time, re-prompting until the
// answer is valid or the session is aborted.
type Collector struct {
	lines    *LineReader
	prompter Prompter
}

// New creates a Collector reading from r. When r is a *LineReader it is
// shared rather than wrapped, so a read pending from an earlier Collector
// is picked up by this one.
func New(r io.Reader, p Prompter) *Collector {
	lines, ok := r.(*LineReader)
	if !ok {
		lines = NewLineReader(r)
	}
	return &Collector{lines: lines, prompter: p}
}

// NextRoll implements entropy.RollSource.
func (c *Collector) NextRoll(ctx context.Context, req entropy.RollRequest) (int, error) {
	for {
		c.prompter.Progress(req.BitsGenerated, req.TotalBits)
		c.prompter.Prompt(fmt.Sprintf("Enter roll %d (1-6, 'q' to quit): ", req.Index))

		line, err := c.lines.ReadLine(ctx)
		if err != nil {
			return 0, err
		}
		if token.IsQuit(line) {
			return 0, ErrQuit
		}

		n, numeric, inRange := token.ParseInt(line, domain.MinRoll, domain.MaxRoll)
		switch {
		case !numeric:
			c.prompter.Notice("Invalid input. Please enter a number or 'q' to quit.")
		case !inRange:
			c.prompter.Notice("Error: The number must be between 1 and 6.")
		default:
			return n, nil
		}
	}
}

// ChooseStrength asks for one of the five mnemonic lengths.
func (c *Collector) ChooseStrength(ctx context.Context) (domain.Strength, error) {
	choices := domain.Strengths()
	var menu strings.Builder
	menu.WriteString("Choose mnemonic length:\n")
	for i, s := range choices {
		fmt.Fprintf(&menu, "%d. %d words\n", i+1, s.WordCount())
	}
	fmt.Fprintf(&menu, "Enter choice (1-%d, 'q' to quit): ", len(choices))

	for {
		c.prompter.Prompt(menu.String())

		line, err := c.lines.ReadLine(ctx)
		if err != nil {
			return 0, err
		}
		if token.IsQuit(line) {
			return 0, ErrQuit
		}

		n, numeric, inRange := token.ParseInt(line, 1, len(choices))
		switch {
		case !numeric:
			c.prompter.Notice("Invalid input. Please enter a number or 'q' to quit.")
		case !inRange:
			c.prompter.Notice(fmt.Sprintf("Please enter a number between 1 and %d.", len(choices)))
		default:
			return domain.StrengthFromChoice(n)
		}
	}
}

// WaitForEnter blocks until a line is read or input ends.
func (c *Collector) WaitForEnter(ctx context.Context, text string) {
	c.prompter.Prompt(text)
	_, _ = c.lines.ReadLine(ctx)
}
