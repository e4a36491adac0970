package cmd

import (
	"fmt"
	"io"
	"strings"
)

const (
	clearLine = "\033[K"
	barLength = 20
)

// terminalPrompter renders prompts, notices and a progress bar to a terminal.
type terminalPrompter struct {
	w io.Writer
}

func newTerminalPrompter(w io.Writer) *terminalPrompter {
	return &terminalPrompter{w: w}
}

// Progress redraws the bar on the current line.
func (p *terminalPrompter) Progress(bitsGenerated, totalBits int) {
	fmt.Fprintf(p.w, "\r%sProgress: %s\n", clearLine, progressBar(bitsGenerated, totalBits))
}

// Prompt writes text without a trailing newline.
func (p *terminalPrompter) Prompt(text string) {
	fmt.Fprint(p.w, text)
}

// Notice writes text on its own line.
func (p *terminalPrompter) Notice(text string) {
	fmt.Fprintln(p.w, text)
}

// progressBar renders e.g. "[█████---------------] 25.00%".
func progressBar(bitsGenerated, totalBits int) string {
	var pct float64
	if totalBits > 0 {
		pct = float64(bitsGenerated) / float64(totalBits) * 100
	}
	filled := int(barLength * pct / 100)
	if filled > barLength {
		filled = barLength
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("-", barLength-filled)
	return fmt.Sprintf("[%s] %.2f%%", bar, pct)
}
