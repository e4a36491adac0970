package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eykd/diceseed-go/internal/collector"
)

// ContextError adds operation and argument context to an underlying error.
type ContextError struct {
	Op  string
	Arg string
	Err error
}

// Error returns the formatted error string with context.
func (e *ContextError) Error() string {
	if e.Op != "" && e.Arg != "" {
		return e.Op + ": " + e.Arg + ": " + e.Err.Error()
	}
	if e.Op != "" {
		return e.Op + ": " + e.Err.Error()
	}
	if e.Arg != "" {
		return e.Arg + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ContextError) Unwrap() error {
	return e.Err
}

// AbortError is returned when the user deliberately ends a run.
type AbortError struct {
	Err error
}

// Error implements the error interface.
func (e *AbortError) Error() string {
	return "aborted: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *AbortError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code for an aborted run (always 2).
func (e *AbortError) ExitCode() int {
	return 2
}

// ExitCoder is implemented by errors that carry a specific process exit code.
type ExitCoder interface {
	ExitCode() int
}

// ExitCodeFromError returns the appropriate exit code for an error.
// nil returns 0, ExitCoder errors return their code, all others return 1.
func ExitCodeFromError(err error) int {
	if err == nil {
		return 0
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

// FormatError formats an error with the "dsk: " prefix and trailing newline.
func FormatError(err error) string {
	return fmt.Sprintf("dsk: %s\n", err.Error())
}

// exitMessage is shown when the user quits on purpose.
const exitMessage = "Exiting due to user request.\n"

// RunCLI executes the command with the given args and streams. Failures are
// written to stderr; a deliberate abort prints a plain exit notice instead.
// When --pause (or DSK_PAUSE) is set it waits for Enter before returning,
// reading from the same line source as the prompts so a line typed after an
// interrupted prompt is not lost. It returns the process exit code.
func RunCLI(ctx context.Context, cmd *cobra.Command, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	lines := collector.NewLineReader(stdin)
	cmd.SetIn(lines)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		var abort *AbortError
		if errors.As(err, &abort) {
			fmt.Fprint(stderr, exitMessage)
		} else {
			fmt.Fprint(stderr, FormatError(err))
		}
	}

	if GetPause() {
		collector.New(lines, newTerminalPrompter(stderr)).
			WaitForEnter(context.Background(), "Press Enter to exit...")
	}
	return ExitCodeFromError(err)
}
