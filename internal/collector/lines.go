package collector

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
)

type scanResult struct {
	line string
	err  error
}

// LineReader owns the single read in flight on an input. A read abandoned
// by a cancelled context stays pending and its line goes to the next caller,
// so several readers over one run never race for the same input.
//
// A LineReader is not safe for concurrent use.
type LineReader struct {
	scanner *bufio.Scanner
	pending chan scanResult
	buf     []byte
}

// NewLineReader returns a LineReader over r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{scanner: bufio.NewScanner(r)}
}

// ReadLine returns the next line without its terminator. It returns
// ErrInputClosed at end of input and ctx.Err() when ctx is done first.
func (l *LineReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if l.pending == nil {
		done := make(chan scanResult, 1)
		l.pending = done
		go func() {
			if l.scanner.Scan() {
				done <- scanResult{line: l.scanner.Text()}
				return
			}
			err := l.scanner.Err()
			if err == nil {
				err = ErrInputClosed
			} else {
				err = fmt.Errorf("reading input: %w", err)
			}
			done <- scanResult{err: err}
		}()
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-l.pending:
		l.pending = nil
		return r.line, r.err
	}
}

// Read implements io.Reader, serving whole lines with a trailing newline.
func (l *LineReader) Read(p []byte) (int, error) {
	if len(l.buf) == 0 {
		line, err := l.ReadLine(context.Background())
		if errors.Is(err, ErrInputClosed) {
			return 0, io.EOF
		}
		if err != nil {
			return 0, err
		}
		l.buf = []byte(line + "\n")
	}
	n := copy(p, l.buf)
	l.buf = l.buf[n:]
	return n, nil
}
