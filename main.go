// Package main is the entry point for the dsk CLI application.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/eykd/diceseed-go/cmd"
)

func main() {
	// Create a context that is cancelled on SIGINT (Ctrl+C).
	// An interrupted prompt ends the run like a quit.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	code := cmd.Main(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
