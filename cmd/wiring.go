package cmd

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/eykd/diceseed-go/internal/mnemonic"
	"github.com/eykd/diceseed-go/internal/seed"
)

// defaultRunner wires the seed service with the BIP39 encoder.
func defaultRunner(log zerolog.Logger) GenerateRunner {
	return seed.NewService(mnemonic.BIP39Encoder{}, log)
}

// BuildCommandTree assembles the root command and its subcommands. A nil
// factory uses the BIP39 seed service.
func BuildCommandTree(newRunner RunnerFactory) *cobra.Command {
	if newRunner == nil {
		newRunner = defaultRunner
	}

	root := NewRootCmd()
	root.AddCommand(NewGenerateCmd(newRunner))
	root.AddCommand(NewStrengthsCmd())
	return root
}

// Main runs dsk with the process arguments and streams and returns the exit
// code. With no arguments it runs generate.
func Main(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		args = []string{"generate"}
	}
	return RunCLI(ctx, BuildCommandTree(nil), args, stdin, stdout, stderr)
}
