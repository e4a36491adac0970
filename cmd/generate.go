package cmd

import (
	"context"
	"encoding/hex"
	"errors"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/eykd/diceseed-go/internal/collector"
	"github.com/eykd/diceseed-go/internal/domain"
	"github.com/eykd/diceseed-go/internal/entropy"
	"github.com/eykd/diceseed-go/internal/logging"
	"github.com/eykd/diceseed-go/internal/seed"
	"github.com/eykd/diceseed-go/internal/token"
)

// ErrInvalidRolls is returned when --rolls contains anything but die faces.
var ErrInvalidRolls = errors.New("rolls must be digits 1-6")

// ErrNoRunner is returned when generate is built without a runner factory.
var ErrNoRunner = errors.New("no generator configured")

// ErrConflictingStrength is returned when both --strength and --words are given.
var ErrConflictingStrength = errors.New("--strength and --words are mutually exclusive")

// GenerateRunner defines the interface for running a generation.
type GenerateRunner interface {
	Generate(ctx context.Context, strength domain.Strength, src entropy.RollSource) (*seed.Outcome, error)
}

// RunnerFactory builds a GenerateRunner once the logger is known.
type RunnerFactory func(log zerolog.Logger) GenerateRunner

// GenerateResult is the machine-readable output of generate.
type GenerateResult struct {
	Strength      int               `json:"strength" yaml:"strength"`
	Words         []string          `json:"words" yaml:"words"`
	Mnemonic      string            `json:"mnemonic" yaml:"mnemonic"`
	Entropy       string            `json:"entropy" yaml:"entropy"`
	BitsGenerated int               `json:"bits_generated" yaml:"bits_generated"`
	Rolls         []domain.RollPair `json:"rolls" yaml:"rolls"`
}

func newGenerateResult(o *seed.Outcome) *GenerateResult {
	return &GenerateResult{
		Strength:      o.Strength.Bits(),
		Words:         o.Words,
		Mnemonic:      o.Phrase(),
		Entropy:       hex.EncodeToString(o.Entropy),
		BitsGenerated: o.BitsGenerated,
		Rolls:         o.Rolls,
	}
}

// generateFlags holds the per-invocation flag values.
type generateFlags struct {
	strength   int
	words      int
	rolls      string
	format     string
	jsonOutput bool
}

// NewGenerateCmd creates the generate command. newRunner is called with the
// run's logger.
func NewGenerateCmd(newRunner RunnerFactory) *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:          "generate",
		Short:        "Collect dice rolls and print the resulting mnemonic",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if newRunner == nil {
				return ErrNoRunner
			}
			return runGenerate(cmd, newRunner, f)
		},
	}

	cmd.Flags().IntVar(&f.strength, "strength", 0, "Entropy size in bits (128, 160, 192, 224 or 256)")
	cmd.Flags().IntVar(&f.words, "words", 0, "Mnemonic length in words (12, 15, 18, 21 or 24)")
	cmd.Flags().StringVar(&f.rolls, "rolls", "", "Die rolls as digits 1-6 instead of prompting")
	cmd.Flags().StringVar(&f.format, "format", "", "Output format: human, json or yaml")
	cmd.Flags().BoolVar(&f.jsonOutput, "json", false, "Output results as JSON")

	return cmd
}

func runGenerate(cmd *cobra.Command, newRunner RunnerFactory, f generateFlags) error {
	ctx := cmd.Context()
	log := logging.New(cmd.ErrOrStderr(), GetVerbose())

	format, err := resolveFormat(cmd, f)
	if err != nil {
		return err
	}

	prompter := newTerminalPrompter(cmd.ErrOrStderr())
	coll := collector.New(cmd.InOrStdin(), prompter)

	strength, err := resolveStrength(ctx, cmd, f, coll)
	if err != nil {
		return abortOr(err)
	}

	var src entropy.RollSource = coll
	if f.rolls != "" {
		rolls, err := parseRolls(f.rolls)
		if err != nil {
			return err
		}
		src = entropy.NewSliceSource(rolls)
	}

	outcome, err := newRunner(log).Generate(ctx, strength, src)
	if err != nil {
		log.Debug().Err(err).Msg(logging.RunAborted)
		return abortOr(err)
	}
	if f.rolls == "" {
		prompter.Notice("\nDice rolling completed.")
		prompter.Notice("All words of the mnemonic have been selected.")
	}

	result := newGenerateResult(outcome)
	switch format {
	case FormatJSON:
		writeJSON(cmd.OutOrStdout(), result)
	case FormatYAML:
		writeYAML(cmd.OutOrStdout(), result)
	default:
		renderGrid(cmd.OutOrStdout(),
			[]string{"Generated Mnemonic", "Entropy (Dice Rolls)"},
			[][]string{{outcome.Phrase(), domain.FormatRollAudit(outcome.Rolls)}})
	}
	return nil
}

// resolveFormat picks the output format: --json, then --format, then DSK_FORMAT.
func resolveFormat(cmd *cobra.Command, f generateFlags) (string, error) {
	format := settings.Format
	if format == "" {
		format = FormatHuman
	}
	if cmd.Flags().Changed("format") {
		format = f.format
	}
	if f.jsonOutput {
		format = FormatJSON
	}
	return format, validateFormat(format)
}

// resolveStrength picks the strength: flags, then DSK_STRENGTH, then the
// interactive selector.
func resolveStrength(ctx context.Context, cmd *cobra.Command, f generateFlags, coll *collector.Collector) (domain.Strength, error) {
	strengthSet := cmd.Flags().Changed("strength")
	wordsSet := cmd.Flags().Changed("words")

	switch {
	case strengthSet && wordsSet:
		return 0, ErrConflictingStrength
	case strengthSet:
		return domain.ParseStrength(f.strength)
	case wordsSet:
		return domain.StrengthFromWords(f.words)
	case settings.Strength != 0:
		s, err := domain.ParseStrength(settings.Strength)
		if err != nil {
			return 0, &ContextError{Op: "DSK_STRENGTH", Err: err}
		}
		return s, nil
	}
	return coll.ChooseStrength(ctx)
}

// parseRolls converts a --rolls value into die faces.
func parseRolls(s string) ([]int, error) {
	digits, ok := token.Digits(s)
	if !ok {
		return nil, &ContextError{Op: "--rolls", Err: ErrInvalidRolls}
	}
	for _, d := range digits {
		if err := domain.ValidateRoll(d); err != nil {
			return nil, &ContextError{Op: "--rolls", Err: err}
		}
	}
	return digits, nil
}

// abortOr wraps deliberate aborts in an AbortError and passes other errors through.
func abortOr(err error) error {
	if errors.Is(err, collector.ErrQuit) ||
		errors.Is(err, collector.ErrInputClosed) ||
		errors.Is(err, context.Canceled) {
		return &AbortError{Err: err}
	}
	return err
}
