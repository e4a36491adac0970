// Package logging builds the zerolog logger used for diagnostics.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// Field names shared by log events.
const (
	Strength     = "strength"
	Bits         = "bits"
	TotalBits    = "total_bits"
	ChecksumBits = "checksum_bits"
	Bytes        = "bytes"
	Pairs        = "pairs"
	Words        = "words"
)

// Messages of the debug events emitted during a run.
const (
	StrengthChosen   = "strength chosen"
	EntropyCollected = "entropy collected"
	ChecksumComputed = "checksum computed"
	FullEntropy      = "full entropy length before byte conversion"
	FinalEntropy     = "final entropy length"
	MnemonicEncoded  = "mnemonic encoded"
	RunAborted       = "run aborted"
)

// New returns a console logger writing to w. Verbose enables debug events;
// otherwise only warnings and above are written.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return zerolog.New(out).Level(level)
}
