package seed

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/eykd/diceseed-go/internal/domain"
	"github.com/eykd/diceseed-go/internal/entropy"
	"github.com/eykd/diceseed-go/internal/logging"
	"github.com/eykd/diceseed-go/internal/mnemonic"
)

// stubEncoder records calls and returns canned words.
type stubEncoder struct {
	calls int
	got   []byte
	words []string
	err   error
}

func (s *stubEncoder) Encode(entropy []byte) ([]string, error) {
	s.calls++
	s.got = entropy
	return s.words, s.err
}

func ones(n int) []int {
	r := make([]int, n)
	for i := range r {
		r[i] = 1
	}
	return r
}

func TestGenerate_EndToEnd128(t *testing.T) {
	svc := NewService(mnemonic.BIP39Encoder{}, zerolog.Nop())

	got, err := svc.Generate(context.Background(), domain.Strength128, entropy.NewSliceSource(ones(52)))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Entropy) != 16 {
		t.Errorf("len(Entropy) = %d, want 16", len(got.Entropy))
	}
	if len(got.Words) != 12 {
		t.Errorf("len(Words) = %d, want 12", len(got.Words))
	}
	want := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	if got.Phrase() != want {
		t.Errorf("Phrase() = %q, want %q", got.Phrase(), want)
	}
	if len(got.Rolls) != 26 {
		t.Errorf("len(Rolls) = %d, want 26", len(got.Rolls))
	}
	if got.BitsGenerated != 130 {
		t.Errorf("BitsGenerated = %d, want 130", got.BitsGenerated)
	}
}

func TestGenerate_WordCountPerStrength(t *testing.T) {
	svc := NewService(mnemonic.BIP39Encoder{}, zerolog.Nop())
	for _, s := range domain.Strengths() {
		got, err := svc.Generate(context.Background(), s, entropy.NewSliceSource(ones(2*s.PairsNeeded())))
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", s, err)
		}
		if len(got.Words) != s.WordCount() {
			t.Errorf("%v: %d words, want %d", s, len(got.Words), s.WordCount())
		}
	}
}

func TestGenerate_SourceErrorSkipsEncoder(t *testing.T) {
	enc := &stubEncoder{}
	svc := NewService(enc, zerolog.Nop())

	_, err := svc.Generate(context.Background(), domain.Strength128, entropy.NewSliceSource(ones(10)))

	if !errors.Is(err, entropy.ErrRollsExhausted) {
		t.Fatalf("error = %v, want ErrRollsExhausted", err)
	}
	if enc.calls != 0 {
		t.Errorf("encoder called %d times, want 0", enc.calls)
	}
}

func TestGenerate_InvalidStrength(t *testing.T) {
	enc := &stubEncoder{}
	svc := NewService(enc, zerolog.Nop())

	_, err := svc.Generate(context.Background(), domain.Strength(99), entropy.NewSliceSource(ones(200)))

	if !errors.Is(err, domain.ErrInvalidStrength) {
		t.Fatalf("error = %v, want ErrInvalidStrength", err)
	}
	if enc.calls != 0 {
		t.Errorf("encoder called %d times, want 0", enc.calls)
	}
}

func TestGenerate_EncoderErrorWrapped(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(&stubEncoder{err: boom}, zerolog.Nop())

	_, err := svc.Generate(context.Background(), domain.Strength160, entropy.NewSliceSource(ones(200)))

	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want wrapped boom", err)
	}
	if !strings.Contains(err.Error(), "encoding 20-byte entropy") {
		t.Errorf("error = %q, want context", err.Error())
	}
}

func TestGenerate_PassesCanonicalEntropyToEncoder(t *testing.T) {
	enc := &stubEncoder{words: []string{"w"}}
	svc := NewService(enc, zerolog.Nop())

	got, err := svc.Generate(context.Background(), domain.Strength256, entropy.NewSliceSource(ones(200)))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(enc.got, got.Entropy) {
		t.Errorf("encoder got %x, want %x", enc.got, got.Entropy)
	}
	if len(enc.got) != 32 {
		t.Errorf("encoder got %d bytes, want 32", len(enc.got))
	}
}

func TestGenerate_LogsDebugEvents(t *testing.T) {
	var buf bytes.Buffer
	svc := NewService(mnemonic.BIP39Encoder{}, logging.New(&buf, true))

	if _, err := svc.Generate(context.Background(), domain.Strength128, entropy.NewSliceSource(ones(52))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, msg := range []string{
		logging.StrengthChosen,
		logging.EntropyCollected,
		logging.ChecksumComputed,
		logging.FullEntropy,
		logging.FinalEntropy,
		logging.MnemonicEncoded,
	} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output missing %q:\n%s", msg, out)
		}
	}
	if !strings.Contains(out, "bits=130") {
		t.Errorf("log output missing bits=130:\n%s", out)
	}
}
