package acceptance_test

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"strings"
	"testing"
)

// runDsk executes the dsk binary with stdin and returns stdout, stderr, and
// exit code. DSK_* variables from the caller's environment are dropped.
func runDsk(t *testing.T, stdin string, env []string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(dskBinary, args...)
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Env = append(cleanEnv(), env...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("failed to run dsk: %v", err)
		}
	}
	return stdout.String(), stderr.String(), exitCode
}

// runDskSuccess runs dsk expecting exit code 0 and returns stdout.
func runDskSuccess(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	stdout, stderr, exitCode := runDsk(t, stdin, nil, args...)
	if exitCode != 0 {
		t.Fatalf("expected exit 0, got %d\nargs: %v\nstdout: %s\nstderr: %s", exitCode, args, stdout, stderr)
	}
	return stdout
}

// generateJSON runs dsk generate --json and parses the result.
func generateJSON(t *testing.T, stdin string, extraArgs ...string) map[string]interface{} {
	t.Helper()
	args := append([]string{"generate", "--json"}, extraArgs...)
	stdout := runDskSuccess(t, stdin, args...)
	var result map[string]interface{}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("failed to parse generate JSON: %v\noutput: %s", err, stdout)
	}
	return result
}

// rollLines renders rolls as one answer per line.
func rollLines(rolls string) string {
	var b strings.Builder
	for _, r := range rolls {
		b.WriteRune(r)
		b.WriteByte('\n')
	}
	return b.String()
}

// patternRolls returns n rolls cycling 4, 5, 6, 1, 2, 3.
func patternRolls(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(byte('1' + (i*7+3)%6))
	}
	return b.String()
}

func cleanEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "DSK_") {
			env = append(env, kv)
		}
	}
	return env
}
