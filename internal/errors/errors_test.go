package errors

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "simple error",
			err:      errors.New("show 4 not found"),
			expected: "Error: show 4 not found",
		},
		{
			name:     "error with hint",
			err:      WithHint(errors.New("no such table: shows"), "run `watchlit init` first"),
			expected: "Error: no such table: shows\nHint: run `watchlit init` first",
		},
		{
			name:     "wrapped hinted error",
			err:      fmt.Errorf("loading shows: %w", WithHint(errors.New("locked"), "close other instances")),
			expected: "Error: loading shows: locked\nHint: close other instances",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.err)
			if result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestWithHint(t *testing.T) {
	if WithHint(nil, "ignored") != nil {
		t.Error("WithHint(nil) should return nil")
	}

	cause := errors.New("cause")
	err := WithHint(cause, "try again")
	if !errors.Is(err, cause) {
		t.Error("hinted error should unwrap to its cause")
	}
	if Hint(err) != "try again" {
		t.Errorf("Hint() = %q, want %q", Hint(err), "try again")
	}
	if Hint(cause) != "" {
		t.Errorf("Hint() on plain error = %q, want empty", Hint(cause))
	}
}

func TestFormatf(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		args     []any
		expected string
	}{
		{
			name:     "simple message",
			format:   "nothing to restore",
			expected: "Error: nothing to restore",
		},
		{
			name:     "formatted message",
			format:   "show %d not found",
			args:     []any{7},
			expected: "Error: show 7 not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Formatf(tt.format, tt.args...)
			if result != tt.expected {
				t.Errorf("Formatf(%q, %v) = %q, want %q", tt.format, tt.args, result, tt.expected)
			}
		})
	}
}

// TestFatal runs Fatal in a helper process and checks its exit status.
func TestFatal(t *testing.T) {
	if os.Getenv("WATCHLIT_TEST_FATAL") == "1" {
		Fatal(WithHint(errors.New("test error"), "test hint"))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestFatal$")
	cmd.Env = append(os.Environ(), "WATCHLIT_TEST_FATAL=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Fatal() did not exit with error: %v", err)
	}
	if exitErr.ExitCode() != 1 {
		t.Errorf("Fatal() exit code = %d, want 1", exitErr.ExitCode())
	}
	out := stderr.String()
	if !strings.Contains(out, "Error: test error") || !strings.Contains(out, "Hint: test hint") {
		t.Errorf("Fatal() stderr = %q, want error and hint", out)
	}
}

func TestFatal_NilError(t *testing.T) {
	if os.Getenv("WATCHLIT_TEST_FATAL_NIL") == "1" {
		Fatal(nil)
		os.Exit(0)
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestFatal_NilError$")
	cmd.Env = append(os.Environ(), "WATCHLIT_TEST_FATAL_NIL=1")

	if err := cmd.Run(); err != nil {
		t.Errorf("Fatal(nil) should not exit, but got error: %v", err)
	}
}
