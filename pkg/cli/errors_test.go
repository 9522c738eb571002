package cli

import (
	"errors"
	"fmt"
	"testing"
)

func TestConfigError(t *testing.T) {
	tests := []struct {
		name string
		err  *ConfigError
		want string
	}{
		{
			name: "message only",
			err:  NewConfigError("export.input", "missing required field"),
			want: "config error in export.input: missing required field",
		},
		{
			name: "wrapped cause",
			err:  WrapConfigError("schedule", "invalid cron expression", errors.New("expected 5 fields")),
			want: "config error in schedule: invalid cron expression: expected 5 fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigErrorUnwrap(t *testing.T) {
	cause := errors.New("bad value")
	err := WrapConfigError("format", "invalid", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is() should find the wrapped cause")
	}
	if NewConfigError("f", "m").Unwrap() != nil {
		t.Error("Unwrap() without cause should be nil")
	}
}

func TestCommandError(t *testing.T) {
	underlyingErr := errors.New("underlying error")
	err := NewCommandError("export", underlyingErr)

	expected := "command export failed: underlying error"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
	if err.Unwrap() != underlyingErr {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), underlyingErr)
	}
	if !errors.Is(err, underlyingErr) {
		t.Error("errors.Is() should work with CommandError.Unwrap()")
	}
}

func TestCommandErrorAs(t *testing.T) {
	err := fmt.Errorf("run: %w", NewCommandError("inspect", errors.New("boom")))

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatal("errors.As() should find CommandError")
	}
	if cmdErr.Command != "inspect" {
		t.Errorf("Command = %q, want inspect", cmdErr.Command)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitOK},
		{name: "plain error", err: errors.New("x"), want: ExitError},
		{name: "command error", err: NewCommandError("export", errors.New("x")), want: ExitError},
		{name: "config error", err: NewConfigError("f", "m"), want: ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
