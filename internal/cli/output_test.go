package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "plain error", err: errors.New("boom"), want: ExitFailure},
		{name: "exit error", err: NewExitError(ExitCommandError, "bad flag"), want: ExitCommandError},
		{name: "wrapped exit error", err: fmt.Errorf("run: %w", NewExitError(ExitCommandError, "bad flag")), want: ExitCommandError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestExitError_Message(t *testing.T) {
	cause := errors.New("connection refused")
	err := WrapExitError(ExitFailure, "sync failed", cause)

	assert.Equal(t, "sync failed: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "bad flag", NewExitError(ExitCommandError, "bad flag").Error())
}

func TestOutputFormatter_Table(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutputFormatter("text", &buf)

	err := out.Table([]string{"UUID", "STATE"}, [][]string{
		{"a", "NEW"},
		{"bbbbbb", "SENT"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "UUID    STATE\na       NEW\nbbbbbb  SENT\n", buf.String())
}

func TestOutputFormatter_JSON(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutputFormatter("json", &buf)

	assert.True(t, out.IsJSON())
	assert.NoError(t, out.JSON(map[string]int{"repaired": 2}))
	assert.JSONEq(t, `{"repaired": 2}`, buf.String())
}
