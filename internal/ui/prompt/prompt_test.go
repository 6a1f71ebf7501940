package prompt

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequired(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "value", input: "acme", wantErr: false},
		{name: "padded value", input: "  arn  ", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validateRequired(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, errValueRequired)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRun_MapsAbortToCancellation(t *testing.T) {
	t.Parallel()
	assert.True(t, errors.Is(classify(huh.ErrUserAborted), context.Canceled))
	assert.True(t, errors.Is(classify(context.Canceled), context.Canceled))

	other := errors.New("tty closed")
	err := classify(other)
	assert.ErrorIs(t, err, other)
	assert.False(t, errors.Is(err, context.Canceled))
	assert.NoError(t, classify(nil))
}

func TestNewTerminal(t *testing.T) {
	t.Parallel()
	term := NewTerminal()
	assert.Equal(t, !isInteractive(), term.Accessible)
}

// withStdin replaces os.Stdin with a pipe holding input for the rest of the test.
func withStdin(t *testing.T, input string) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString(input)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	orig := os.Stdin
	os.Stdin = r
	t.Cleanup(func() {
		os.Stdin = orig
		_ = r.Close()
	})
}

func TestTerminal_InputKeepsWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		typed string
		want  string
	}{
		{name: "trailing space", typed: "acme \n", want: "acme "},
		{name: "leading space", typed: " AB12C\n", want: " AB12C"},
		{name: "plain", typed: "web\n", want: "web"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withStdin(t, tt.typed)

			got, err := (&Terminal{Accessible: true}).Input(context.Background(), "Prefix")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
