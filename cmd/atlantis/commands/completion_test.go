package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletion(t *testing.T) {
	cmd := Completion()

	require.NotNil(t, cmd)
	assert.Equal(t, "completion [bash|zsh|fish|powershell]", cmd.Use)
	assert.Equal(t, []string{"bash", "zsh", "fish", "powershell"}, cmd.ValidArgs)
	assert.True(t, cmd.DisableFlagsInUseLine)
}

func TestCompletion_Shells(t *testing.T) {
	tests := []struct {
		shell   string
		wantErr bool
	}{
		{shell: "bash"},
		{shell: "zsh"},
		{shell: "fish"},
		{shell: "powershell"},
		{shell: "invalid", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			var out bytes.Buffer
			root := Root()
			root.SetOut(&out)
			root.SetArgs([]string{"completion", tt.shell})

			err := root.Execute()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out.String(), "atlantis")
		})
	}
}

func TestCompletion_NoArgs(t *testing.T) {
	root := Root()
	root.SetArgs([]string{"completion"})

	assert.Error(t, root.Execute())
}
