package prerequisites

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeLookPath(found ...string) LookPath {
	return func(name string) (string, error) {
		for _, f := range found {
			if f == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("executable file not found in $PATH")
	}
}

func TestCheckWith(t *testing.T) {
	t.Parallel()
	tools := []Tool{
		{Name: "git", Required: true, InstallURL: "https://git-scm.com/downloads"},
		{Name: "sam", Required: false, InstallURL: "https://aws.amazon.com/serverless/sam/"},
	}

	tests := []struct {
		name        string
		found       []string
		wantMissing []string
		wantErr     string
	}{
		{name: "all present", found: []string{"git", "sam"}},
		{name: "optional missing", found: []string{"git"}, wantMissing: []string{"sam"}},
		{
			name:        "required missing",
			found:       []string{"sam"},
			wantMissing: []string{"git"},
			wantErr:     "missing required tools: git (https://git-scm.com/downloads)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			results := CheckWith(fakeLookPath(tt.found...), tools)

			require.Len(t, results.Results, 2)
			var missing []string
			for _, m := range results.Missing {
				missing = append(missing, m.Name)
			}
			assert.Equal(t, tt.wantMissing, missing)

			if tt.wantErr != "" {
				assert.True(t, results.HasErrors())
				assert.EqualError(t, results.Error(), tt.wantErr)
			} else {
				assert.False(t, results.HasErrors())
				assert.NoError(t, results.Error())
			}
		})
	}
}

func TestCheckWith_RecordsPath(t *testing.T) {
	t.Parallel()
	results := CheckWith(fakeLookPath("git"), GitTools())

	require.Len(t, results.Results, 1)
	assert.True(t, results.Results[0].Found)
	assert.Equal(t, "/usr/bin/git", results.Results[0].Path)
}

func TestGitTools(t *testing.T) {
	t.Parallel()
	tools := GitTools()
	require.Len(t, tools, 1)
	assert.Equal(t, "git", tools[0].Name)
	assert.True(t, tools[0].Required)
}
