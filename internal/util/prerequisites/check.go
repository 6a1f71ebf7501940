// Package prerequisites checks that client tools the teardown shells out to
// are installed.
package prerequisites

import (
	"fmt"
	"os/exec"
	"strings"
)

// Tool is a client binary the teardown may run.
type Tool struct {
	// Name is the binary name to look for in PATH.
	Name string

	// Required indicates if this tool is mandatory.
	Required bool

	// Description explains what the tool is used for.
	Description string

	// InstallURL provides a URL for installation instructions.
	InstallURL string
}

// GitTools returns the tools needed to sync the deployment repository.
func GitTools() []Tool {
	return []Tool{
		{
			Name:        "git",
			Required:    true,
			Description: "Pulls before and commits after a teardown",
			InstallURL:  "https://git-scm.com/downloads",
		},
	}
}

// CheckResult contains the result of checking a single tool.
type CheckResult struct {
	Tool  Tool
	Found bool
	Path  string
}

// CheckResults contains the results of checking multiple tools.
type CheckResults struct {
	Results []CheckResult
	Missing []Tool
}

// HasErrors returns true if any required tools are missing.
func (r *CheckResults) HasErrors() bool {
	for _, tool := range r.Missing {
		if tool.Required {
			return true
		}
	}
	return false
}

// Error returns an error if any required tools are missing.
func (r *CheckResults) Error() error {
	var missing []string
	for _, tool := range r.Missing {
		if tool.Required {
			missing = append(missing, fmt.Sprintf("%s (%s)", tool.Name, tool.InstallURL))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
}

// LookPath finds a binary. exec.LookPath satisfies it.
type LookPath func(name string) (string, error)

// Check verifies that the specified tools are on PATH.
func Check(tools []Tool) *CheckResults {
	return CheckWith(exec.LookPath, tools)
}

// CheckWith verifies tools using lookPath.
func CheckWith(lookPath LookPath, tools []Tool) *CheckResults {
	results := &CheckResults{}
	for _, tool := range tools {
		result := CheckResult{Tool: tool}
		if path, err := lookPath(tool.Name); err == nil {
			result.Found = true
			result.Path = path
		} else {
			results.Missing = append(results.Missing, tool)
		}
		results.Results = append(results.Results, result)
	}
	return results
}
