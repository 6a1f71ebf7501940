package teardown

import (
	"context"
	"time"

	"github.com/63klabs/atlantis/internal/config"
	awsplatform "github.com/63klabs/atlantis/internal/platform/aws"
	"github.com/63klabs/atlantis/internal/util/keygen"
)

// Prompter asks the operator questions. Implementations return an error
// wrapping context.Canceled when the operator interrupts a prompt.
type Prompter interface {
	Confirm(ctx context.Context, question string, defaultYes bool) (bool, error)
	Input(ctx context.Context, label string) (string, error)
}

// Reporter prints progress to the operator and mirrors it to the run log.
type Reporter interface {
	Printf(format string, v ...any)
	Infof(format string, v ...any)
	Successf(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)
}

// Recorder receives run metrics.
type Recorder interface {
	GateFailed(gate string)
	ResourceDeleted(category string)
	ResourceSkipped(reason string)
	ResourceFailed(category string)
	StackDeleted(stack string, d time.Duration, err error)
}

// Context wraps all dependencies and state needed for a teardown phase.
type Context struct {
	context.Context
	Target   config.DeploymentTarget
	Cloud    awsplatform.CloudManager
	Prompt   Prompter
	Reporter Reporter
	Metrics  Recorder
	Outcome  *Outcome
	Timeouts *config.Timeouts
	Settings *config.Settings

	// Now returns the current time. Retention dates are compared against it.
	Now func() time.Time
	// NewCode returns a fresh confirmation code.
	NewCode func() (string, error)
}

// NewContext creates a teardown context with default clock, codes and timeouts.
func NewContext(
	ctx context.Context,
	target config.DeploymentTarget,
	cloud awsplatform.CloudManager,
	prompt Prompter,
	reporter Reporter,
) *Context {
	return &Context{
		Context:  ctx,
		Target:   target,
		Cloud:    cloud,
		Prompt:   prompt,
		Reporter: reporter,
		Metrics:  nopRecorder{},
		Outcome:  NewOutcome(),
		Timeouts: config.LoadTimeouts(),
		Settings: config.DefaultSettings(),
		Now:      time.Now,
		NewCode: func() (string, error) {
			return keygen.Code(CodeLength, keygen.UpperAlphanumeric)
		},
	}
}

func (c *Context) confirm(question string, defaultYes bool) (bool, error) {
	ok, err := c.Prompt.Confirm(c, question, defaultYes)
	return ok, cancelled(err)
}

func (c *Context) input(label string) (string, error) {
	v, err := c.Prompt.Input(c, label)
	return v, cancelled(err)
}

type nopRecorder struct{}

func (nopRecorder) GateFailed(string) {}
func (nopRecorder) ResourceDeleted(string) {}
func (nopRecorder) ResourceSkipped(string) {}
func (nopRecorder) ResourceFailed(string) {}
func (nopRecorder) StackDeleted(string, time.Duration, error) {}
