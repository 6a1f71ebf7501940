package teardown

import (
	"context"
	"errors"
	"fmt"
	"time"

	awsplatform "github.com/63klabs/atlantis/internal/platform/aws"
)

type stackDeletion struct {
	role string
}

func (p *stackDeletion) Name() string {
	return p.role + " stack"
}

func (p *stackDeletion) Run(ctx *Context) error {
	return DeleteStack(ctx, stackNameFor(ctx, p.role))
}

// DeleteStack requests deletion of a stack and polls until it is gone.
// A stack that no longer exists counts as deleted.
func DeleteStack(ctx *Context, name string) (err error) {
	start := time.Now()
	defer func() {
		if !IsCancelled(err) {
			ctx.Metrics.StackDeleted(name, time.Since(start), err)
		}
	}()

	ctx.Reporter.Infof("Deleting stack: %s", name)
	if err := ctx.Cloud.DeleteStack(ctx, name); err != nil {
		switch {
		case IsCancelled(err):
			return cancelled(err)
		case errors.Is(err, awsplatform.ErrNotFound):
			ctx.Reporter.Infof("Stack %s does not exist, nothing to delete", name)
			return nil
		default:
			return &StackDeleteError{Stack: name, Err: err}
		}
	}

	interval := ctx.Timeouts.StackPollInterval
	attempts := ctx.Timeouts.StackPollAttempts
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := sleep(ctx, interval); err != nil {
			return cancelled(err)
		}

		stack, err := ctx.Cloud.DescribeStack(ctx, name)
		if err != nil {
			switch {
			case IsCancelled(err):
				return cancelled(err)
			case errors.Is(err, awsplatform.ErrNotFound):
				ctx.Reporter.Successf("Stack %s deleted successfully", name)
				return nil
			default:
				return &StackDeleteError{Stack: name, Err: err}
			}
		}

		ctx.Reporter.Printf("  %s: %s (%d/%d)", name, stack.Status, attempt, attempts)

		switch stack.Status {
		case awsplatform.StatusDeleteComplete:
			ctx.Reporter.Successf("Stack %s deleted successfully", name)
			return nil
		case awsplatform.StatusDeleteFailed, awsplatform.StatusRollbackFailed, awsplatform.StatusUpdateRollbackFailed:
			return &StackDeleteError{Stack: name, Status: stack.Status, Reason: stack.StatusReason}
		}
	}

	return fmt.Errorf("%w: %s did not finish within %v", ErrStackDeleteTimeout, name, ctx.Timeouts.StackDeleteBudget())
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
