package teardown

import (
	"context"
	"fmt"

	"github.com/63klabs/atlantis/internal/config"
)

// GitSync keeps the local repository in step with the remote.
type GitSync interface {
	Pull(ctx context.Context) error
	CommitAndPush(ctx context.Context, message string) error
}

// Orchestrator runs the gates and then the destructive phases.
type Orchestrator struct {
	Gates  []Gate
	Phases []Phase
	// Git is optional. When nil the pull prompt and audit commit are skipped.
	Git GitSync
}

// NewOrchestrator creates an orchestrator with the default gates and phases.
func NewOrchestrator(git GitSync) *Orchestrator {
	return &Orchestrator{
		Gates:  DefaultGates(),
		Phases: DefaultPhases(),
		Git:    git,
	}
}

// CommitMessage is the audit message recorded after a teardown.
func CommitMessage(t config.DeploymentTarget) string {
	return fmt.Sprintf("Destroyed %s %s", t.InfraType, t.DeploymentID())
}

// Run tears down the deployment in ctx.Target.
func (o *Orchestrator) Run(ctx *Context) error {
	if ctx.Target.InfraType != config.InfraPipeline {
		ctx.Reporter.Errorf("Teardown of %s infrastructure is not implemented.", ctx.Target.InfraType)
		ctx.Reporter.Infof("Storage, network and iam stacks can be deleted from the CloudFormation console " +
			"once their buckets have been emptied.")
		return fmt.Errorf("%w for infra type %s", ErrNotImplemented, ctx.Target.InfraType)
	}

	if err := o.pull(ctx); err != nil {
		return err
	}

	ctx.Reporter.Infof("Checking %s before deletion", ctx.Target)
	if err := RunGates(ctx, o.Gates); err != nil {
		return err
	}

	defer ctx.Outcome.Report(ctx.Reporter)

	if err := RunPhases(ctx, o.Phases); err != nil {
		return err
	}

	o.commit(ctx)
	return nil
}

func (o *Orchestrator) pull(ctx *Context) error {
	if o.Git == nil {
		return nil
	}
	ok, err := ctx.confirm("Perform git pull before proceeding?", false)
	if err != nil || !ok {
		return err
	}

	if err := o.Git.Pull(ctx); err != nil {
		if IsCancelled(err) {
			return cancelled(err)
		}
		ctx.Reporter.Errorf("Git pull failed: %v", err)
		cont, err := ctx.confirm("Continue despite git pull failure?", false)
		if err != nil {
			return err
		}
		if !cont {
			return fmt.Errorf("%w: git pull failed", ErrCancelled)
		}
		return nil
	}
	ctx.Reporter.Successf("Git pull completed successfully")
	return nil
}

func (o *Orchestrator) commit(ctx *Context) {
	if o.Git == nil {
		return
	}
	msg := CommitMessage(ctx.Target)
	if err := o.Git.CommitAndPush(ctx, msg); err != nil {
		ctx.Reporter.Errorf("Git operation failed: %v", err)
		return
	}
	ctx.Reporter.Successf("Git commit and push completed: %s", msg)
}
