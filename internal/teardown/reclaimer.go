package teardown

import (
	"errors"
	"fmt"

	awsplatform "github.com/63klabs/atlantis/internal/platform/aws"
	"github.com/63klabs/atlantis/internal/util/tags"
)

type tagReclamation struct{}

func (p *tagReclamation) Name() string {
	return "tagged resources"
}

func (p *tagReclamation) Run(ctx *Context) error {
	key, value := tags.KeyApplicationDeploymentID, ctx.Target.DeploymentTagValue()

	arns, err := ctx.Cloud.FindTaggedResources(ctx, key, value, ctx.Settings.Teardown.TagResourceTypes)
	if err != nil {
		if IsCancelled(err) {
			return cancelled(err)
		}
		ctx.Reporter.Errorf("Error searching for resources tagged %s=%s: %v", key, value, err)
		return nil
	}
	if len(arns) == 0 {
		ctx.Reporter.Infof("No resources tagged %s=%s", key, value)
		return nil
	}

	resources := make([]TaggedResource, 0, len(arns))
	ctx.Reporter.Infof("Found %d resources tagged %s=%s:", len(arns), key, value)
	for _, a := range arns {
		r := ClassifyResource(a)
		resources = append(resources, r)
		ctx.Reporter.Printf("  - [%s] %s", r.Category, r.ARN)
	}

	ctx.Reporter.Warnf("Some of these resources may hold data subject to a retention policy. " +
		"Make sure any required backups exist before deleting them.")

	ok, err := ctx.confirm("Proceed to delete the resources listed above? Each one is confirmed individually.", true)
	if err != nil {
		return err
	}
	if !ok {
		for _, r := range resources {
			ctx.Outcome.Skip(r.ARN, ReasonUserDeclined)
			ctx.Metrics.ResourceSkipped(string(ReasonUserDeclined))
		}
		ctx.Reporter.Warnf("Skipped deletion of %d tagged resources", len(resources))
		return nil
	}

	for _, r := range resources {
		if err := reclaim(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

// reclaim confirms and deletes one resource. Only cancellation is returned;
// every other failure is reported and the loop moves on.
func reclaim(ctx *Context, r TaggedResource) error {
	ok, err := ctx.confirm(fmt.Sprintf("Delete %s %s?", r.Category, r.ARN), false)
	if err != nil {
		return err
	}
	if !ok {
		ctx.Outcome.Skip(r.ARN, ReasonUserDeclined)
		ctx.Metrics.ResourceSkipped(string(ReasonUserDeclined))
		ctx.Reporter.Infof("Skipped %s", r.ARN)
		return nil
	}

	challenge, err := NewChallenge(r.ARN, ctx.NewCode)
	if err != nil {
		ctx.Reporter.Errorf("Cannot confirm %s: %v", r.ARN, err)
		ctx.Metrics.ResourceFailed(string(r.Category))
		return nil
	}
	ctx.Reporter.Warnf("Confirmation code: %s", challenge.Display())
	entered, err := ctx.input("Type the confirmation code without spaces")
	if err != nil {
		return err
	}
	if !challenge.Verify(entered) {
		ctx.Outcome.Skip(r.ARN, ReasonCodeMismatch)
		ctx.Metrics.ResourceSkipped(string(ReasonCodeMismatch))
		ctx.Reporter.Warnf("Confirmation code did not match, skipping %s", r.ARN)
		return nil
	}

	if r.Category == CategoryUnsupported {
		ctx.Outcome.NotHandled(r.ARN)
		ctx.Metrics.ResourceSkipped(string(ReasonUnsupportedType))
		ctx.Reporter.Warnf("No deletion handler for %s, leaving it in place", r.ARN)
		return nil
	}

	err = deleteResource(ctx, r)
	switch {
	case err == nil:
		ctx.Reporter.Successf("Deleted %s %s", r.Category, r.Name)
	case IsCancelled(err):
		return cancelled(err)
	case errors.Is(err, awsplatform.ErrNotFound):
		ctx.Reporter.Infof("%s %s no longer exists", r.Category, r.Name)
	default:
		ctx.Reporter.Errorf("Error deleting %s: %v", r.ARN, err)
		ctx.Metrics.ResourceFailed(string(r.Category))
		return nil
	}
	ctx.Outcome.Deleted(r.ARN)
	ctx.Metrics.ResourceDeleted(string(r.Category))
	return nil
}

func deleteResource(ctx *Context, r TaggedResource) error {
	switch r.Category {
	case CategoryBucket:
		n, err := ctx.Cloud.EmptyBucket(ctx, r.Name)
		if err != nil {
			return err
		}
		ctx.Reporter.Printf("  removed %d object versions from %s", n, r.Name)
		return ctx.Cloud.DeleteBucket(ctx, r.Name)
	case CategoryTable:
		return ctx.Cloud.DeleteTable(ctx, r.Name)
	case CategoryLogGroup:
		return ctx.Cloud.DeleteLogGroup(ctx, r.Name)
	case CategoryParameter:
		return ctx.Cloud.DeleteParameter(ctx, r.Name)
	default:
		return fmt.Errorf("unsupported resource category %q", r.Category)
	}
}
