package teardown

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	awsplatform "github.com/63klabs/atlantis/internal/platform/aws"
)

type parameterPruning struct{}

func (p *parameterPruning) Name() string {
	return "parameter store"
}

// ResolveParameterPrefix picks the namespace to prune. A declared hierarchy
// is used only when it ends with the deployment's own suffix.
func ResolveParameterPrefix(hierarchy, suffix string) string {
	if hierarchy != "" && strings.HasSuffix(hierarchy, suffix) {
		return hierarchy
	}
	return suffix
}

func (p *parameterPruning) Run(ctx *Context) error {
	suffix := ctx.Target.ParameterNamespaceSuffix()
	hierarchy := ""

	appStack := ctx.Target.ApplicationStackName()
	stack, err := ctx.Cloud.DescribeStack(ctx, appStack)
	switch {
	case err == nil:
		hierarchy, _ = stack.Parameters.ParameterStoreHierarchy()
	case IsCancelled(err):
		return cancelled(err)
	case errors.Is(err, awsplatform.ErrNotFound):
		// no application stack, fall back to the computed suffix
	default:
		ctx.Reporter.Warnf("Could not read %s parameters, using %s: %v", appStack, suffix, err)
	}
	prefix := ResolveParameterPrefix(hierarchy, suffix)

	names, err := ctx.Cloud.ListParametersByPrefix(ctx, prefix)
	if err != nil {
		if IsCancelled(err) {
			return cancelled(err)
		}
		ctx.Reporter.Errorf("Error listing SSM parameters under %s: %v", prefix, err)
		ctx.Metrics.ResourceFailed(string(CategoryParameter))
		return nil
	}
	if len(names) == 0 {
		ctx.Reporter.Infof("No SSM parameters found under %s", prefix)
		return nil
	}

	ctx.Reporter.Infof("Found %d SSM parameters under %s:", len(names), prefix)
	for _, n := range names {
		ctx.Reporter.Printf("  - %s", n)
	}

	ok, err := ctx.confirm(fmt.Sprintf("Delete these %d SSM parameters?", len(names)), true)
	if err != nil {
		return err
	}
	if !ok {
		for _, n := range names {
			ctx.Outcome.Skip(n, ReasonUserDeclined)
			ctx.Metrics.ResourceSkipped(string(ReasonUserDeclined))
		}
		ctx.Reporter.Warnf("Skipped deletion of %d SSM parameters", len(names))
		return nil
	}

	deleted := 0
	for batch := range slices.Chunk(names, awsplatform.MaxParameterBatch) {
		invalid, err := ctx.Cloud.DeleteParameters(ctx, batch)
		if err != nil {
			if IsCancelled(err) {
				return cancelled(err)
			}
			ctx.Reporter.Errorf("Error deleting SSM parameters %s: %v", strings.Join(batch, ", "), err)
			ctx.Metrics.ResourceFailed(string(CategoryParameter))
			continue
		}
		for _, n := range batch {
			if slices.Contains(invalid, n) {
				continue
			}
			deleted++
			ctx.Outcome.Deleted(n)
			ctx.Metrics.ResourceDeleted(string(CategoryParameter))
		}
	}

	ctx.Reporter.Successf("Deleted %d of %d SSM parameters", deleted, len(names))
	return nil
}
