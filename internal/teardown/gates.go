package teardown

import (
	"errors"
	"fmt"
	"time"

	awsplatform "github.com/63klabs/atlantis/internal/platform/aws"
)

// GateResult is the verdict of one gate.
type GateResult struct {
	Passed bool
	Reason string
}

func pass(format string, v ...any) GateResult {
	return GateResult{Passed: true, Reason: fmt.Sprintf(format, v...)}
}

func fail(format string, v ...any) GateResult {
	return GateResult{Reason: fmt.Sprintf(format, v...)}
}

// Gate is a read-only check that must pass before anything is deleted.
// Check returns an error only when the run must stop for another reason,
// such as an interrupt.
type Gate interface {
	Name() string
	Check(ctx *Context) (GateResult, error)
}

// Stack roles within a deployment.
const (
	rolePipeline    = "pipeline"
	roleApplication = "application"
)

func stackNameFor(ctx *Context, role string) string {
	if role == roleApplication {
		return ctx.Target.ApplicationStackName()
	}
	return ctx.Target.PipelineStackName()
}

// DefaultGates returns the gates in evaluation order.
func DefaultGates() []Gate {
	return []Gate{
		&stackARNGate{role: rolePipeline},
		&stackARNGate{role: roleApplication},
		&retentionGate{},
		&terminationProtectionGate{role: rolePipeline},
		&terminationProtectionGate{role: roleApplication},
		&finalConfirmationGate{},
	}
}

// RunGates evaluates gates in order and stops at the first failure.
func RunGates(ctx *Context, gates []Gate) error {
	for i, gate := range gates {
		name := fmt.Sprintf("%s (%d/%d)", gate.Name(), i+1, len(gates))

		result, err := gate.Check(ctx)
		if err != nil {
			return fmt.Errorf("%s gate: %w", gate.Name(), cancelled(err))
		}
		if !result.Passed {
			ctx.Reporter.Errorf("[%s] failed: %s", name, result.Reason)
			ctx.Metrics.GateFailed(gate.Name())
			return &GateError{Gate: gate.Name(), Reason: result.Reason}
		}
		ctx.Reporter.Successf("[%s] passed: %s", name, result.Reason)
	}
	return nil
}

// describe reads a stack for a gate. API failures become a failed result;
// only cancellation is returned as an error.
func describe(ctx *Context, name string) (*awsplatform.Stack, *GateResult, error) {
	stack, err := ctx.Cloud.DescribeStack(ctx, name)
	if err == nil {
		return stack, nil, nil
	}
	if IsCancelled(err) {
		return nil, nil, cancelled(err)
	}
	if errors.Is(err, awsplatform.ErrNotFound) {
		r := fail("stack %s does not exist", name)
		return nil, &r, nil
	}
	r := fail("could not read stack %s: %v", name, err)
	return nil, &r, nil
}

type stackARNGate struct {
	role string
}

func (g *stackARNGate) Name() string {
	return g.role + " stack ARN"
}

func (g *stackARNGate) Check(ctx *Context) (GateResult, error) {
	expected := stackNameFor(ctx, g.role)

	input, err := ctx.input(fmt.Sprintf("Enter the ARN of the %s stack (%s)", g.role, expected))
	if err != nil {
		return GateResult{}, err
	}

	ref, err := ParseStackARN(input)
	if err != nil {
		return fail("%v", err), nil
	}
	if ref.Name != expected {
		return fail("stack name mismatch: expected %s, got %s", expected, ref.Name), nil
	}

	stack, failed, err := describe(ctx, expected)
	if err != nil || failed != nil {
		return deref(failed), err
	}
	if ref.ID != "" && stack.StackID != ref.ID {
		return fail("ARN does not identify the live %s stack (live id %s)", expected, stack.StackID), nil
	}
	return pass("%s matches %s", ref.ARN, expected), nil
}

type retentionGate struct{}

func (g *retentionGate) Name() string {
	return "retention tag"
}

func (g *retentionGate) Check(ctx *Context) (GateResult, error) {
	name := ctx.Target.PipelineStackName()
	stack, failed, err := describe(ctx, name)
	if err != nil || failed != nil {
		return deref(failed), err
	}

	value, ok := stack.Tags.DeleteOnOrAfter()
	if !ok {
		return fail("stack %s does not have a DeleteOnOrAfter tag", name), nil
	}

	now := ctx.Now().UTC()
	elapsed, date, err := RetentionElapsed(value, now)
	if err != nil {
		return fail("stack %s: %v", name, err), nil
	}
	if !elapsed {
		return fail("current time %s is before DeleteOnOrAfter %s", now.Format(time.RFC3339), date.Format(time.RFC3339)), nil
	}
	return pass("DeleteOnOrAfter %s has passed", value), nil
}

type terminationProtectionGate struct {
	role string
}

func (g *terminationProtectionGate) Name() string {
	return g.role + " termination protection"
}

func (g *terminationProtectionGate) Check(ctx *Context) (GateResult, error) {
	name := stackNameFor(ctx, g.role)
	stack, failed, err := describe(ctx, name)
	if err != nil || failed != nil {
		return deref(failed), err
	}
	if stack.TerminationProtection {
		return fail("termination protection is enabled on %s; disable it before deleting", name), nil
	}
	return pass("termination protection is disabled on %s", name), nil
}

type finalConfirmationGate struct{}

func (g *finalConfirmationGate) Name() string {
	return "final confirmation"
}

func (g *finalConfirmationGate) Check(ctx *Context) (GateResult, error) {
	ctx.Reporter.Warnf("For final confirmation, enter the Prefix, ProjectId and StageId of the pipeline and application to delete.")

	want := []struct{ label, value string }{
		{"Prefix", ctx.Target.Prefix},
		{"ProjectId", ctx.Target.ProjectID},
		{"StageId", ctx.Target.StageID},
	}
	matched := true
	for _, w := range want {
		got, err := ctx.input(w.label)
		if err != nil {
			return GateResult{}, err
		}
		if got != w.value {
			matched = false
		}
	}
	if !matched {
		return fail("confirmation values do not match %s", ctx.Target.DeploymentID()), nil
	}
	return pass("operator confirmed %s", ctx.Target.DeploymentID()), nil
}

func deref(r *GateResult) GateResult {
	if r == nil {
		return GateResult{}
	}
	return *r
}
