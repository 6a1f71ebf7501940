package teardown

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/63klabs/atlantis/internal/config"
	awsplatform "github.com/63klabs/atlantis/internal/platform/aws"
)

const (
	testPipelineARN    = "arn:aws:cloudformation:us-east-1:123456789012:stack/acme-web-test-pipeline/11111111-aaaa"
	testApplicationARN = "arn:aws:cloudformation:us-east-1:123456789012:stack/acme-web-test-application/22222222-bbbb"
	testCode           = "AB12C"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// scriptedPrompt answers prompts from queues in order.
// When a queue runs dry it returns err if set, otherwise it fails the test.
type scriptedPrompt struct {
	t         *testing.T
	confirms  []bool
	inputs    []string
	err       error
	questions []string
	defaults  []bool
}

func (p *scriptedPrompt) Confirm(_ context.Context, question string, defaultYes bool) (bool, error) {
	p.questions = append(p.questions, question)
	p.defaults = append(p.defaults, defaultYes)
	if len(p.confirms) == 0 {
		if p.err != nil {
			return false, p.err
		}
		p.t.Fatalf("unexpected confirm: %q", question)
	}
	v := p.confirms[0]
	p.confirms = p.confirms[1:]
	return v, nil
}

func (p *scriptedPrompt) Input(_ context.Context, label string) (string, error) {
	p.questions = append(p.questions, label)
	if len(p.inputs) == 0 {
		if p.err != nil {
			return "", p.err
		}
		p.t.Fatalf("unexpected input: %q", label)
	}
	v := p.inputs[0]
	p.inputs = p.inputs[1:]
	return v, nil
}

// recordingReporter keeps every line with its level.
type recordingReporter struct {
	mu    sync.Mutex
	lines []string
}

func (r *recordingReporter) add(level, format string, v ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, level+" "+fmt.Sprintf(format, v...))
}

func (r *recordingReporter) Printf(format string, v ...any) { r.add("PRINT", format, v...) }
func (r *recordingReporter) Infof(format string, v ...any) { r.add("INFO", format, v...) }
func (r *recordingReporter) Successf(format string, v ...any) { r.add("OK", format, v...) }
func (r *recordingReporter) Warnf(format string, v ...any) { r.add("WARN", format, v...) }
func (r *recordingReporter) Errorf(format string, v ...any) { r.add("ERROR", format, v...) }

func (r *recordingReporter) contains(substr string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

// countingRecorder tallies metrics calls.
type countingRecorder struct {
	gateFailures map[string]int
	deleted      map[string]int
	skipped      map[string]int
	failed       map[string]int
	stacks       []string
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{
		gateFailures: map[string]int{},
		deleted:      map[string]int{},
		skipped:      map[string]int{},
		failed:       map[string]int{},
	}
}

func (c *countingRecorder) GateFailed(gate string) { c.gateFailures[gate]++ }
func (c *countingRecorder) ResourceDeleted(category string) { c.deleted[category]++ }
func (c *countingRecorder) ResourceSkipped(reason string) { c.skipped[reason]++ }
func (c *countingRecorder) ResourceFailed(category string) { c.failed[category]++ }
func (c *countingRecorder) StackDeleted(stack string, _ time.Duration, _ error) {
	c.stacks = append(c.stacks, stack)
}

func testTarget() config.DeploymentTarget {
	return config.DeploymentTarget{Prefix: "acme", ProjectID: "web", StageID: "test", InfraType: config.InfraPipeline}
}

type testEnv struct {
	ctx      *Context
	prompt   *scriptedPrompt
	reporter *recordingReporter
	metrics  *countingRecorder
}

func newTestEnv(t *testing.T, cloud awsplatform.CloudManager) *testEnv {
	t.Helper()
	prompt := &scriptedPrompt{t: t}
	reporter := &recordingReporter{}
	metrics := newCountingRecorder()

	ctx := NewContext(context.Background(), testTarget(), cloud, prompt, reporter)
	ctx.Metrics = metrics
	ctx.Timeouts = &config.Timeouts{
		StackPollInterval: time.Millisecond,
		StackPollAttempts: 5,
		RetryMaxAttempts:  1,
		RetryInitialDelay: time.Millisecond,
	}
	ctx.Settings.SamconfigDir = t.TempDir()
	ctx.Now = func() time.Time { return testNow }
	ctx.NewCode = func() (string, error) { return testCode, nil }

	return &testEnv{ctx: ctx, prompt: prompt, reporter: reporter, metrics: metrics}
}

// liveStacks returns a DescribeStack func serving healthy, deletable stacks.
func liveStacks(mutate func(*awsplatform.Stack)) func(context.Context, string) (*awsplatform.Stack, error) {
	return func(_ context.Context, name string) (*awsplatform.Stack, error) {
		s := &awsplatform.Stack{Name: name, Status: "CREATE_COMPLETE", Tags: map[string]string{"DeleteOnOrAfter": "2025-01-01"}}
		switch name {
		case "acme-web-test-pipeline":
			s.StackID = testPipelineARN
		case "acme-web-test-application":
			s.StackID = testApplicationARN
		default:
			return nil, fmt.Errorf("stack %s: %w", name, awsplatform.ErrNotFound)
		}
		if mutate != nil {
			mutate(s)
		}
		return s, nil
	}
}
