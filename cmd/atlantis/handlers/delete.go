package handlers

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/63klabs/atlantis/internal/config"
	"github.com/63klabs/atlantis/internal/gitops"
	"github.com/63klabs/atlantis/internal/metrics"
	awsplatform "github.com/63klabs/atlantis/internal/platform/aws"
	"github.com/63klabs/atlantis/internal/teardown"
	"github.com/63klabs/atlantis/internal/ui/console"
	"github.com/63klabs/atlantis/internal/ui/prompt"
	"github.com/63klabs/atlantis/internal/util/prerequisites"
)

// DeleteOptions carries the delete command's arguments and flags.
type DeleteOptions struct {
	InfraType string
	Prefix    string
	ProjectID string
	StageID   string

	Profile      string
	Region       string
	SettingsPath string
	SamconfigDir string
	LogDir       string
	MetricsFile  string
	NoGit        bool
}

// Target returns the deployment the options identify.
func (o DeleteOptions) Target() config.DeploymentTarget {
	return config.DeploymentTarget{
		Prefix:    o.Prefix,
		ProjectID: o.ProjectID,
		StageID:   o.StageID,
		InfraType: o.InfraType,
	}
}

// Reporter is a teardown reporter that owns a log file.
type Reporter interface {
	teardown.Reporter
	Close() error
}

var (
	_ Reporter          = (*console.Reporter)(nil)
	_ teardown.Prompter = (*prompt.Terminal)(nil)
	_ teardown.Recorder = (*metrics.Run)(nil)
	_ teardown.GitSync  = (*gitops.Repo)(nil)
)

// Factory function variables for delete - can be replaced in tests.
var (
	loadSettings = config.LoadSettings
	loadTimeouts = config.LoadTimeouts

	newCloudClient = func(ctx context.Context, settings *config.Settings, timeouts *config.Timeouts) (awsplatform.CloudManager, error) {
		session, err := awsplatform.NewSession(ctx, awsplatform.SessionOptions{
			Profile:     settings.AWS.Profile,
			Region:      settings.AWS.Region,
			EndpointURL: settings.AWS.EndpointURL,
		})
		if err != nil {
			return nil, err
		}
		return session.NewClient(timeouts), nil
	}

	newPrompter = func() teardown.Prompter {
		return prompt.NewTerminal()
	}

	newReporter = func(logDir string) (Reporter, error) {
		return console.Open(os.Stdout, logDir)
	}

	newGitSync = func() teardown.GitSync {
		return gitops.New("")
	}

	checkTools = prerequisites.Check

	newOrchestrator = teardown.NewOrchestrator
)

// Delete handles the delete command.
//
// It validates the target, loads settings with flag overrides, and runs the
// guarded teardown. SIGINT and SIGTERM cancel the run.
func Delete(ctx context.Context, opts DeleteOptions) error {
	target := opts.Target()
	if err := target.Validate(); err != nil {
		return err
	}

	settings, err := loadSettings(opts.SettingsPath)
	if err != nil {
		return err
	}
	applyOverrides(settings, opts)

	reporter, err := newReporter(settings.LogDir)
	if err != nil {
		return err
	}
	defer func() { _ = reporter.Close() }()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	timeouts := loadTimeouts()

	// Only pipeline teardown talks to AWS.
	var cloud awsplatform.CloudManager
	if target.InfraType == config.InfraPipeline {
		cloud, err = newCloudClient(ctx, settings, timeouts)
		if err != nil {
			reporter.Errorf("Failed to create AWS session: %v", err)
			return fmt.Errorf("failed to create AWS session: %w", err)
		}
	}

	run := metrics.NewRun(target.DeploymentID())

	tCtx := teardown.NewContext(ctx, target, cloud, newPrompter(), reporter)
	tCtx.Timeouts = timeouts
	tCtx.Settings = settings
	tCtx.Metrics = run

	var git teardown.GitSync
	if !opts.NoGit {
		if err := checkTools(prerequisites.GitTools()).Error(); err != nil {
			reporter.Warnf("Skipping git sync: %v", err)
		} else {
			git = newGitSync()
		}
	}

	runErr := newOrchestrator(git).Run(tCtx)

	if opts.MetricsFile != "" {
		if err := run.WriteTextfile(opts.MetricsFile); err != nil {
			reporter.Warnf("Could not write metrics: %v", err)
		}
	}

	if runErr != nil {
		if teardown.IsCancelled(runErr) {
			reporter.Errorf("Teardown of %s cancelled", target)
		} else {
			reporter.Errorf("Teardown of %s failed: %v", target, runErr)
		}
		return fmt.Errorf("delete failed: %w", runErr)
	}

	reporter.Successf("Teardown of %s complete", target)
	return nil
}

func applyOverrides(s *config.Settings, opts DeleteOptions) {
	if opts.Profile != "" {
		s.AWS.Profile = opts.Profile
	}
	if opts.Region != "" {
		s.AWS.Region = opts.Region
	}
	if opts.SamconfigDir != "" {
		s.SamconfigDir = opts.SamconfigDir
	}
	if opts.LogDir != "" {
		s.LogDir = opts.LogDir
	}
}
