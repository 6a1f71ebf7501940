package commands

import (
	"github.com/spf13/cobra"

	"github.com/63klabs/atlantis/cmd/atlantis/handlers"
	"github.com/63klabs/atlantis/internal/config"
)

// Delete returns the delete command.
func Delete() *cobra.Command {
	var opts handlers.DeleteOptions

	cmd := &cobra.Command{
		Use:   "delete <infra_type> <prefix> <project_id> [stage_id]",
		Short: "Delete a deployment and the resources tagged with it",
		Long: `Delete removes a deployment after a series of safety checks.

Before anything is deleted you must:
  - Enter the ARN of the pipeline stack and of the application stack
  - Have a DeleteOnOrAfter tag on the pipeline stack that is in the past
  - Have termination protection disabled on both stacks
  - Re-type the prefix, project id and stage id

The teardown then:
  - Deletes SSM parameters under the application's parameter namespace
  - Deletes the application stack, then the pipeline stack
  - Offers each resource tagged with the deployment id for deletion,
    each behind its own confirmation code
  - Removes the stage from the local samconfig file

Only the pipeline infra type is supported. storage, network and iam
deployments must be removed by hand.

Example:
  atlantis delete pipeline acme web test --profile prod

WARNING: This operation is irreversible.`,
		Args: cobra.RangeArgs(3, 4),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return config.InfraTypes, cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		PreRunE: func(_ *cobra.Command, args []string) error {
			return config.ValidateInfraType(args[0])
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.InfraType = args[0]
			opts.Prefix = args[1]
			opts.ProjectID = args[2]
			if len(args) == 4 {
				opts.StageID = args[3]
			}
			return handlers.Delete(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Profile, "profile", "", "AWS shared config profile")
	cmd.Flags().StringVar(&opts.Region, "region", "", "AWS region")
	cmd.Flags().StringVar(&opts.SettingsPath, "settings", config.DefaultSettingsPath, "Path to the settings file")
	cmd.Flags().StringVar(&opts.SamconfigDir, "samconfig-dir", "", "Directory holding samconfig files (overrides settings)")
	cmd.Flags().StringVar(&opts.LogDir, "log-dir", "", "Directory for the run log (overrides settings)")
	cmd.Flags().StringVar(&opts.MetricsFile, "metrics-file", "", "Write run metrics to this file in textfile collector format")
	cmd.Flags().BoolVar(&opts.NoGit, "no-git", false, "Skip the git pull prompt and the audit commit")

	return cmd
}
