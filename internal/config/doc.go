// Package config defines the run configuration for a teardown.
//
// A [DeploymentTarget] identifies the deployment being removed and derives
// every stack name, tag value and file path from its four fields. [Timeouts]
// come from environment variables and [Settings] from an optional YAML file;
// command-line flags override settings.
package config
