package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/63klabs/atlantis/internal/util/naming"
	"github.com/63klabs/atlantis/internal/util/tags"
)

// Infrastructure types accepted on the command line.
const (
	InfraPipeline = "pipeline"
	InfraStorage  = "storage"
	InfraNetwork  = "network"
	InfraIAM      = "iam"
)

// InfraTypes lists the valid infrastructure types in display order.
var InfraTypes = []string{InfraPipeline, InfraStorage, InfraNetwork, InfraIAM}

// DeploymentTarget identifies one deployment. It is immutable for a run.
type DeploymentTarget struct {
	Prefix    string
	ProjectID string
	StageID   string
	InfraType string
}

// Validate checks that the target has the fields required for a teardown.
func (t DeploymentTarget) Validate() error {
	if err := ValidateInfraType(t.InfraType); err != nil {
		return err
	}
	if t.Prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if t.ProjectID == "" {
		return fmt.Errorf("project id is required")
	}
	if t.InfraType == InfraPipeline && t.StageID == "" {
		return fmt.Errorf("stage id is required for %s teardown", InfraPipeline)
	}
	return nil
}

// DeploymentID returns "{prefix}-{projectId}-{stageId}".
func (t DeploymentTarget) DeploymentID() string {
	return naming.DeploymentID(t.Prefix, t.ProjectID, t.StageID)
}

// PipelineStackName returns the name of the pipeline stack.
func (t DeploymentTarget) PipelineStackName() string {
	return naming.PipelineStack(t.Prefix, t.ProjectID, t.StageID)
}

// ApplicationStackName returns the name of the application stack.
func (t DeploymentTarget) ApplicationStackName() string {
	return naming.ApplicationStack(t.Prefix, t.ProjectID, t.StageID)
}

// ParameterNamespaceSuffix returns "/{prefix}-{projectId}-{stageId}/".
func (t DeploymentTarget) ParameterNamespaceSuffix() string {
	return naming.ParameterNamespaceSuffix(t.Prefix, t.ProjectID, t.StageID)
}

// DeploymentTagValue returns the value of the deployment id tag for this target.
func (t DeploymentTarget) DeploymentTagValue() string {
	return tags.DeploymentIDValue(t.Prefix, t.ProjectID, t.StageID)
}

// ParamFilePath returns the samconfig file path under dir.
func (t DeploymentTarget) ParamFilePath(dir string) string {
	return naming.SamconfigPath(dir, t.Prefix, t.ProjectID, t.InfraType)
}

// String renders the target for log lines.
func (t DeploymentTarget) String() string {
	return fmt.Sprintf("%s %s", t.InfraType, t.DeploymentID())
}

// ValidateInfraType reports whether s names a known infrastructure type.
func ValidateInfraType(s string) error {
	if slices.Contains(InfraTypes, s) {
		return nil
	}
	return fmt.Errorf("invalid infra type %q: must be one of %s", s, strings.Join(InfraTypes, ", "))
}
