package naming

import (
	"fmt"
	"path/filepath"
)

// Naming functions for deployment resources.
// Every stack and file derived from a deployment goes through these so the
// gates, pruners and the CLI agree on the same names.

func DeploymentID(prefix, projectID, stageID string) string {
	return fmt.Sprintf("%s-%s-%s", prefix, projectID, stageID)
}

func PipelineStack(prefix, projectID, stageID string) string {
	return fmt.Sprintf("%s-pipeline", DeploymentID(prefix, projectID, stageID))
}

func ApplicationStack(prefix, projectID, stageID string) string {
	return fmt.Sprintf("%s-application", DeploymentID(prefix, projectID, stageID))
}

// ParameterNamespaceSuffix is the trailing path segment every parameter of a
// deployment lives under, with leading and trailing slashes.
func ParameterNamespaceSuffix(prefix, projectID, stageID string) string {
	return fmt.Sprintf("/%s/", DeploymentID(prefix, projectID, stageID))
}

func SamconfigFileName(prefix, projectID, infraType string) string {
	return fmt.Sprintf("samconfig-%s-%s-%s.toml", prefix, projectID, infraType)
}

// SamconfigPath returns {baseDir}/{prefix}/{projectID}/samconfig-{prefix}-{projectID}-{infraType}.toml.
func SamconfigPath(baseDir, prefix, projectID, infraType string) string {
	return filepath.Join(baseDir, prefix, projectID, SamconfigFileName(prefix, projectID, infraType))
}
