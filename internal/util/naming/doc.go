// Package naming provides consistent naming functions for atlantis deployments.
//
// Stack names follow the pattern {prefix}-{projectId}-{stageId}-{role} and the
// parameter-store namespace is /{prefix}-{projectId}-{stageId}/. The local
// samconfig file lives under {dir}/{prefix}/{projectId}/.
package naming
