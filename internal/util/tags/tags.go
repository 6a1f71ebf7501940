package tags

import "strings"

// Well-known tag and parameter keys.
const (
	// KeyApplicationDeploymentID is set on every resource a deployment creates.
	// Its value is {prefix}-{projectId}[-{stageId}].
	KeyApplicationDeploymentID = "atlantis:ApplicationDeploymentId"

	// KeyDeleteOnOrAfter holds the earliest date a stack may be deleted.
	KeyDeleteOnOrAfter = "DeleteOnOrAfter"

	// ParamParameterStoreHierarchy is the application stack parameter naming
	// the parameter-store namespace the deployment writes to.
	ParamParameterStoreHierarchy = "ParameterStoreHierarchy"
)

// Set is a read-only view over a tag or parameter map.
type Set map[string]string

// FromPairs builds a Set from key/value pointer pairs as returned by the AWS SDK.
// Pairs with a nil key are dropped; a nil value is stored as "".
func FromPairs[T any](items []T, kv func(T) (*string, *string)) Set {
	s := make(Set, len(items))
	for _, item := range items {
		k, v := kv(item)
		if k == nil {
			continue
		}
		val := ""
		if v != nil {
			val = *v
		}
		s[*k] = val
	}
	return s
}

// Get returns the value for key and whether it was present.
func (s Set) Get(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s[key]
	return v, ok
}

// DeleteOnOrAfter returns the raw retention tag value.
func (s Set) DeleteOnOrAfter() (string, bool) {
	v, ok := s.Get(KeyDeleteOnOrAfter)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// ParameterStoreHierarchy returns the declared parameter-store hierarchy.
func (s Set) ParameterStoreHierarchy() (string, bool) {
	return s.Get(ParamParameterStoreHierarchy)
}

// ApplicationDeploymentID returns the deployment id tag value.
func (s Set) ApplicationDeploymentID() (string, bool) {
	return s.Get(KeyApplicationDeploymentID)
}

// DeploymentIDValue builds the value of the atlantis:ApplicationDeploymentId tag.
// The stage suffix is only appended when stageID is non-empty.
func DeploymentIDValue(prefix, projectID, stageID string) string {
	v := prefix + "-" + projectID
	if stageID != "" {
		v += "-" + stageID
	}
	return v
}
