// Package tags provides typed access to the stack and resource tags used by
// atlantis deployments.
//
// Tags are carried as plain map[string]string values. Every key the teardown
// flow reads has an explicit accessor here so callers never index the map
// with ad hoc strings.
package tags
