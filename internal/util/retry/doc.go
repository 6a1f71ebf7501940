// Package retry retries transient failures with exponential backoff.
//
// The AWS platform layer wraps its read calls (DescribeStacks, parameter and
// tag listings) in [WithExponentialBackoff] with [WithRetryIf] set to its
// throttling check, so rate-limit errors are retried with a doubling delay and
// everything else, not-found included, surfaces on the first attempt. Deletes
// are never retried.
package retry
