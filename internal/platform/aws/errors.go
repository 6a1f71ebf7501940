package aws

import (
	"errors"
	"fmt"

	cwltypes "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/aws/smithy-go"
)

// ErrNotFound is returned when the addressed resource does not exist.
var ErrNotFound = errors.New("resource not found")

// notFoundCodes are the API error codes meaning the resource is absent.
var notFoundCodes = map[string]bool{
	"NotFound":                  true,
	"NoSuchBucket":              true,
	"ResourceNotFoundException": true,
	"ParameterNotFound":         true,
	"StackNotFoundException":    true,
}

var throttlingCodes = map[string]bool{
	"Throttling":                             true,
	"ThrottlingException":                    true,
	"ThrottledException":                     true,
	"TooManyRequestsException":               true,
	"RequestLimitExceeded":                   true,
	"ProvisionedThroughputExceededException": true,
	"SlowDown":                               true,
}

// isNotFoundError checks if the error reports a missing resource.
func isNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNotFound) {
		return true
	}

	// Check for typed service errors first
	var nsb *s3types.NoSuchBucket
	if errors.As(err, &nsb) {
		return true
	}
	var ddbNF *ddbtypes.ResourceNotFoundException
	if errors.As(err, &ddbNF) {
		return true
	}
	var cwlNF *cwltypes.ResourceNotFoundException
	if errors.As(err, &cwlNF) {
		return true
	}
	var pnf *ssmtypes.ParameterNotFound
	if errors.As(err, &pnf) {
		return true
	}

	// Fall back to API error code checking for emulators that
	// may not return the exact SDK error types
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return notFoundCodes[apiErr.ErrorCode()]
	}

	return false
}

// isMissingStackError classifies DescribeStacks failures. CloudFormation
// reports an unknown stack name as ValidationError.
func isMissingStackError(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ValidationError" {
		return true
	}
	return isNotFoundError(err)
}

// IsThrottling reports whether err is a rate-limit response.
func IsThrottling(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return throttlingCodes[apiErr.ErrorCode()]
	}
	return false
}

// notFound wraps err so that errors.Is(err, ErrNotFound) holds.
func notFound(kind, name string, err error) error {
	return fmt.Errorf("%s %s: %w: %w", kind, name, ErrNotFound, err)
}
