package aws

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

func apiError(code string) error {
	return &smithy.GenericAPIError{Code: code, Message: code + " message"}
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"plain error", errors.New("boom"), false},
		{"sentinel", fmt.Errorf("wrapped: %w", ErrNotFound), true},
		{"typed s3", &s3types.NoSuchBucket{Message: aws.String("gone")}, true},
		{"typed dynamodb", &ddbtypes.ResourceNotFoundException{Message: aws.String("gone")}, true},
		{"typed ssm", &ssmtypes.ParameterNotFound{Message: aws.String("gone")}, true},
		{"code fallback", apiError("ResourceNotFoundException"), true},
		{"wrapped code", fmt.Errorf("call: %w", apiError("NoSuchBucket")), true},
		{"access denied", apiError("AccessDenied"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isNotFoundError(tt.err))
		})
	}
}

func TestIsMissingStackError(t *testing.T) {
	t.Parallel()
	assert.True(t, isMissingStackError(apiError("ValidationError")))
	assert.True(t, isMissingStackError(apiError("StackNotFoundException")))
	assert.False(t, isMissingStackError(apiError("AccessDenied")))
}

func TestIsThrottling(t *testing.T) {
	t.Parallel()
	assert.True(t, IsThrottling(apiError("Throttling")))
	assert.True(t, IsThrottling(fmt.Errorf("call: %w", apiError("TooManyRequestsException"))))
	assert.False(t, IsThrottling(apiError("ValidationError")))
	assert.False(t, IsThrottling(errors.New("Throttling")))
}

func TestNotFoundWrapping(t *testing.T) {
	t.Parallel()
	cause := apiError("NoSuchBucket")
	err := notFound("bucket", "b1", cause)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "bucket b1")
}
