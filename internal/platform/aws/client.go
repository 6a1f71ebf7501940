package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	"github.com/63klabs/atlantis/internal/config"
	"github.com/63klabs/atlantis/internal/util/retry"
)

// StackManager reads and deletes CloudFormation stacks.
type StackManager interface {
	// DescribeStack returns the live state of a stack, or ErrNotFound.
	DescribeStack(ctx context.Context, name string) (*Stack, error)
	DeleteStack(ctx context.Context, name string) error
}

// ParameterManager lists and deletes Systems Manager parameters.
type ParameterManager interface {
	// ListParametersByPrefix returns every parameter name beginning with prefix.
	ListParametersByPrefix(ctx context.Context, prefix string) ([]string, error)
	// DeleteParameters deletes up to MaxParameterBatch names in one call and
	// returns the names the service reported as invalid.
	DeleteParameters(ctx context.Context, names []string) (invalid []string, err error)
	DeleteParameter(ctx context.Context, name string) error
}

// ResourceFinder queries the tagging index.
type ResourceFinder interface {
	// FindTaggedResources returns ARNs of resources of the given types carrying key=value.
	FindTaggedResources(ctx context.Context, key, value string, resourceTypes []string) ([]string, error)
}

// BucketManager empties and deletes S3 buckets.
type BucketManager interface {
	// EmptyBucket deletes every object version and delete marker and returns the count removed.
	EmptyBucket(ctx context.Context, name string) (int, error)
	DeleteBucket(ctx context.Context, name string) error
}

// TableManager deletes DynamoDB tables.
type TableManager interface {
	DeleteTable(ctx context.Context, name string) error
}

// LogGroupManager deletes CloudWatch log groups.
type LogGroupManager interface {
	DeleteLogGroup(ctx context.Context, name string) error
}

// CloudManager combines every operation a teardown needs.
type CloudManager interface {
	StackManager
	ParameterManager
	ResourceFinder
	BucketManager
	TableManager
	LogGroupManager
}

// The SDK surface used by Client. Each service client satisfies its interface.

type cloudFormationAPI interface {
	DescribeStacks(ctx context.Context, in *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error)
	DeleteStack(ctx context.Context, in *cloudformation.DeleteStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DeleteStackOutput, error)
}

type ssmAPI interface {
	DescribeParameters(ctx context.Context, in *ssm.DescribeParametersInput, optFns ...func(*ssm.Options)) (*ssm.DescribeParametersOutput, error)
	DeleteParameters(ctx context.Context, in *ssm.DeleteParametersInput, optFns ...func(*ssm.Options)) (*ssm.DeleteParametersOutput, error)
	DeleteParameter(ctx context.Context, in *ssm.DeleteParameterInput, optFns ...func(*ssm.Options)) (*ssm.DeleteParameterOutput, error)
}

type s3API interface {
	ListObjectVersions(ctx context.Context, in *s3.ListObjectVersionsInput, optFns ...func(*s3.Options)) (*s3.ListObjectVersionsOutput, error)
	DeleteObjects(ctx context.Context, in *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
	DeleteBucket(ctx context.Context, in *s3.DeleteBucketInput, optFns ...func(*s3.Options)) (*s3.DeleteBucketOutput, error)
}

type dynamoDBAPI interface {
	DeleteTable(ctx context.Context, in *dynamodb.DeleteTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteTableOutput, error)
}

type logsAPI interface {
	DeleteLogGroup(ctx context.Context, in *cloudwatchlogs.DeleteLogGroupInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.DeleteLogGroupOutput, error)
}

type taggingAPI interface {
	GetResources(ctx context.Context, in *resourcegroupstaggingapi.GetResourcesInput, optFns ...func(*resourcegroupstaggingapi.Options)) (*resourcegroupstaggingapi.GetResourcesOutput, error)
}

type apis struct {
	cfn      cloudFormationAPI
	ssm      ssmAPI
	s3       s3API
	dynamodb dynamoDBAPI
	logs     logsAPI
	tagging  taggingAPI
}

// Client implements CloudManager over the AWS SDK.
type Client struct {
	apis
	retryOpts []retry.Option
}

var _ CloudManager = (*Client)(nil)

func newClient(a apis, timeouts *config.Timeouts) *Client {
	if timeouts == nil {
		timeouts = config.LoadTimeouts()
	}
	return &Client{
		apis: a,
		retryOpts: []retry.Option{
			retry.WithMaxRetries(timeouts.RetryMaxAttempts),
			retry.WithInitialDelay(timeouts.RetryInitialDelay),
			retry.WithRetryIf(IsThrottling),
		},
	}
}

// read runs a read-only call, retrying when the service throttles.
func (c *Client) read(ctx context.Context, op func() error) error {
	return retry.WithExponentialBackoff(ctx, op, c.retryOpts...)
}
