package aws

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	"github.com/63klabs/atlantis/internal/config"
)

// fakeAPIs implements every SDK interface with function fields.
type fakeAPIs struct {
	describeStacks     func(*cloudformation.DescribeStacksInput) (*cloudformation.DescribeStacksOutput, error)
	deleteStack        func(*cloudformation.DeleteStackInput) (*cloudformation.DeleteStackOutput, error)
	describeParameters func(*ssm.DescribeParametersInput) (*ssm.DescribeParametersOutput, error)
	deleteParameters   func(*ssm.DeleteParametersInput) (*ssm.DeleteParametersOutput, error)
	deleteParameter    func(*ssm.DeleteParameterInput) (*ssm.DeleteParameterOutput, error)
	listObjectVersions func(*s3.ListObjectVersionsInput) (*s3.ListObjectVersionsOutput, error)
	deleteObjects      func(*s3.DeleteObjectsInput) (*s3.DeleteObjectsOutput, error)
	deleteBucket       func(*s3.DeleteBucketInput) (*s3.DeleteBucketOutput, error)
	deleteTable        func(*dynamodb.DeleteTableInput) (*dynamodb.DeleteTableOutput, error)
	deleteLogGroup     func(*cloudwatchlogs.DeleteLogGroupInput) (*cloudwatchlogs.DeleteLogGroupOutput, error)
	getResources       func(*resourcegroupstaggingapi.GetResourcesInput) (*resourcegroupstaggingapi.GetResourcesOutput, error)
}

func (f *fakeAPIs) DescribeStacks(_ context.Context, in *cloudformation.DescribeStacksInput, _ ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error) {
	return f.describeStacks(in)
}

func (f *fakeAPIs) DeleteStack(_ context.Context, in *cloudformation.DeleteStackInput, _ ...func(*cloudformation.Options)) (*cloudformation.DeleteStackOutput, error) {
	return f.deleteStack(in)
}

func (f *fakeAPIs) DescribeParameters(_ context.Context, in *ssm.DescribeParametersInput, _ ...func(*ssm.Options)) (*ssm.DescribeParametersOutput, error) {
	return f.describeParameters(in)
}

func (f *fakeAPIs) DeleteParameters(_ context.Context, in *ssm.DeleteParametersInput, _ ...func(*ssm.Options)) (*ssm.DeleteParametersOutput, error) {
	return f.deleteParameters(in)
}

func (f *fakeAPIs) DeleteParameter(_ context.Context, in *ssm.DeleteParameterInput, _ ...func(*ssm.Options)) (*ssm.DeleteParameterOutput, error) {
	return f.deleteParameter(in)
}

func (f *fakeAPIs) ListObjectVersions(_ context.Context, in *s3.ListObjectVersionsInput, _ ...func(*s3.Options)) (*s3.ListObjectVersionsOutput, error) {
	return f.listObjectVersions(in)
}

func (f *fakeAPIs) DeleteObjects(_ context.Context, in *s3.DeleteObjectsInput, _ ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error) {
	return f.deleteObjects(in)
}

func (f *fakeAPIs) DeleteBucket(_ context.Context, in *s3.DeleteBucketInput, _ ...func(*s3.Options)) (*s3.DeleteBucketOutput, error) {
	return f.deleteBucket(in)
}

func (f *fakeAPIs) DeleteTable(_ context.Context, in *dynamodb.DeleteTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteTableOutput, error) {
	return f.deleteTable(in)
}

func (f *fakeAPIs) DeleteLogGroup(_ context.Context, in *cloudwatchlogs.DeleteLogGroupInput, _ ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.DeleteLogGroupOutput, error) {
	return f.deleteLogGroup(in)
}

func (f *fakeAPIs) GetResources(_ context.Context, in *resourcegroupstaggingapi.GetResourcesInput, _ ...func(*resourcegroupstaggingapi.Options)) (*resourcegroupstaggingapi.GetResourcesOutput, error) {
	return f.getResources(in)
}

func testClient(f *fakeAPIs) *Client {
	return newClient(apis{cfn: f, ssm: f, s3: f, dynamodb: f, logs: f, tagging: f}, &config.Timeouts{
		RetryMaxAttempts:  2,
		RetryInitialDelay: time.Millisecond,
	})
}
