package aws

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	cwltypes "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi"
	tagtypes "github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindTaggedResources(t *testing.T) {
	t.Parallel()
	f := &fakeAPIs{
		getResources: func(in *resourcegroupstaggingapi.GetResourcesInput) (*resourcegroupstaggingapi.GetResourcesOutput, error) {
			require.Len(t, in.TagFilters, 1)
			assert.Equal(t, "atlantis:ApplicationDeploymentId", aws.ToString(in.TagFilters[0].Key))
			assert.Equal(t, []string{"acme-web-test"}, in.TagFilters[0].Values)
			assert.Equal(t, []string{"s3", "dynamodb:table"}, in.ResourceTypeFilters)
			if aws.ToString(in.PaginationToken) == "" {
				return &resourcegroupstaggingapi.GetResourcesOutput{
					ResourceTagMappingList: []tagtypes.ResourceTagMapping{{ResourceARN: aws.String("arn:aws:s3:::bucket-1")}},
					PaginationToken:        aws.String("next"),
				}, nil
			}
			return &resourcegroupstaggingapi.GetResourcesOutput{
				ResourceTagMappingList: []tagtypes.ResourceTagMapping{{ResourceARN: aws.String("arn:aws:dynamodb:us-east-1:123456789012:table/t1")}},
			}, nil
		},
	}

	arns, err := testClient(f).FindTaggedResources(context.Background(),
		"atlantis:ApplicationDeploymentId", "acme-web-test", []string{"s3", "dynamodb:table"})
	require.NoError(t, err)
	assert.Equal(t, []string{"arn:aws:s3:::bucket-1", "arn:aws:dynamodb:us-east-1:123456789012:table/t1"}, arns)
}

func TestDeleteTable(t *testing.T) {
	t.Parallel()
	f := &fakeAPIs{
		deleteTable: func(in *dynamodb.DeleteTableInput) (*dynamodb.DeleteTableOutput, error) {
			assert.Equal(t, "t1", aws.ToString(in.TableName))
			return &dynamodb.DeleteTableOutput{}, nil
		},
	}
	require.NoError(t, testClient(f).DeleteTable(context.Background(), "t1"))
}

func TestDeleteLogGroup_NotFound(t *testing.T) {
	t.Parallel()
	f := &fakeAPIs{
		deleteLogGroup: func(*cloudwatchlogs.DeleteLogGroupInput) (*cloudwatchlogs.DeleteLogGroupOutput, error) {
			return nil, &cwltypes.ResourceNotFoundException{Message: aws.String("missing")}
		},
	}
	err := testClient(f).DeleteLogGroup(context.Background(), "/aws/lambda/fn")
	assert.ErrorIs(t, err, ErrNotFound)
}
