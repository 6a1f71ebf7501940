package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi"
	tagtypes "github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi/types"
)

// FindTaggedResources pages through GetResources for resources tagged key=value.
func (c *Client) FindTaggedResources(ctx context.Context, key, value string, resourceTypes []string) ([]string, error) {
	paginator := resourcegroupstaggingapi.NewGetResourcesPaginator(c.tagging, &resourcegroupstaggingapi.GetResourcesInput{
		TagFilters: []tagtypes.TagFilter{{
			Key:    aws.String(key),
			Values: []string{value},
		}},
		ResourceTypeFilters: resourceTypes,
	})

	var arns []string
	for paginator.HasMorePages() {
		var page *resourcegroupstaggingapi.GetResourcesOutput
		err := c.read(ctx, func() error {
			var err error
			page, err = paginator.NextPage(ctx)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("failed to query resources tagged %s=%s: %w", key, value, err)
		}
		for _, r := range page.ResourceTagMappingList {
			if r.ResourceARN != nil {
				arns = append(arns, *r.ResourceARN)
			}
		}
	}
	return arns, nil
}
