package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
)

// MaxParameterBatch is the most names DeleteParameters accepts per call.
const MaxParameterBatch = 10

// ListParametersByPrefix pages through DescribeParameters with a BeginsWith filter.
func (c *Client) ListParametersByPrefix(ctx context.Context, prefix string) ([]string, error) {
	paginator := ssm.NewDescribeParametersPaginator(c.ssm, &ssm.DescribeParametersInput{
		ParameterFilters: []ssmtypes.ParameterStringFilter{{
			Key:    aws.String("Name"),
			Option: aws.String("BeginsWith"),
			Values: []string{prefix},
		}},
		MaxResults: aws.Int32(50),
	})

	var names []string
	for paginator.HasMorePages() {
		var page *ssm.DescribeParametersOutput
		err := c.read(ctx, func() error {
			var err error
			page, err = paginator.NextPage(ctx)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list parameters under %s: %w", prefix, err)
		}
		for _, p := range page.Parameters {
			if p.Name != nil {
				names = append(names, *p.Name)
			}
		}
	}
	return names, nil
}

// DeleteParameters deletes one batch of parameters.
func (c *Client) DeleteParameters(ctx context.Context, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}
	if len(names) > MaxParameterBatch {
		return nil, fmt.Errorf("batch of %d parameters exceeds limit of %d", len(names), MaxParameterBatch)
	}

	out, err := c.ssm.DeleteParameters(ctx, &ssm.DeleteParametersInput{Names: names})
	if err != nil {
		return nil, fmt.Errorf("failed to delete parameters: %w", err)
	}
	return out.InvalidParameters, nil
}

// DeleteParameter deletes a single parameter.
func (c *Client) DeleteParameter(ctx context.Context, name string) error {
	_, err := c.ssm.DeleteParameter(ctx, &ssm.DeleteParameterInput{Name: aws.String(name)})
	if err != nil {
		if isNotFoundError(err) {
			return notFound("parameter", name, err)
		}
		return fmt.Errorf("failed to delete parameter %s: %w", name, err)
	}
	return nil
}
