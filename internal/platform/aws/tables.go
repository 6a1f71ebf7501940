package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DeleteTable deletes a DynamoDB table.
func (c *Client) DeleteTable(ctx context.Context, name string) error {
	_, err := c.dynamodb.DeleteTable(ctx, &dynamodb.DeleteTableInput{TableName: aws.String(name)})
	if err != nil {
		if isNotFoundError(err) {
			return notFound("table", name, err)
		}
		return fmt.Errorf("failed to delete table %s: %w", name, err)
	}
	return nil
}

// DeleteLogGroup deletes a CloudWatch log group and its streams.
func (c *Client) DeleteLogGroup(ctx context.Context, name string) error {
	_, err := c.logs.DeleteLogGroup(ctx, &cloudwatchlogs.DeleteLogGroupInput{LogGroupName: aws.String(name)})
	if err != nil {
		if isNotFoundError(err) {
			return notFound("log group", name, err)
		}
		return fmt.Errorf("failed to delete log group %s: %w", name, err)
	}
	return nil
}
