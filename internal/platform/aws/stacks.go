package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	cfntypes "github.com/aws/aws-sdk-go-v2/service/cloudformation/types"

	"github.com/63klabs/atlantis/internal/util/tags"
)

// Terminal and failed stack states relevant to deletion.
const (
	StatusDeleteComplete       = string(cfntypes.StackStatusDeleteComplete)
	StatusDeleteFailed         = string(cfntypes.StackStatusDeleteFailed)
	StatusRollbackFailed       = string(cfntypes.StackStatusRollbackFailed)
	StatusUpdateRollbackFailed = string(cfntypes.StackStatusUpdateRollbackFailed)
)

// Stack is the live state of a CloudFormation stack.
type Stack struct {
	Name                  string
	StackID               string
	Status                string
	StatusReason          string
	Tags                  tags.Set
	Parameters            tags.Set
	TerminationProtection bool
}

// DescribeStack fetches a stack by name or id.
func (c *Client) DescribeStack(ctx context.Context, name string) (*Stack, error) {
	var out *cloudformation.DescribeStacksOutput
	err := c.read(ctx, func() error {
		var err error
		out, err = c.cfn.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
			StackName: aws.String(name),
		})
		return err
	})
	if err != nil {
		if isMissingStackError(err) {
			return nil, notFound("stack", name, err)
		}
		return nil, fmt.Errorf("failed to describe stack %s: %w", name, err)
	}
	if len(out.Stacks) == 0 {
		return nil, fmt.Errorf("stack %s: %w", name, ErrNotFound)
	}

	return stackFromSDK(out.Stacks[0]), nil
}

// DeleteStack requests deletion of a stack. It does not wait.
func (c *Client) DeleteStack(ctx context.Context, name string) error {
	_, err := c.cfn.DeleteStack(ctx, &cloudformation.DeleteStackInput{
		StackName: aws.String(name),
	})
	if err != nil {
		if isNotFoundError(err) {
			return notFound("stack", name, err)
		}
		return fmt.Errorf("failed to delete stack %s: %w", name, err)
	}
	return nil
}

func stackFromSDK(s cfntypes.Stack) *Stack {
	return &Stack{
		Name:         aws.ToString(s.StackName),
		StackID:      aws.ToString(s.StackId),
		Status:       string(s.StackStatus),
		StatusReason: aws.ToString(s.StackStatusReason),
		Tags: tags.FromPairs(s.Tags, func(t cfntypes.Tag) (*string, *string) {
			return t.Key, t.Value
		}),
		Parameters: tags.FromPairs(s.Parameters, func(p cfntypes.Parameter) (*string, *string) {
			return p.ParameterKey, p.ParameterValue
		}),
		TerminationProtection: aws.ToBool(s.EnableTerminationProtection),
	}
}
