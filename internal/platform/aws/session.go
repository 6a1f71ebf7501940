package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	atlantisconfig "github.com/63klabs/atlantis/internal/config"
)

// SessionOptions selects credentials, region and endpoint for a run.
type SessionOptions struct {
	Profile string
	Region  string
	// EndpointURL points every client at a local emulator such as LocalStack.
	// Static test credentials are used when it is set.
	EndpointURL string
}

// Session holds the resolved AWS configuration for one run.
type Session struct {
	cfg      aws.Config
	endpoint string
}

// NewSession resolves credentials and region.
func NewSession(ctx context.Context, opts SessionOptions) (*Session, error) {
	var loadOpts []func(*config.LoadOptions) error
	if opts.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(opts.Profile))
	}
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}
	if opts.EndpointURL != "" {
		loadOpts = append(loadOpts,
			config.WithBaseEndpoint(opts.EndpointURL),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("test", "test", "")),
		)
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("no AWS region configured: set --region, the settings file or AWS_REGION")
	}

	return &Session{cfg: cfg, endpoint: opts.EndpointURL}, nil
}

// Region returns the resolved region.
func (s *Session) Region() string {
	return s.cfg.Region
}

// NewClient creates the service clients from the session configuration.
func (s *Session) NewClient(timeouts *atlantisconfig.Timeouts) *Client {
	pathStyle := s.endpoint != ""
	return newClient(apis{
		cfn: cloudformation.NewFromConfig(s.cfg),
		ssm: ssm.NewFromConfig(s.cfg),
		s3: s3.NewFromConfig(s.cfg, func(o *s3.Options) {
			o.UsePathStyle = pathStyle
		}),
		dynamodb: dynamodb.NewFromConfig(s.cfg),
		logs:     cloudwatchlogs.NewFromConfig(s.cfg),
		tagging:  resourcegroupstaggingapi.NewFromConfig(s.cfg),
	}, timeouts)
}
