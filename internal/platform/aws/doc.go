// Package aws wraps the AWS service clients used to tear down a deployment.
//
// [NewSession] loads one aws.Config per run and [Session.NewClient] builds a
// [Client] over CloudFormation, Systems Manager, S3, DynamoDB, CloudWatch Logs
// and the Resource Groups Tagging API. Missing resources are reported as
// [ErrNotFound], classified from structured API error codes.
//
// [MockClient] implements [CloudManager] with overridable function fields for
// tests in consuming packages.
package aws
