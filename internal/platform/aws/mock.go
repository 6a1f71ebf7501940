package aws

import "context"

// MockClient is a mock implementation of CloudManager.
// Unset functions succeed with zero values.
type MockClient struct {
	DescribeStackFunc func(ctx context.Context, name string) (*Stack, error)
	DeleteStackFunc   func(ctx context.Context, name string) error

	ListParametersByPrefixFunc func(ctx context.Context, prefix string) ([]string, error)
	DeleteParametersFunc       func(ctx context.Context, names []string) ([]string, error)
	DeleteParameterFunc        func(ctx context.Context, name string) error

	FindTaggedResourcesFunc func(ctx context.Context, key, value string, resourceTypes []string) ([]string, error)

	EmptyBucketFunc    func(ctx context.Context, name string) (int, error)
	DeleteBucketFunc   func(ctx context.Context, name string) error
	DeleteTableFunc    func(ctx context.Context, name string) error
	DeleteLogGroupFunc func(ctx context.Context, name string) error
}

var _ CloudManager = (*MockClient)(nil)

// DescribeStack mocks reading a stack.
func (m *MockClient) DescribeStack(ctx context.Context, name string) (*Stack, error) {
	if m.DescribeStackFunc != nil {
		return m.DescribeStackFunc(ctx, name)
	}
	return &Stack{Name: name}, nil
}

// DeleteStack mocks a stack delete request.
func (m *MockClient) DeleteStack(ctx context.Context, name string) error {
	if m.DeleteStackFunc != nil {
		return m.DeleteStackFunc(ctx, name)
	}
	return nil
}

// ListParametersByPrefix mocks parameter discovery.
func (m *MockClient) ListParametersByPrefix(ctx context.Context, prefix string) ([]string, error) {
	if m.ListParametersByPrefixFunc != nil {
		return m.ListParametersByPrefixFunc(ctx, prefix)
	}
	return nil, nil
}

// DeleteParameters mocks a batch parameter delete.
func (m *MockClient) DeleteParameters(ctx context.Context, names []string) ([]string, error) {
	if m.DeleteParametersFunc != nil {
		return m.DeleteParametersFunc(ctx, names)
	}
	return nil, nil
}

// DeleteParameter mocks a single parameter delete.
func (m *MockClient) DeleteParameter(ctx context.Context, name string) error {
	if m.DeleteParameterFunc != nil {
		return m.DeleteParameterFunc(ctx, name)
	}
	return nil
}

// FindTaggedResources mocks the tagging index query.
func (m *MockClient) FindTaggedResources(ctx context.Context, key, value string, resourceTypes []string) ([]string, error) {
	if m.FindTaggedResourcesFunc != nil {
		return m.FindTaggedResourcesFunc(ctx, key, value, resourceTypes)
	}
	return nil, nil
}

// EmptyBucket mocks emptying a bucket.
func (m *MockClient) EmptyBucket(ctx context.Context, name string) (int, error) {
	if m.EmptyBucketFunc != nil {
		return m.EmptyBucketFunc(ctx, name)
	}
	return 0, nil
}

// DeleteBucket mocks a bucket delete.
func (m *MockClient) DeleteBucket(ctx context.Context, name string) error {
	if m.DeleteBucketFunc != nil {
		return m.DeleteBucketFunc(ctx, name)
	}
	return nil
}

// DeleteTable mocks a table delete.
func (m *MockClient) DeleteTable(ctx context.Context, name string) error {
	if m.DeleteTableFunc != nil {
		return m.DeleteTableFunc(ctx, name)
	}
	return nil
}

// DeleteLogGroup mocks a log group delete.
func (m *MockClient) DeleteLogGroup(ctx context.Context, name string) error {
	if m.DeleteLogGroupFunc != nil {
		return m.DeleteLogGroupFunc(ctx, name)
	}
	return nil
}
