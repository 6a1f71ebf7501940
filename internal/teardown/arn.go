package teardown

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws/arn"
)

var (
	ErrEmptyARN     = errors.New("ARN cannot be empty")
	ErrMalformedARN = errors.New("invalid stack ARN format")
)

// StackARN is the parsed form of a CloudFormation stack ARN.
type StackARN struct {
	ARN  string
	Name string
	// ID is the full ARN when it carries the unique stack id segment.
	ID string
}

// ParseStackARN extracts the stack name from
// arn:{partition}:cloudformation:{region}:{account}:stack/{name}/{id}.
//
// Surrounding whitespace is dropped before parsing: an ARN cannot contain
// whitespace, and pasted ARNs often carry a trailing newline. The name and id
// are still matched exactly against the live stack. This is the only answer
// that is normalized; confirmation values and codes are compared as typed.
func ParseStackARN(input string) (StackARN, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return StackARN{}, ErrEmptyARN
	}

	parsed, err := arn.Parse(s)
	if err != nil {
		return StackARN{}, fmt.Errorf("%w: %w", ErrMalformedARN, err)
	}
	if parsed.Service != "cloudformation" {
		return StackARN{}, fmt.Errorf("%w: service is %q, expected cloudformation", ErrMalformedARN, parsed.Service)
	}

	parts := strings.Split(parsed.Resource, "/")
	if len(parts) < 2 || parts[0] != "stack" || parts[1] == "" {
		return StackARN{}, fmt.Errorf("%w: resource %q is not stack/{name}/{id}", ErrMalformedARN, parsed.Resource)
	}

	ref := StackARN{ARN: s, Name: parts[1]}
	if len(parts) >= 3 && parts[2] != "" {
		ref.ID = s
	}
	return ref, nil
}

// Category is the kind of a tagged resource, which selects its delete handler.
type Category string

const (
	CategoryBucket      Category = "bucket"
	CategoryTable       Category = "table"
	CategoryLogGroup    Category = "log-group"
	CategoryParameter   Category = "parameter"
	CategoryUnsupported Category = "unsupported"
)

// TaggedResource is a resource found through the tagging index.
type TaggedResource struct {
	ARN      string
	Category Category
	// Name is the identifier the service delete call expects.
	Name string
}

// ClassifyResource maps an ARN to its category and service-level name.
// Anything not recognized is CategoryUnsupported.
func ClassifyResource(resourceARN string) TaggedResource {
	unsupported := TaggedResource{ARN: resourceARN, Category: CategoryUnsupported, Name: resourceARN}

	parsed, err := arn.Parse(resourceARN)
	if err != nil {
		return unsupported
	}
	res := parsed.Resource

	switch parsed.Service {
	case "s3":
		if res == "" || strings.Contains(res, "/") {
			return unsupported
		}
		return TaggedResource{ARN: resourceARN, Category: CategoryBucket, Name: res}

	case "dynamodb":
		if !strings.HasPrefix(res, "table/") {
			return unsupported
		}
		name := res[strings.LastIndex(res, "/")+1:]
		if name == "" {
			return unsupported
		}
		return TaggedResource{ARN: resourceARN, Category: CategoryTable, Name: name}

	case "logs":
		name, ok := strings.CutPrefix(res, "log-group:")
		name = strings.TrimSuffix(name, ":*")
		if !ok || name == "" {
			return unsupported
		}
		return TaggedResource{ARN: resourceARN, Category: CategoryLogGroup, Name: name}

	case "ssm":
		name, ok := strings.CutPrefix(res, "parameter")
		if !ok || name == "" || name == "/" {
			return unsupported
		}
		// Names without a hierarchy are stored without a leading slash.
		if strings.Count(name, "/") == 1 {
			name = strings.TrimPrefix(name, "/")
		}
		return TaggedResource{ARN: resourceARN, Category: CategoryParameter, Name: name}
	}

	return unsupported
}
