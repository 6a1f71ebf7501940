package teardown

import (
	"fmt"

	"github.com/63klabs/atlantis/internal/util/keygen"
)

// CodeLength is the number of characters in a confirmation code.
const CodeLength = 5

// Challenge asks the operator to retype a random code before an irreversible
// delete. It is used once and discarded.
type Challenge struct {
	ResourceARN string
	Code        string
}

// NewChallenge creates a challenge for resourceARN using gen for the code.
func NewChallenge(resourceARN string, gen func() (string, error)) (*Challenge, error) {
	code, err := gen()
	if err != nil {
		return nil, fmt.Errorf("failed to generate confirmation code: %w", err)
	}
	if len(code) != CodeLength {
		return nil, fmt.Errorf("confirmation code must be %d characters, got %d", CodeLength, len(code))
	}
	return &Challenge{ResourceARN: resourceARN, Code: code}, nil
}

// Display renders the code with spaces between characters so it must be typed.
func (c *Challenge) Display() string {
	return keygen.Spaced(c.Code)
}

// Verify reports whether entered is byte-for-byte equal to the code.
func (c *Challenge) Verify(entered string) bool {
	return entered == c.Code
}
