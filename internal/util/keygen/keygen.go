package keygen

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"
)

// UpperAlphanumeric is the alphabet used for confirmation codes.
const UpperAlphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Code returns a random string of length n drawn uniformly from alphabet.
func Code(n int, alphabet string) (string, error) {
	return codeFrom(rand.Reader, n, alphabet)
}

func codeFrom(r io.Reader, n int, alphabet string) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("code length must be positive, got %d", n)
	}
	if alphabet == "" {
		return "", fmt.Errorf("alphabet must not be empty")
	}

	max := big.NewInt(int64(len(alphabet)))
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		idx, err := rand.Int(r, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random index: %w", err)
		}
		b.WriteByte(alphabet[idx.Int64()])
	}
	return b.String(), nil
}

// Spaced returns code with a single space between characters, e.g. "A B C".
func Spaced(code string) string {
	parts := make([]string, 0, len(code))
	for _, r := range code {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, " ")
}
