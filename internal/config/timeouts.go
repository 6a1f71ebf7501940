package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds the wait and retry budgets for a teardown.
// These values can be customized via environment variables.
type Timeouts struct {
	StackPollInterval time.Duration // Delay between stack status queries
	StackPollAttempts int           // Maximum number of stack status queries
	RetryMaxAttempts  int           // Maximum number of retries for throttled read calls
	RetryInitialDelay time.Duration // Initial delay between retries
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - ATLANTIS_STACK_POLL_INTERVAL (default: 10s)
//   - ATLANTIS_STACK_POLL_ATTEMPTS (default: 180)
//   - ATLANTIS_RETRY_MAX_ATTEMPTS (default: 3)
//   - ATLANTIS_RETRY_INITIAL_DELAY (default: 1s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		StackPollInterval: parseDuration("ATLANTIS_STACK_POLL_INTERVAL", 10*time.Second),
		StackPollAttempts: parseInt("ATLANTIS_STACK_POLL_ATTEMPTS", 180),
		RetryMaxAttempts:  parseInt("ATLANTIS_RETRY_MAX_ATTEMPTS", 3),
		RetryInitialDelay: parseDuration("ATLANTIS_RETRY_INITIAL_DELAY", 1*time.Second),
	}
}

// StackDeleteBudget is the total time a stack deletion may be polled.
func (t *Timeouts) StackDeleteBudget() time.Duration {
	return t.StackPollInterval * time.Duration(t.StackPollAttempts)
}

// parseDuration parses a positive duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}

	return d
}

// parseInt parses a positive integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil || i <= 0 {
		return defaultVal
	}

	return i
}
