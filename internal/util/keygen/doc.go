// Package keygen generates short random codes for interactive confirmation
// challenges.
//
// Codes are drawn from crypto/rand so they cannot be predicted from earlier
// prompts in the same session.
package keygen
