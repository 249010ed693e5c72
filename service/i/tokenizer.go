package i

import (
	"time"
)

// Tokenizer defines methods for generating and decoding player tokens.
type Tokenizer interface {
	// Generate creates a signed token with the given claims that expires after expTime.
	Generate(claims map[string]any, expTime time.Duration) (string, error)

	// Decode validates a token and returns its claims.
	Decode(token string) (map[string]any, error)
}
