package i

import (
	"time"
)

// Tokenizer defines methods for generating and decoding tokens.
type Tokenizer interface {
	// Generate creates a token with the given claims and expiration duration.
	Generate(claims map[string]interface{}, expTime time.Duration) (string, error)

	// Decode checks the signature, expiry and issuer of a token and returns its claims.
	Decode(token string) (map[string]interface{}, error)
}
