package ports

import (
	"time"

	"github.com/99minutos/user-catalog-api/internal/core/domain"
)

// PasswordHasher hashes and verifies plaintext passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify returns nil only when plaintext matches hashed. A malformed hash
	// is reported as an error, never a panic.
	Verify(plaintext, hashed string) error
}

// TokenCodec issues and decodes signed access tokens.
type TokenCodec interface {
	Issue(subject string, ttl time.Duration) (string, error)
	Decode(token string) (domain.TokenClaims, error)
}
