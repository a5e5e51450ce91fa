package ports

import (
	"context"
	"errors"

	"parcelhub/internal/core/domain/model/user"
)

// ErrInvalidCredentials is returned for unknown emails and wrong passwords alike,
// so callers cannot tell them apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialVerifier checks a login against an identity source.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (user.User, error)
}
