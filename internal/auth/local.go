package auth

import (
	"context"
	"errors"

	"github.com/group8-health/health/internal"
	"github.com/group8-health/health/internal/storage"
)

// LocalAuthProvider resolves opaque bearer tokens against the profile store.
// Used in development where no token service issues JWTs.
type LocalAuthProvider struct {
	profiles storage.ProfileRepository
	logger   internal.Logger
}

func NewLocalAuthProvider(profiles storage.ProfileRepository, logger internal.Logger) *LocalAuthProvider {
	return &LocalAuthProvider{profiles: profiles, logger: logger}
}

func (a *LocalAuthProvider) ValidateTokenLocal(ctx context.Context, token string) (*internal.User, error) {
	user, err := a.profiles.GetUserByToken(ctx, token)
	if err != nil {
		a.logger.Warnf("auth: invalid token")
		return nil, errors.New("invalid token")
	}
	return user, nil
}

func (a *LocalAuthProvider) ValidateTokenJWT(ctx context.Context, token string) (*internal.User, error) {
	a.logger.Warnf("auth: ValidateTokenJWT not implemented in LocalAuthProvider")
	return nil, errors.New("not implemented in LocalAuthProvider")
}
