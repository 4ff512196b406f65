package auth

import (
	"context"

	"github.com/group8-health/health/internal"
)

type Provider interface {
	ValidateTokenLocal(ctx context.Context, token string) (*internal.User, error)
	ValidateTokenJWT(ctx context.Context, token string) (*internal.User, error)
}
