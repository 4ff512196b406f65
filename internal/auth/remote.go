package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/group8-health/health/internal"
	"github.com/group8-health/health/internal/storage"
)

// JWTAuthProvider validates HMAC-signed bearer tokens issued by the identity
// service and resolves the subject claim against the profile store.
type JWTAuthProvider struct {
	secret   []byte
	profiles storage.ProfileRepository
	logger   internal.Logger
}

func NewJWTAuthProvider(secret string, profiles storage.ProfileRepository, logger internal.Logger) *JWTAuthProvider {
	return &JWTAuthProvider{secret: []byte(secret), profiles: profiles, logger: logger}
}

func (a *JWTAuthProvider) ValidateTokenLocal(ctx context.Context, token string) (*internal.User, error) {
	return nil, errors.New("not implemented in JWTAuthProvider")
}

func (a *JWTAuthProvider) ValidateTokenJWT(ctx context.Context, tokenString string) (*internal.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		a.logger.Warnf("auth: JWT validation failed: %v", err)
		return nil, errors.New("invalid token")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return nil, errors.New("token has no subject")
	}

	user, err := a.profiles.GetUser(ctx, subject)
	if err != nil {
		a.logger.Warnf("auth: no user for token subject %s", subject)
		return nil, errors.New("unknown user")
	}
	return user, nil
}
