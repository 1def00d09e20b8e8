package client

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/levantva/crewcenter/internal/common"
)

// TokenInfo is what can be learned from a bearer token without its key.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}

// Expired reports whether the token expires before now.
func (i TokenInfo) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && i.ExpiresAt.Before(now)
}

// ExpiresWithin reports whether the token expires in less than d.
func (i TokenInfo) ExpiresWithin(now time.Time, d time.Duration) bool {
	return !i.ExpiresAt.IsZero() && i.ExpiresAt.Before(now.Add(d))
}

// InspectBearerToken reads the claims of a JWT bearer token without
// verifying its signature. Opaque tokens yield common.ErrInvalidToken.
func InspectBearerToken(token string) (TokenInfo, error) {
	claims := jwt.RegisteredClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, &claims)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return TokenInfo{}, common.ErrInvalidToken
		}
		return TokenInfo{}, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}

	info := TokenInfo{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}
