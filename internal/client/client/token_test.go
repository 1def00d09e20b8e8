package client

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levantva/crewcenter/internal/common"
)

func signed(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("irrelevant"))
	require.NoError(t, err)
	return s
}

func TestInspectBearerToken_ReadsClaims(t *testing.T) {
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	tok := signed(t, jwt.RegisteredClaims{Subject: "LEV001", ExpiresAt: jwt.NewNumericDate(exp)})

	info, err := InspectBearerToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "LEV001", info.Subject)
	assert.True(t, info.ExpiresAt.Equal(exp))

	now := time.Date(2029, 12, 31, 12, 0, 0, 0, time.UTC)
	assert.False(t, info.Expired(now))
	assert.True(t, info.ExpiresWithin(now, 24*time.Hour))
	assert.True(t, info.Expired(exp.Add(time.Second)))
}

func TestInspectBearerToken_NoExpiry(t *testing.T) {
	info, err := InspectBearerToken(signed(t, jwt.RegisteredClaims{Subject: "x"}))
	require.NoError(t, err)
	assert.True(t, info.ExpiresAt.IsZero())
	assert.False(t, info.Expired(time.Now()))
	assert.False(t, info.ExpiresWithin(time.Now(), time.Hour))
}

func TestInspectBearerToken_Opaque(t *testing.T) {
	_, err := InspectBearerToken("plain-opaque-token")
	require.ErrorIs(t, err, common.ErrInvalidToken)
}
