package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mint(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"token_type": "access",
		"user_id":    42,
		"exp":        exp.Unix(),
		"iat":        exp.Add(-5 * time.Minute).Unix(),
	})
	s, err := tok.SignedString([]byte("any-secret"))
	require.NoError(t, err)
	return s
}

func TestParseClaims(t *testing.T) {
	t.Parallel()
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	c, err := ParseClaims(mint(t, exp))
	require.NoError(t, err)
	assert.Equal(t, "42", c.UserID)
	assert.Equal(t, "access", c.TokenType)
	assert.True(t, c.ExpiresAt.Equal(exp))
	assert.False(t, c.Expired(time.Now()))
	assert.True(t, c.Expired(exp.Add(time.Second)))
}

func TestParseClaims_Opaque(t *testing.T) {
	t.Parallel()
	_, err := ParseClaims("tok123")
	assert.Error(t, err)
}

func TestSessionClaims(t *testing.T) {
	t.Parallel()
	s := New(nil)
	_, err := s.Claims()
	assert.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, s.Begin(context.Background(), mint(t, time.Now().Add(time.Minute)), ""))
	c, err := s.Claims()
	require.NoError(t, err)
	assert.Equal(t, "42", c.UserID)
}

func TestClaims_NoExpiry(t *testing.T) {
	t.Parallel()
	c := &Claims{}
	assert.False(t, c.Expired(time.Now()))
}

func TestParseClaims_UserIDForms(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		name string
		id   any
		want string
	}{
		{"large integer", 12345678, "12345678"},
		{"int64 range", int64(9007199254740993), "9007199254740993"},
		{"string key", "9f1c2d", "9f1c2d"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": tc.id}).
				SignedString([]byte("any-secret"))
			require.NoError(t, err)
			c, err := ParseClaims(tok)
			require.NoError(t, err)
			assert.Equal(t, tc.want, c.UserID)
		})
	}
}
