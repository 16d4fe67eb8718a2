package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the informational view of a JWT access token. The signature is
// not checked: the backend is the authority, this only feeds status output.
type Claims struct {
	Subject   string
	UserID    string
	TokenType string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token's exp lies before now. Tokens without
// exp never expire.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

type accessClaims struct {
	// UserID is a json.Number or a string, depending on the backend's key type.
	UserID    any    `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// ParseClaims decodes token without verifying it.
func ParseClaims(token string) (*Claims, error) {
	var ac accessClaims
	if _, _, err := jwt.NewParser(jwt.WithJSONNumber()).ParseUnverified(token, &ac); err != nil {
		return nil, fmt.Errorf("decode token claims: %w", err)
	}
	c := &Claims{Subject: ac.Subject, TokenType: ac.TokenType}
	if ac.UserID != nil {
		c.UserID = fmt.Sprint(ac.UserID)
	}
	if ac.IssuedAt != nil {
		c.IssuedAt = ac.IssuedAt.Time
	}
	if ac.ExpiresAt != nil {
		c.ExpiresAt = ac.ExpiresAt.Time
	}
	return c, nil
}

// Claims decodes the held access token.
func (s *Session) Claims() (*Claims, error) {
	tok := s.Token()
	if tok == "" {
		return nil, ErrNoToken
	}
	return ParseClaims(tok)
}
