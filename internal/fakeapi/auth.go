package fakeapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	accessLifetime  = 60 * time.Minute
	refreshLifetime = 7 * 24 * time.Hour
)

type tokenClaims struct {
	jwt.RegisteredClaims
	UserID    int64  `json:"user_id"`
	TokenType string `json:"token_type"`
}

type ctxKey struct{}

func (s *Server) mint(acc *account, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   acc.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:    acc.ID,
		TokenType: tokenType,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// IssueTokens mints an access/refresh pair for username.
func (s *Server) IssueTokens(username string) (access, refresh string, err error) {
	s.mu.Lock()
	acc, ok := s.users[username]
	s.mu.Unlock()
	if !ok {
		return "", "", fmt.Errorf("unknown user %q", username)
	}
	return s.issue(acc)
}

func (s *Server) issue(acc *account) (string, string, error) {
	access, err := s.mint(acc, "access", accessLifetime)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.mint(acc, "refresh", refreshLifetime)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (s *Server) parse(token, wantType string) (*tokenClaims, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if claims.TokenType != wantType {
		return nil, errors.New("wrong token type")
	}
	return &claims, nil
}

// requireAuth rejects requests without a valid access token and stores the
// caller's account in the request context.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
			return
		}
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			writeDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
			return
		}
		claims, err := s.parse(token, "access")
		if err != nil {
			writeDetail(w, http.StatusUnauthorized, "Given token not valid for any token type")
			return
		}
		acc := s.accountByID(claims.UserID)
		if acc == nil {
			writeDetail(w, http.StatusUnauthorized, "User not found")
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, acc)))
	}
}

func caller(r *http.Request) *account {
	acc, _ := r.Context().Value(ctxKey{}).(*account)
	return acc
}
