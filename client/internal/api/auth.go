package api

import (
	"context"

	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/client/internal/types"
)

const (
	TokenPath    = "/token/"
	RefreshPath  = "/token/refresh/"
	RegisterPath = "/accounts/users/register/"
)

// ObtainToken exchanges credentials for an access/refresh pair.
func ObtainToken(ctx context.Context, r Requester, username, password string) (*types.TokenPair, error) {
	var tp types.TokenPair
	if err := postInto(ctx, r, TokenPath, types.Credentials{Username: username, Password: password}, &tp); err != nil {
		return nil, err
	}
	return &tp, nil
}

// RefreshToken exchanges a refresh token for a new access token.
func RefreshToken(ctx context.Context, r Requester, refresh string) (*types.TokenPair, error) {
	var tp types.TokenPair
	if err := postInto(ctx, r, RefreshPath, types.RefreshRequest{Refresh: refresh}, &tp); err != nil {
		return nil, err
	}
	return &tp, nil
}

// Register creates an account; the backend answers with the user and a token pair.
func Register(ctx context.Context, r Requester, req types.RegisterRequest) (*types.RegisterResponse, error) {
	var rr types.RegisterResponse
	if err := postInto(ctx, r, RegisterPath, req, &rr); err != nil {
		return nil, err
	}
	return &rr, nil
}
