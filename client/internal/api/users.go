package api

import (
	"context"

	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/client/internal/types"
)

const (
	CurrentUserPath   = "/accounts/users/me/"
	UpdateProfilePath = "/accounts/users/update_profile/"
)

// GetCurrentUser returns the account the session token belongs to.
func GetCurrentUser(ctx context.Context, r Requester) (*types.User, error) {
	var u types.User
	if err := getInto(ctx, r, CurrentUserPath, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfile replaces the editable profile fields and returns the stored profile.
func UpdateProfile(ctx context.Context, r Requester, req types.ProfileUpdate) (*types.Profile, error) {
	raw, err := r.Put(ctx, UpdateProfilePath, req)
	if err != nil {
		return nil, err
	}
	var p types.Profile
	if err := r.Decode(ctx, UpdateProfilePath, raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
