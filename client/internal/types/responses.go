package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ------------------------------
// Response Types
// ------------------------------

// TokenPair is returned by /token/ and /token/refresh/. Refresh is absent on
// refresh responses unless the backend rotates refresh tokens.
type TokenPair struct {
	Access  string `json:"access" validate:"required"`
	Refresh string `json:"refresh,omitempty"`
}

// RegisterResponse is returned by /accounts/users/register/.
type RegisterResponse struct {
	User   User      `json:"user"`
	Tokens TokenPair `json:"tokens"`
}

// List decodes list endpoints. The backend returns a bare JSON array, or a
// paginated object when pagination is switched on server side.
type List[T any] struct {
	Items    []T     `validate:"dive"`
	Count    int     // total across pages; equals len(Items) for bare arrays
	Next     *string // next page URL, nil on the last page
	Previous *string
}

type page[T any] struct {
	Count    *int    `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  *[]T    `json:"results"`
}

// UnmarshalJSON accepts either `[...]` or `{"count":..,"results":[...]}`.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return fmt.Errorf("expected a list, got no content")
	}
	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*l = List[T]{Items: items, Count: len(items)}
		return nil
	}
	var p page[T]
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return err
	}
	if p.Results == nil {
		return fmt.Errorf("expected a list, got an object without results")
	}
	out := List[T]{Items: *p.Results, Next: p.Next, Previous: p.Previous, Count: len(*p.Results)}
	if p.Count != nil {
		out.Count = *p.Count
	}
	*l = out
	return nil
}
