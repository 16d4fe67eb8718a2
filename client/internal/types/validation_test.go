package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResponse_TokenPair(t *testing.T) {
	t.Parallel()
	require.NoError(t, ValidateResponse(&TokenPair{Access: "tok"}))

	err := ValidateResponse(&TokenPair{Refresh: "r"})
	require.Error(t, err)
	assert.Equal(t, `invalid response: missing required field "access"`, err.Error())
}

func TestValidateResponse_NonStructPassesThrough(t *testing.T) {
	t.Parallel()
	raw := json.RawMessage(`{"anything":true}`)
	assert.NoError(t, ValidateResponse(&raw))
	assert.NoError(t, ValidateResponse(map[string]any{}))
	var nilUser *User
	assert.NoError(t, ValidateResponse(nilUser))
}

func TestValidateResponse_NestedAndListItems(t *testing.T) {
	t.Parallel()
	err := ValidateResponse(&RegisterResponse{User: User{ID: 1, Username: "alice"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"tokens.access"`)

	var courses List[Course]
	require.NoError(t, json.Unmarshal([]byte(`[{"id":1,"title":"Housekeeping"},{"id":2}]`), &courses))
	err = ValidateResponse(&courses)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Items[1].title"`)
}
