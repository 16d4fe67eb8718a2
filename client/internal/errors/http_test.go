package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageFromBody(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		body string
		want string
	}{
		{"detail", `{"detail":"Invalid credentials"}`, "Invalid credentials"},
		{"error", `{"error":"Already applied for this job"}`, "Already applied for this job"},
		{"detail wins over error", `{"error":"b","detail":"a"}`, "a"},
		{"non field errors", `{"non_field_errors":["Passwords don't match"]}`, "Passwords don't match"},
		{"field errors only", `{"email":["This field is required."]}`, DefaultMessage},
		{"blank detail", `{"detail":"  "}`, DefaultMessage},
		{"non string detail", `{"detail":{"code":1}}`, DefaultMessage},
		{"not json", `<html>502</html>`, DefaultMessage},
		{"empty", ``, DefaultMessage},
		{"array", `["x"]`, DefaultMessage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MessageFromBody([]byte(tc.body)))
		})
	}
}

func TestRequestErrorChain(t *testing.T) {
	t.Parallel()
	cause := fmt.Errorf("dial tcp: connection refused")
	err := fmt.Errorf("load courses: %w", NewTransportError("GET", "/courses/courses/", cause))

	re, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, KindTransport, re.Kind)
	assert.Equal(t, cause.Error(), re.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsKind(err, KindTransport))
	assert.False(t, IsKind(err, KindServer))
	assert.Contains(t, re.Detail(), "[transport] GET /courses/courses/")
}

func TestServerErrorDetail(t *testing.T) {
	t.Parallel()
	re := NewServerError("POST", "/token/", 401, []byte(`{"detail":"No active account found with the given credentials"}`))
	assert.Equal(t, "No active account found with the given credentials", re.Error())
	assert.Nil(t, re.Unwrap())
	assert.Equal(t, "[server] POST /token/: HTTP 401: No active account found with the given credentials", re.Detail())
	assert.Equal(t, "parse", KindParse.String())
	assert.Equal(t, "unknown(9)", Kind(9).String())
}
