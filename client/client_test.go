package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clienterrors "github.com/janz-emmanuel24/peer-standard-school-of-house-managers/client/internal/errors"
	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/session"
)

func TestNew_RequiresBaseURL(t *testing.T) {
	t.Parallel()
	_, err := New("")
	assert.Error(t, err)

	c, err := New("http://example.com/api/")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/api", c.BaseURL())
	assert.False(t, c.Session().Authenticated())
}

func TestRequest_URLAndDefaultHeaders(t *testing.T) {
	t.Parallel()
	var got *http.Request
	c, rec := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		writeBody(w, http.StatusOK, `[]`)
	})

	raw, err := c.Request(context.Background(), "/courses/courses/", RequestOptions{})
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))

	require.NotNil(t, got)
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/api/courses/courses/", got.URL.Path)
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.NotEmpty(t, got.Header.Get(RequestIDHeader))
	assert.Empty(t, got.Header.Get("Authorization"), "no token, no Authorization header")
	assert.Empty(t, rec.all())
}

func TestLogin_ThenBearerOnEveryRequest(t *testing.T) {
	t.Parallel()
	var body map[string]string
	var auth string
	c, _ := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/token/":
			b, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(b, &body)
			writeBody(w, http.StatusOK, `{"access":"tok123","refresh":"ref456"}`)
		case "/api/accounts/users/me/":
			auth = r.Header.Get("Authorization")
			writeBody(w, http.StatusOK, `{"id":1,"username":"alice"}`)
		default:
			http.NotFound(w, r)
		}
	})

	ctx := context.Background()
	tp, err := c.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok123", tp.Access)
	assert.Equal(t, map[string]string{"username": "alice", "password": "pw"}, body)

	assert.Equal(t, "tok123", c.Session().Token())
	v, ok, err := c.Session().Store().Get(ctx, session.TokenKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok123", v)

	u, err := c.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "Bearer tok123", auth)
}

func TestRequest_ServerErrorNotifiedOnce(t *testing.T) {
	t.Parallel()
	c, rec := newStubClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeBody(w, http.StatusBadRequest, `{"detail":"Invalid credentials"}`)
	})

	_, err := c.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
	assert.True(t, IsServerError(err))

	re, ok := AsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, re.StatusCode)

	assert.Equal(t, []notification{{SeverityError, "Invalid credentials"}}, rec.all())
	assert.False(t, c.Session().Authenticated())
}

func TestRequest_FailureMessageSelection(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"detail", 401, `{"detail":"Token expired","error":"ignored"}`, "Token expired"},
		{"error", 404, `{"error":"Invalid verification code"}`, "Invalid verification code"},
		{"non field errors", 400, `{"non_field_errors":["Passwords don't match","second"]}`, "Passwords don't match"},
		{"no message", 400, `{"username":["This field is required."]}`, DefaultErrorMessage},
		{"non-json failure body", 502, `<html>Bad Gateway</html>`, DefaultErrorMessage},
		{"empty failure body", 500, ``, DefaultErrorMessage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c, rec := newStubClient(t, func(w http.ResponseWriter, _ *http.Request) {
				writeBody(w, tc.status, tc.body)
			})
			_, err := c.Get(context.Background(), "/anything/")
			require.Error(t, err)
			assert.Equal(t, tc.want, err.Error())
			assert.True(t, IsServerError(err))
			assert.Len(t, rec.all(), 1)
		})
	}
}

func TestRequest_SuccessWithNonJSONIsParseError(t *testing.T) {
	t.Parallel()
	c, rec := newStubClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeBody(w, http.StatusOK, `definitely not json`)
	})
	_, err := c.Get(context.Background(), "/courses/courses/")
	require.Error(t, err)
	assert.True(t, IsParseError(err))
	assert.NotEmpty(t, err.Error())
	assert.Len(t, rec.all(), 1)
}

func TestRequest_EmptySuccessBodyIsNull(t *testing.T) {
	t.Parallel()
	c, rec := newStubClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	raw, err := c.Delete(context.Background(), "/courses/courses/1/")
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))
	assert.Empty(t, rec.all())
}

func TestRequest_TransportError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	rec := &recorder{}
	c, err := New(url+"/api", WithNotifier(rec))
	require.NoError(t, err)

	_, err = c.Get(context.Background(), "/courses/courses/")
	require.Error(t, err)
	assert.True(t, IsTransportError(err))
	re, ok := AsRequestError(err)
	require.True(t, ok)
	assert.Error(t, re.Unwrap())
	assert.Len(t, rec.all(), 1)
}

func TestRequest_HeaderOverridesWin(t *testing.T) {
	t.Parallel()
	var got http.Header
	c, _ := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		writeBody(w, http.StatusOK, `{}`)
	})
	ctx := context.Background()
	require.NoError(t, c.Session().Begin(ctx, "session-token", ""))

	_, err := c.Request(ctx, "/upload/", RequestOptions{
		Method: http.MethodPost,
		Body:   []byte(`{"a":1}`),
		Header: http.Header{
			"Content-Type":  {"application/vnd.custom+json"},
			"Authorization": {"Token other"},
			RequestIDHeader: {"fixed-id"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.custom+json", got.Get("Content-Type"))
	assert.Equal(t, "Token other", got.Get("Authorization"))
	assert.Equal(t, "fixed-id", got.Get(RequestIDHeader))
}

func TestPostAndPutSerializeBody(t *testing.T) {
	t.Parallel()
	var methods []string
	var bodies []string
	c, _ := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		methods = append(methods, r.Method)
		bodies = append(bodies, string(b))
		writeBody(w, http.StatusOK, `{"ok":true}`)
	})
	ctx := context.Background()

	_, err := c.Post(ctx, "/x/", map[string]int{"n": 1})
	require.NoError(t, err)
	_, err = c.Put(ctx, "/x/", struct {
		Name string `json:"name"`
	}{"y"})
	require.NoError(t, err)
	_, err = c.Post(ctx, "/x/", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{http.MethodPost, http.MethodPut, http.MethodPost}, methods)
	assert.JSONEq(t, `{"n":1}`, bodies[0])
	assert.JSONEq(t, `{"name":"y"}`, bodies[1])
	assert.Empty(t, bodies[2])
}

func TestPost_UnserializableBody(t *testing.T) {
	t.Parallel()
	c, rec := newStubClient(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
	})
	_, err := c.Post(context.Background(), "/x/", map[string]any{"f": func() {}})
	require.Error(t, err)
	assert.True(t, IsTransportError(err))
	assert.Len(t, rec.all(), 1)
}

func TestLogin_MissingAccessIsParseError(t *testing.T) {
	t.Parallel()
	c, rec := newStubClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeBody(w, http.StatusOK, `{"refresh":"only"}`)
	})
	_, err := c.Login(context.Background(), "alice", "pw")
	require.Error(t, err)
	assert.True(t, IsParseError(err))
	assert.False(t, c.Session().Authenticated())
	assert.Len(t, rec.all(), 1)
}

func TestLogin_PersistenceFailureLeavesSessionEmpty(t *testing.T) {
	t.Parallel()
	sess := session.New(brokenStore{session.NewMemoryStore()})
	c, rec := newStubClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeBody(w, http.StatusOK, `{"access":"tok123"}`)
	}, WithSession(sess))

	_, err := c.Login(context.Background(), "alice", "pw")
	require.ErrorIs(t, err, errStoreDown)
	assert.False(t, c.Session().Authenticated())
	assert.Empty(t, rec.all(), "storage failures are not request failures")
}

func TestLogout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := session.NewMemoryStore()
	c, err := New("http://example.com/api", WithSession(session.New(store)))
	require.NoError(t, err)
	require.NoError(t, c.Session().Begin(ctx, "tok", "ref"))

	c.Logout(ctx)
	assert.False(t, c.Session().Authenticated())
	_, ok, err := store.Get(ctx, session.TokenKey)
	require.NoError(t, err)
	assert.False(t, ok)

	// Logging out twice, or with a failing store, is silent.
	c.Logout(ctx)
	broken, err := New("http://example.com/api", WithSession(session.New(brokenStore{session.NewMemoryStore()})))
	require.NoError(t, err)
	broken.Logout(ctx)
	assert.False(t, broken.Session().Authenticated())
}

func TestRefreshSession_WithoutRefreshToken(t *testing.T) {
	t.Parallel()
	c, rec := newStubClient(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
	})
	_, err := c.RefreshSession(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Empty(t, rec.all())
}

func TestDecode_ContractViolationReported(t *testing.T) {
	t.Parallel()
	c, rec := newStubClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeBody(w, http.StatusOK, `{"id":3}`)
	})
	_, err := c.GetCourse(context.Background(), 3)
	require.Error(t, err)
	assert.True(t, IsParseError(err))
	assert.Contains(t, err.Error(), `"title"`)
	assert.Len(t, rec.all(), 1)
}

func TestRequest_AbsolutePathStaysUnderBaseURL(t *testing.T) {
	t.Parallel()
	var foreignHits atomic.Int32
	var foreignAuth atomic.Value
	foreign := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		foreignHits.Add(1)
		foreignAuth.Store(r.Header.Get("Authorization"))
		writeBody(w, http.StatusOK, `{}`)
	}))
	t.Cleanup(foreign.Close)

	var gotPath string
	c, _ := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		writeBody(w, http.StatusNotFound, `{"detail":"Not found."}`)
	})
	ctx := context.Background()
	require.NoError(t, c.Session().Begin(ctx, "secret", ""))

	_, err := c.Get(ctx, foreign.URL+"/steal/")
	require.Error(t, err)
	assert.True(t, IsServerError(err))
	assert.Equal(t, "/api"+foreign.URL+"/steal/", gotPath)
	assert.Zero(t, foreignHits.Load(), "bearer token must never leave the base URL")
	assert.Nil(t, foreignAuth.Load())
}

func TestLogFailure_Fields(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := zerolog.New(&buf)

	logFailure(l, "rid-1", clienterrors.NewServerError("POST", "/token/", 401,
		[]byte(`{"detail":"No active account found with the given credentials"}`)))
	line := buf.String()
	assert.Equal(t, 1, strings.Count(line, `"message":`), line)
	var fields map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &fields))
	assert.Equal(t, "API error", fields["message"])
	assert.Equal(t, "No active account found with the given credentials", fields["error_message"])
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "rid-1", fields["request_id"])
	assert.EqualValues(t, 401, fields["status"])

	buf.Reset()
	logFailure(l, "", clienterrors.NewParseError("", "/courses/courses/1/", 0, []byte(`{}`), errors.New("missing title")))
	fields = map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fields))
	assert.NotContains(t, fields, "method")
	assert.NotContains(t, fields, "request_id")
	assert.Equal(t, "/courses/courses/1/", fields["path"])
}
