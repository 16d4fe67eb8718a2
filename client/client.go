package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/client/internal/api"
	clienterrors "github.com/janz-emmanuel24/peer-standard-school-of-house-managers/client/internal/errors"
	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/client/internal/types"
	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/session"
)

// RequestIDHeader carries a per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL  string
	http     *http.Client
	rest     *resty.Client
	session  *session.Session
	notifier Notifier
}

// New constructs a Client for the API rooted at baseURL (for example
// "https://school.example/api"). Every path handed to Request is appended to
// it verbatim.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("baseURL cannot be empty")
	}

	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{},
		notifier: LogNotifier{},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.session == nil {
		c.session = session.New(nil)
	}

	// No resty base URL: it would let an absolute path bypass baseURL.
	c.rest = resty.NewWithClient(c.http).
		SetLogger(restyLogger{})

	return c, nil
}

// BaseURL returns the API root every path is appended to.
func (c *Client) BaseURL() string { return c.baseURL }

// Session returns the session holding the bearer token.
func (c *Client) Session() *session.Session { return c.session }

// RequestOptions describes a single call made through Request.
type RequestOptions struct {
	Method string      // defaults to GET
	Body   []byte      // raw JSON, sent as-is when non-empty
	Header http.Header // overrides applied after the defaults
}

// Request performs an authenticated JSON call to baseURL+path and returns the
// response body as raw JSON.
//
// Defaults are Content-Type: application/json, a fresh X-Request-ID and, while
// the session holds a token, Authorization: Bearer <token>. Caller headers
// replace defaults of the same name. Any failure is logged, reported once to
// the notifier, and returned as a *RequestError.
func (c *Client) Request(ctx context.Context, path string, opts RequestOptions) (json.RawMessage, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	requestID := uuid.NewString()
	start := time.Now()

	req := c.rest.R().SetContext(ctx)
	req.Header = c.headers(requestID, opts.Header)
	if len(opts.Body) > 0 {
		req.SetBody(opts.Body)
	}

	resp, err := req.Execute(method, c.baseURL+path)
	requestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(method, "error").Inc()
		return nil, c.fail(ctx, requestID, clienterrors.NewTransportError(method, path, err))
	}

	status := resp.StatusCode()
	body := resp.Body()
	requestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()

	if status < 200 || status > 299 {
		return nil, c.fail(ctx, requestID, clienterrors.NewServerError(method, path, status, body))
	}

	raw, err := asJSON(body)
	if err != nil {
		return nil, c.fail(ctx, requestID, clienterrors.NewParseError(method, path, status, body, err))
	}

	log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Str("request_id", requestID).
		Dur("elapsed", time.Since(start)).
		Msg("API request completed")
	return raw, nil
}

func (c *Client) headers(requestID string, overrides http.Header) http.Header {
	h := make(http.Header)
	h.Set("Content-Type", "application/json")
	h.Set(RequestIDHeader, requestID)
	if tok := c.session.Token(); tok != "" {
		h.Set("Authorization", "Bearer "+tok)
	}
	for k, vs := range overrides {
		h.Del(k)
		for _, v := range vs {
			h.Add(k, v)
		}
	}
	return h
}

// asJSON checks body is a single JSON document. An empty body (204 No
// Content) is reported as JSON null.
func asJSON(body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return json.RawMessage("null"), nil
	}
	var probe any
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return nil, err
	}
	return json.RawMessage(trimmed), nil
}

// fail logs err, reports it to the notifier and returns it.
func (c *Client) fail(ctx context.Context, requestID string, err *clienterrors.RequestError) error {
	requestFailuresTotal.WithLabelValues(err.Kind.String()).Inc()
	logFailure(log.Logger, requestID, err)
	c.notifier.Notify(ctx, SeverityError, err.Message)
	return err
}

func logFailure(l zerolog.Logger, requestID string, err *clienterrors.RequestError) {
	ev := l.Error().
		Str("kind", err.Kind.String()).
		Str("path", err.Path).
		Str("error_message", err.Message)
	if err.Method != "" {
		ev = ev.Str("method", err.Method)
	}
	if requestID != "" {
		ev = ev.Str("request_id", requestID)
	}
	if err.StatusCode > 0 {
		ev = ev.Int("status", err.StatusCode)
	}
	if err.Err != nil {
		ev = ev.Err(err.Err)
	}
	ev.Msg("API error")
}

// --------------------------------------------------------------------
// Verb helpers
// --------------------------------------------------------------------

// Get issues a GET for path.
func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.Request(ctx, path, RequestOptions{Method: http.MethodGet})
}

// Post serializes body to JSON and issues a POST. A nil body sends no payload.
func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.withBody(ctx, http.MethodPost, path, body)
}

// Put serializes body to JSON and issues a PUT. A nil body sends no payload.
func (c *Client) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.withBody(ctx, http.MethodPut, path, body)
}

// Delete issues a DELETE for path.
func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.Request(ctx, path, RequestOptions{Method: http.MethodDelete})
}

func (c *Client) withBody(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, c.fail(ctx, "", clienterrors.NewTransportError(method, path, err))
		}
		payload = b
	}
	return c.Request(ctx, path, RequestOptions{Method: method, Body: payload})
}

// Decode unmarshals a response returned by Request into v and validates it
// against its contract. Failures are reported like failed requests.
func (c *Client) Decode(ctx context.Context, path string, raw json.RawMessage, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return c.fail(ctx, "", clienterrors.NewParseError("", path, 0, raw, err))
	}
	if err := types.ValidateResponse(v); err != nil {
		return c.fail(ctx, "", clienterrors.NewParseError("", path, 0, raw, err))
	}
	return nil
}

// --------------------------------------------------------------------
// Authentication
// --------------------------------------------------------------------

// Login exchanges credentials for a token pair and stores it in the session,
// in memory and in the session's store. A response without an access token
// is rejected.
func (c *Client) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	tp, err := api.ObtainToken(ctx, c, username, password)
	if err != nil {
		return nil, err
	}
	if err := c.session.Begin(ctx, tp.Access, tp.Refresh); err != nil {
		log.Error().Err(err).Str("username", username).Msg("store session failed")
		return nil, err
	}
	log.Info().Str("username", username).Msg("logged in")
	return tp, nil
}

// Logout clears the session in memory and in its store. It never fails;
// store errors are logged.
func (c *Client) Logout(ctx context.Context) {
	if err := c.session.End(ctx); err != nil {
		log.Warn().Err(err).Msg("clear persisted session failed")
	}
}

// Register creates an account and starts a session with the returned tokens.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	rr, err := api.Register(ctx, c, req)
	if err != nil {
		return nil, err
	}
	if err := c.session.Begin(ctx, rr.Tokens.Access, rr.Tokens.Refresh); err != nil {
		log.Error().Err(err).Str("username", rr.User.Username).Msg("store session failed")
		return nil, err
	}
	return rr, nil
}

// RefreshSession trades the stored refresh token for a new access token.
func (c *Client) RefreshSession(ctx context.Context) (*TokenPair, error) {
	refresh := c.session.RefreshToken()
	if refresh == "" {
		return nil, session.ErrNoToken
	}
	tp, err := api.RefreshToken(ctx, c, refresh)
	if err != nil {
		return nil, err
	}
	if err := c.session.Renew(ctx, tp.Access, tp.Refresh); err != nil {
		log.Error().Err(err).Msg("store refreshed session failed")
		return nil, err
	}
	return tp, nil
}

// --------------------------------------------------------------------
// Account operations - delegated to internal/api
// --------------------------------------------------------------------

// GetCurrentUser returns the logged-in account.
func (c *Client) GetCurrentUser(ctx context.Context) (*User, error) {
	return api.GetCurrentUser(ctx, c)
}

// UpdateProfile updates the logged-in account's profile.
func (c *Client) UpdateProfile(ctx context.Context, req ProfileUpdate) (*Profile, error) {
	return api.UpdateProfile(ctx, c, req)
}

// --------------------------------------------------------------------
// Course operations
// --------------------------------------------------------------------

// GetCourses lists courses filtered by params.
func (c *Client) GetCourses(ctx context.Context, params Params) ([]Course, error) {
	return api.ListCourses(ctx, c, params)
}

// GetCourse retrieves a course by id.
func (c *Client) GetCourse(ctx context.Context, id int64) (*Course, error) {
	return api.GetCourse(ctx, c, id)
}

// SearchCourses runs a free-text course search.
func (c *Client) SearchCourses(ctx context.Context, query string) ([]Course, error) {
	return api.SearchCourses(ctx, c, query)
}

// GetPopularCourses returns the most enrolled courses.
func (c *Client) GetPopularCourses(ctx context.Context) ([]Course, error) {
	return api.PopularCourses(ctx, c)
}

// GetCourseCategories lists course categories.
func (c *Client) GetCourseCategories(ctx context.Context) ([]CourseCategory, error) {
	return api.ListCategories(ctx, c)
}

// --------------------------------------------------------------------
// Student operations
// --------------------------------------------------------------------

// GetStudents lists students filtered by params.
func (c *Client) GetStudents(ctx context.Context, params Params) ([]Student, error) {
	return api.ListStudents(ctx, c, params)
}

// GetMyCourses lists the logged-in student's enrollments.
func (c *Client) GetMyCourses(ctx context.Context) ([]Enrollment, error) {
	return api.MyEnrollments(ctx, c)
}

// --------------------------------------------------------------------
// Employer operations
// --------------------------------------------------------------------

// GetJobPostings lists job postings filtered by params.
func (c *Client) GetJobPostings(ctx context.Context, params Params) ([]JobPosting, error) {
	return api.ListJobPostings(ctx, c, params)
}

// GetJobPosting retrieves a job posting by id.
func (c *Client) GetJobPosting(ctx context.Context, id int64) (*JobPosting, error) {
	return api.GetJobPosting(ctx, c, id)
}

// ApplyForJob applies to a job posting as the logged-in student.
func (c *Client) ApplyForJob(ctx context.Context, jobID int64, req JobApplicationRequest) (*JobApplication, error) {
	return api.ApplyForJob(ctx, c, jobID, req)
}

// --------------------------------------------------------------------
// Certificate operations
// --------------------------------------------------------------------

// GetMyCertificates lists the logged-in user's certificates.
func (c *Client) GetMyCertificates(ctx context.Context) ([]Certificate, error) {
	return api.ListCertificates(ctx, c)
}

// VerifyCertificate checks a certificate by its verification code.
func (c *Client) VerifyCertificate(ctx context.Context, code string) (*Certificate, error) {
	return api.VerifyCertificate(ctx, c, code)
}
