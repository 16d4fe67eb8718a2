// Package fakeapi is an in-process stand-in for the school backend. It serves
// the REST routes the client uses from in-memory fixtures, issues HS256 JWTs
// and answers failures with the same JSON bodies the real backend sends.
package fakeapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// Prefix is the path every route is mounted under. Clients use
// <server URL>+Prefix as their base URL.
const Prefix = "/api"

// Server is an http.Handler serving the fake backend.
type Server struct {
	router *mux.Router
	secret []byte

	mu           sync.Mutex
	nextID       int64
	users        map[string]*account
	categories   []record
	courses      []record
	students     []record
	enrollments  []record
	jobs         []record
	applications []record
	certificates []record
}

// New returns a Server seeded with fixtures. Tokens are signed with secret;
// an empty secret gets a fixed development key.
func New(secret string) *Server {
	if secret == "" {
		secret = "fakeapi-development-secret"
	}
	s := &Server{secret: []byte(secret), nextID: 100}
	s.seed()
	s.router = s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() *mux.Router {
	router := mux.NewRouter()
	router.Use(recoverMiddleware)

	api := router.PathPrefix(Prefix).Subrouter()

	// Token endpoints
	api.HandleFunc("/token/", s.obtainToken).Methods(http.MethodPost)
	api.HandleFunc("/token/refresh/", s.refreshToken).Methods(http.MethodPost)

	// Accounts
	api.HandleFunc("/accounts/users/register/", s.register).Methods(http.MethodPost)
	api.HandleFunc("/accounts/users/me/", s.requireAuth(s.me)).Methods(http.MethodGet)
	api.HandleFunc("/accounts/users/update_profile/", s.requireAuth(s.updateProfile)).Methods(http.MethodPut, http.MethodPatch)

	// Courses; search and popular are registered before the numeric id route
	api.HandleFunc("/courses/categories/", s.listCategories).Methods(http.MethodGet)
	api.HandleFunc("/courses/courses/", s.listCourses).Methods(http.MethodGet)
	api.HandleFunc("/courses/courses/search/", s.searchCourses).Methods(http.MethodGet)
	api.HandleFunc("/courses/courses/popular/", s.popularCourses).Methods(http.MethodGet)
	api.HandleFunc("/courses/courses/{id:[0-9]+}/", s.getCourse).Methods(http.MethodGet)

	// Students
	api.HandleFunc("/students/students/", s.requireAuth(s.listStudents)).Methods(http.MethodGet)
	api.HandleFunc("/students/students/me/enrollments/", s.requireAuth(s.myEnrollments)).Methods(http.MethodGet)

	// Employers
	api.HandleFunc("/employers/job-postings/", s.listJobs).Methods(http.MethodGet)
	api.HandleFunc("/employers/job-postings/{id:[0-9]+}/", s.getJob).Methods(http.MethodGet)
	api.HandleFunc("/employers/job-postings/{id:[0-9]+}/apply/", s.requireAuth(s.applyForJob)).Methods(http.MethodPost)

	// Certifications
	api.HandleFunc("/certifications/certificates/", s.requireAuth(s.listCertificates)).Methods(http.MethodGet)
	api.HandleFunc("/certifications/certificates/verify/", s.verifyCertificate).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not found.")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, `Method "`+r.Method+`" not allowed.`)
	})
	return router
}

// ListenAndServe serves s on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("fake API server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down fake API server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(ctxShutdown)
	case err := <-errCh:
		return err
	}
}
