package fakeapi

import (
	"encoding/json"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

// --------------------------------------------------------------------
// Tokens and accounts
// --------------------------------------------------------------------

// obtainToken POST /token/
func (s *Server) obtainToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "JSON parse error")
		return
	}
	if errs := required(map[string]string{"username": req.Username, "password": req.Password}); errs != nil {
		writeFieldErrors(w, errs)
		return
	}

	s.mu.Lock()
	acc, ok := s.users[req.Username]
	s.mu.Unlock()
	if !ok || acc.Password != req.Password {
		writeDetail(w, http.StatusUnauthorized, "No active account found with the given credentials")
		return
	}
	access, refresh, err := s.issue(acc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"access": access, "refresh": refresh})
}

// refreshToken POST /token/refresh/
func (s *Server) refreshToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Refresh string `json:"refresh"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "JSON parse error")
		return
	}
	if errs := required(map[string]string{"refresh": req.Refresh}); errs != nil {
		writeFieldErrors(w, errs)
		return
	}
	claims, err := s.parse(req.Refresh, "refresh")
	if err != nil {
		writeDetail(w, http.StatusUnauthorized, "Token is invalid or expired")
		return
	}
	acc := s.accountByID(claims.UserID)
	if acc == nil {
		writeDetail(w, http.StatusUnauthorized, "User not found")
		return
	}
	access, err := s.mint(acc, "access", accessLifetime)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"access": access})
}

// register POST /accounts/users/register/
func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username        string `json:"username"`
		Email           string `json:"email"`
		FirstName       string `json:"first_name"`
		LastName        string `json:"last_name"`
		Password        string `json:"password"`
		PasswordConfirm string `json:"password_confirm"`
		UserType        string `json:"user_type"`
		PhoneNumber     string `json:"phone_number"`
		Address         string `json:"address"`
		DateOfBirth     string `json:"date_of_birth"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "JSON parse error")
		return
	}
	if errs := required(map[string]string{
		"username": req.Username, "email": req.Email,
		"password": req.Password, "password_confirm": req.PasswordConfirm,
	}); errs != nil {
		writeFieldErrors(w, errs)
		return
	}
	if req.Password != req.PasswordConfirm {
		writeFieldErrors(w, map[string][]string{"non_field_errors": {"Passwords don't match"}})
		return
	}
	if req.UserType == "" {
		req.UserType = "student"
	}

	s.mu.Lock()
	if _, taken := s.users[req.Username]; taken {
		s.mu.Unlock()
		writeFieldErrors(w, map[string][]string{"username": {"A user with that username already exists."}})
		return
	}
	acc := &account{
		ID: s.newID(), Username: req.Username, Password: req.Password, Email: req.Email,
		FirstName: req.FirstName, LastName: req.LastName, UserType: req.UserType,
		PhoneNumber: req.PhoneNumber, Address: req.Address, DateOfBirth: req.DateOfBirth,
		DateJoined: time.Now(),
	}
	s.users[acc.Username] = acc
	s.mu.Unlock()

	access, refresh, err := s.issue(acc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, record{
		"user":   acc.record(),
		"tokens": map[string]string{"access": access, "refresh": refresh},
	})
}

// me GET /accounts/users/me/
func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, caller(r).record())
}

// updateProfile PUT|PATCH /accounts/users/update_profile/
func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req map[string]string
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "JSON parse error")
		return
	}
	if email, ok := req["email"]; ok && !strings.Contains(email, "@") {
		writeFieldErrors(w, map[string][]string{"email": {"Enter a valid email address."}})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acc := caller(r)
	for field, v := range req {
		switch field {
		case "first_name":
			acc.FirstName = v
		case "last_name":
			acc.LastName = v
		case "email":
			acc.Email = v
		case "phone_number":
			acc.PhoneNumber = v
		case "address":
			acc.Address = v
		case "date_of_birth":
			acc.DateOfBirth = v
		}
	}
	writeJSON(w, http.StatusOK, acc.profile())
}

// --------------------------------------------------------------------
// Courses
// --------------------------------------------------------------------

// listCategories GET /courses/categories/
func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeList(w, r, s.categories)
}

// listCourses GET /courses/courses/
func (s *Server) listCourses(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeList(w, r, filter(s.courses, r.URL.Query(), "category", "difficulty_level", "status"))
}

// searchCourses GET /courses/courses/search/?q=
func (s *Server) searchCourses(w http.ResponseWriter, r *http.Request) {
	q := strings.ToLower(r.URL.Query().Get("q"))
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]record, 0, len(s.courses))
	for _, c := range s.courses {
		text := strings.ToLower(c["title"].(string) + " " + c["description"].(string))
		if q == "" || strings.Contains(text, q) {
			out = append(out, c)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// popularCourses GET /courses/courses/popular/
func (s *Server) popularCourses(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]record(nil), s.courses...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i]["enrollment_count"].(int) > out[j]["enrollment_count"].(int)
	})
	if len(out) > 10 {
		out = out[:10]
	}
	writeJSON(w, http.StatusOK, out)
}

// getCourse GET /courses/courses/{id}/
func (s *Server) getCourse(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := findByID(s.courses, pathID(r))
	if c == nil {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	detail := record{
		"max_students": 30, "prerequisites": prerequisitesOf(c["id"].(int64)), "learning_outcomes": "Work to professional standards",
		"course_materials": nil, "created_by": int64(1), "instructor_count": 1,
		"updated_at": "2025-01-02T09:00:00.000000Z", "assessments": []record{}, "instructors": []record{},
		"modules": []record{
			{"id": int64(1), "title": "Orientation", "description": "Standards and safety", "order": 1,
				"duration_hours": 4, "content": "", "is_required": true, "created_at": "2025-01-02T09:00:00Z"},
		},
	}
	for k, v := range c {
		detail[k] = v
	}
	writeJSON(w, http.StatusOK, detail)
}

// --------------------------------------------------------------------
// Students
// --------------------------------------------------------------------

// listStudents GET /students/students/
func (s *Server) listStudents(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeList(w, r, filter(s.students, r.URL.Query(), "is_active", "gender", "education_level"))
}

// myEnrollments GET /students/students/me/enrollments/
func (s *Server) myEnrollments(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc := caller(r)
	if acc.StudentID == 0 {
		writeError(w, http.StatusNotFound, "Student profile not found")
		return
	}
	out := []record{}
	for _, e := range s.enrollments {
		if e["student"] == acc.StudentID {
			out = append(out, e)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// --------------------------------------------------------------------
// Employers
// --------------------------------------------------------------------

// listJobs GET /employers/job-postings/
func (s *Server) listJobs(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeList(w, r, filter(s.jobs, r.URL.Query(), "employment_type", "location", "status"))
}

// getJob GET /employers/job-postings/{id}/
func (s *Server) getJob(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j := findByID(s.jobs, pathID(r))
	if j == nil {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	writeJSON(w, http.StatusOK, j)
}

// applyForJob POST /employers/job-postings/{id}/apply/
func (s *Server) applyForJob(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CoverLetter      string  `json:"cover_letter"`
		ExpectedSalary   *string `json:"expected_salary"`
		AvailabilityDate *string `json:"availability_date"`
	}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusBadRequest, "JSON parse error")
			return
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acc := caller(r)
	if acc.StudentID == 0 {
		writeError(w, http.StatusBadRequest, "Student profile required")
		return
	}
	jobID := pathID(r)
	j := findByID(s.jobs, jobID)
	if j == nil {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	for _, a := range s.applications {
		if a["job_posting"] == jobID && a["student"] == acc.StudentID {
			writeError(w, http.StatusBadRequest, "Already applied for this job")
			return
		}
	}
	now := time.Now().UTC().Format(drfDateTime)
	app := record{
		"id": s.newID(), "job_posting": jobID, "job_title": j["title"], "employer_name": j["employer_name"],
		"student": acc.StudentID, "student_name": acc.fullName(), "status": "pending",
		"cover_letter": req.CoverLetter, "expected_salary": req.ExpectedSalary,
		"availability_date": req.AvailabilityDate, "notes": "", "days_since_applied": 0,
		"applied_at": now, "updated_at": now,
	}
	s.applications = append(s.applications, app)
	j["application_count"] = j["application_count"].(int) + 1
	writeJSON(w, http.StatusCreated, app)
}

// --------------------------------------------------------------------
// Certifications
// --------------------------------------------------------------------

// listCertificates GET /certifications/certificates/
func (s *Server) listCertificates(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc := caller(r)
	out := []record{}
	for _, c := range s.certificates {
		if acc.StudentID != 0 && c["student"] == acc.StudentID {
			out = append(out, c)
		}
	}
	writeList(w, r, out)
}

// verifyCertificate GET /certifications/certificates/verify/?code=
func (s *Server) verifyCertificate(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		writeError(w, http.StatusBadRequest, "Verification code required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.certificates {
		if c["verification_code"] == code {
			writeJSON(w, http.StatusOK, c)
			return
		}
	}
	writeError(w, http.StatusNotFound, "Invalid verification code")
}

// --------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

func required(fields map[string]string) map[string][]string {
	var errs map[string][]string
	for name, v := range fields {
		if v == "" {
			if errs == nil {
				errs = map[string][]string{}
			}
			errs[name] = []string{"This field is required."}
		}
	}
	return errs
}

// filter keeps records whose listed fields equal the non-empty query values.
func filter(records []record, q url.Values, fields ...string) []record {
	out := make([]record, 0, len(records))
	for _, r := range records {
		keep := true
		for _, f := range fields {
			if want := q.Get(f); want != "" && !matches(r, f, want) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, r)
		}
	}
	return out
}

// writeList answers with a bare array, or with a paginated object when the
// request carries a page parameter.
func writeList(w http.ResponseWriter, r *http.Request, items []record) {
	q := r.URL.Query()
	if q.Get("page") == "" {
		writeJSON(w, http.StatusOK, items)
		return
	}
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		writeDetail(w, http.StatusNotFound, "Invalid page.")
		return
	}
	size := 10
	if v, err := strconv.Atoi(q.Get("page_size")); err == nil && v > 0 {
		size = v
	}
	start := (page - 1) * size
	if start > len(items) || (start == len(items) && page > 1) {
		writeDetail(w, http.StatusNotFound, "Invalid page.")
		return
	}
	end := min(start+size, len(items))

	link := func(p int) *string {
		u := *r.URL
		v := u.Query()
		v.Set("page", strconv.Itoa(p))
		u.RawQuery = v.Encode()
		s := u.String()
		return &s
	}
	var next, prev *string
	if end < len(items) {
		next = link(page + 1)
	}
	if page > 1 {
		prev = link(page - 1)
	}
	writeJSON(w, http.StatusOK, record{
		"count":    len(items),
		"next":     next,
		"previous": prev,
		"results":  items[start:end],
	})
}
