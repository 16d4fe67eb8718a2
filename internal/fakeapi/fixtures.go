package fakeapi

import (
	"fmt"
	"strings"
	"time"
)

type record = map[string]any

type account struct {
	ID          int64
	Username    string
	Password    string
	Email       string
	FirstName   string
	LastName    string
	UserType    string
	PhoneNumber string
	Address     string
	DateOfBirth string
	StudentID   int64 // student profile id, 0 for non-students
	DateJoined  time.Time
}

func (a *account) fullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

func (a *account) record() record {
	r := record{
		"id":              a.ID,
		"username":        a.Username,
		"email":           a.Email,
		"first_name":      a.FirstName,
		"last_name":       a.LastName,
		"full_name":       a.fullName(),
		"user_type":       a.UserType,
		"phone_number":    a.PhoneNumber,
		"address":         a.Address,
		"is_verified":     true,
		"date_joined":     a.DateJoined.UTC().Format(time.RFC3339),
		"profile_picture": nil,
	}
	if a.DateOfBirth != "" {
		r["date_of_birth"] = a.DateOfBirth
	}
	return r
}

func (a *account) profile() record {
	r := record{
		"first_name":   a.FirstName,
		"last_name":    a.LastName,
		"email":        a.Email,
		"phone_number": a.PhoneNumber,
		"address":      a.Address,
	}
	if a.DateOfBirth != "" {
		r["date_of_birth"] = a.DateOfBirth
	}
	return r
}

// Fixture accounts. Passwords are plain text; this is a test double.
const (
	StudentUsername  = "alice"
	StudentPassword  = "pw"
	EmployerUsername = "hotelgroup"
	EmployerPassword = "pw"

	// VerificationCode belongs to the fixture student's certificate.
	VerificationCode = "PSS-VERIFY-0001"
)

func (s *Server) seed() {
	joined := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	s.users = map[string]*account{
		StudentUsername: {
			ID: 1, Username: StudentUsername, Password: StudentPassword,
			Email: "alice@example.com", FirstName: "Alice", LastName: "Namuli",
			UserType: "student", PhoneNumber: "+256700000001", Address: "Kampala",
			DateOfBirth: "2001-04-12", StudentID: 1, DateJoined: joined,
		},
		EmployerUsername: {
			ID: 2, Username: EmployerUsername, Password: EmployerPassword,
			Email: "hr@hotelgroup.example", FirstName: "Hotel", LastName: "Group",
			UserType: "employer", DateJoined: joined,
		},
	}

	s.categories = []record{
		{"id": int64(1), "name": "Housekeeping", "description": "Cleaning and home care", "is_active": true, "course_count": 2, "created_at": "2025-01-02T09:00:00Z"},
		{"id": int64(2), "name": "Culinary", "description": "Cooking and kitchen management", "is_active": true, "course_count": 1, "created_at": "2025-01-02T09:00:00Z"},
	}

	s.courses = []record{
		course(1, "Professional Housekeeping", "Room care, laundry and hygiene standards", 1, "Housekeeping", "beginner", 8, "450000.00", 24),
		course(2, "Advanced Laundry Care", "Fabric handling, stain removal and ironing", 1, "Housekeeping", "intermediate", 4, "250000.00", 9),
		course(3, "Home Cooking Essentials", "Meal planning and safe food preparation", 2, "Culinary", "beginner", 6, "380000.00", 15),
	}

	s.students = []record{
		{
			"id": int64(1), "user": int64(1), "student_id": "PSS2025001", "full_name": "Alice Namuli",
			"email": "alice@example.com", "phone_number": "+256700000001", "gender": "female",
			"address": "Plot 12, Ntinda", "date_of_birth": "1998-05-04", "profile_picture": nil,
			"marital_status": "single", "emergency_contact_name": "Grace Namuli",
			"emergency_contact_phone": "+256700000009", "emergency_contact_relationship": "mother",
			"previous_experience": "", "special_skills": "", "medical_conditions": "",
			"education_level": "secondary", "languages_spoken": "English, Luganda", "is_active": true,
			"enrollment_date": "2025-01-06T08:30:00.123456Z", "enrollment_count": 2, "certificate_count": 1,
		},
	}

	s.enrollments = []record{
		{
			"id": int64(1), "student": int64(1), "student_name": "Alice Namuli", "course": int64(1),
			"course_title": "Professional Housekeeping", "status": "completed",
			"enrollment_date": "2025-01-06T08:30:00Z", "start_date": "2025-01-13",
			"expected_completion_date": "2025-03-10", "actual_completion_date": "2025-03-07",
			"tuition_paid": "450000.00", "notes": "", "progress_percentage": 100,
		},
		{
			"id": int64(2), "student": int64(1), "student_name": "Alice Namuli", "course": int64(3),
			"course_title": "Home Cooking Essentials", "status": "active",
			"enrollment_date": "2025-03-20T08:30:00Z", "start_date": "2025-04-01",
			"expected_completion_date": "2025-05-13", "actual_completion_date": nil,
			"tuition_paid": "0.00", "notes": "", "progress_percentage": 0,
		},
	}

	s.jobs = []record{
		job(1, "Live-in Housekeeper", "full_time", "Kampala", "600000.00", "900000.00", true),
		job(2, "Part-time Cook", "part_time", "Entebbe", "300000.00", "450000.00", false),
	}

	s.certificates = []record{
		{
			"id": int64(1), "student": int64(1), "student_name": "Alice Namuli", "course": int64(1),
			"course_title": "Professional Housekeeping", "certificate_number": "PSS-2025-0001",
			"status": "issued", "issue_date": "2025-03-14", "expiry_date": nil, "final_grade": "A",
			"overall_score": "91.50", "verification_code": VerificationCode,
			"verification_url": "/certifications/verify/?code=" + VerificationCode,
			"template": int64(1), "template_name": "Standard", "issued_by_name": "School Registrar",
			"is_expired": false, "created_at": "2025-03-14T09:30:00Z",
		},
	}
}

// coursePrerequisites backs the detail-only prerequisites list.
var coursePrerequisites = map[int64][]int64{2: {1}}

func prerequisitesOf(id int64) []int64 {
	if ids, ok := coursePrerequisites[id]; ok {
		return ids
	}
	return []int64{}
}

func course(id int64, title, desc string, category int64, categoryName, level string, weeks int, fee string, enrolled int) record {
	return record{
		"id": id, "title": title, "description": desc, "category": category,
		"category_name": categoryName, "difficulty_level": level, "duration_weeks": weeks,
		"total_hours": weeks * 10, "tuition_fee": fee, "status": "published",
		"enrollment_count": enrolled, "created_at": "2025-01-02T09:00:00Z",
	}
}

func job(id int64, title, kind, location, salaryMin, salaryMax string, urgent bool) record {
	return record{
		"id": id, "employer": int64(1), "employer_name": "Hotel Group Ltd", "title": title,
		"description": title + " needed", "requirements": "Certificate from an accredited school",
		"responsibilities": "Daily household duties", "required_skills": "Housekeeping",
		"preferred_qualifications": "", "benefits": "", "duration_months": nil,
		"employment_type": kind, "salary_min": salaryMin, "salary_max": salaryMax,
		"location": location, "status": "active", "is_urgent": urgent,
		"application_count": 0, "days_since_posted": 3, "created_at": "2025-04-01T10:00:00.482915Z",
		"updated_at": "2025-04-01T10:00:00.482915Z",
	}
}

func (s *Server) accountByID(id int64) *account {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.users {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (s *Server) newID() int64 {
	s.nextID++
	return s.nextID
}

func findByID(records []record, id int64) record {
	for _, r := range records {
		if r["id"] == id {
			return r
		}
	}
	return nil
}

// matches reports whether r's field equals want, comparing textual forms.
func matches(r record, field, want string) bool {
	return fmt.Sprint(r[field]) == want
}
