package types

import "github.com/go-openapi/strfmt"

// ------------------------------
// Core Domain Entities
// ------------------------------

// User is the account returned by /accounts/users/me/.
type User struct {
	ID             int64            `json:"id" validate:"required"`
	Username       string           `json:"username" validate:"required"`
	Email          string           `json:"email"`
	FirstName      string           `json:"first_name"`
	LastName       string           `json:"last_name"`
	FullName       string           `json:"full_name"`
	UserType       string           `json:"user_type"`
	PhoneNumber    string           `json:"phone_number"`
	Address        string           `json:"address"`
	DateOfBirth    *strfmt.Date     `json:"date_of_birth,omitempty"`
	ProfilePicture *string          `json:"profile_picture,omitempty"`
	IsVerified     bool             `json:"is_verified"`
	DateJoined     *strfmt.DateTime `json:"date_joined,omitempty"`
	LastLogin      *strfmt.DateTime `json:"last_login,omitempty"`
}

// Profile is the editable subset of a user echoed by update_profile.
type Profile struct {
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	Email       string       `json:"email"`
	PhoneNumber string       `json:"phone_number"`
	Address     string       `json:"address"`
	DateOfBirth *strfmt.Date `json:"date_of_birth,omitempty"`
}

// CourseCategory groups courses.
type CourseCategory struct {
	ID          int64            `json:"id" validate:"required"`
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description"`
	IsActive    bool             `json:"is_active"`
	CourseCount int              `json:"course_count"`
	CreatedAt   *strfmt.DateTime `json:"created_at,omitempty"`
}

// CourseModule is one unit of a course's syllabus.
type CourseModule struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Order         int    `json:"order"`
	DurationHours int    `json:"duration_hours"`
	IsRequired    bool   `json:"is_required"`
}

// Course is returned by both the list and the detail endpoints; detail-only
// fields stay zero on list responses.
type Course struct {
	ID               int64            `json:"id" validate:"required"`
	Title            string           `json:"title" validate:"required"`
	Description      string           `json:"description"`
	Category         *int64           `json:"category,omitempty"`
	CategoryName     *string          `json:"category_name,omitempty"`
	DifficultyLevel  string           `json:"difficulty_level"`
	DurationWeeks    int              `json:"duration_weeks"`
	TotalHours       int              `json:"total_hours"`
	MaxStudents      int              `json:"max_students,omitempty"`
	TuitionFee       string           `json:"tuition_fee"`
	Status           string           `json:"status"`
	Prerequisites    []int64          `json:"prerequisites,omitempty"`
	LearningOutcomes string           `json:"learning_outcomes,omitempty"`
	CreatedBy        *int64           `json:"created_by,omitempty"`
	EnrollmentCount  int              `json:"enrollment_count"`
	InstructorCount  int              `json:"instructor_count,omitempty"`
	Modules          []CourseModule   `json:"modules,omitempty"`
	CreatedAt        *strfmt.DateTime `json:"created_at,omitempty"`
	UpdatedAt        *strfmt.DateTime `json:"updated_at,omitempty"`
}

// Student is a trainee profile.
type Student struct {
	ID                           int64            `json:"id" validate:"required"`
	User                         int64            `json:"user"`
	StudentID                    string           `json:"student_id" validate:"required"`
	FullName                     string           `json:"full_name"`
	Email                        string           `json:"email"`
	PhoneNumber                  string           `json:"phone_number"`
	Address                      string           `json:"address"`
	DateOfBirth                  *strfmt.Date     `json:"date_of_birth,omitempty"`
	ProfilePicture               *string          `json:"profile_picture,omitempty"`
	Gender                       string           `json:"gender"`
	MaritalStatus                string           `json:"marital_status"`
	EmergencyContactName         string           `json:"emergency_contact_name"`
	EmergencyContactPhone        string           `json:"emergency_contact_phone"`
	EmergencyContactRelationship string           `json:"emergency_contact_relationship"`
	EducationLevel               string           `json:"education_level"`
	PreviousExperience           string           `json:"previous_experience"`
	LanguagesSpoken              string           `json:"languages_spoken"`
	SpecialSkills                string           `json:"special_skills"`
	IsActive                     bool             `json:"is_active"`
	EnrollmentDate               *strfmt.DateTime `json:"enrollment_date,omitempty"`
	EnrollmentCount              int              `json:"enrollment_count"`
	CertificateCount             int              `json:"certificate_count"`
}

// Enrollment links a student to a course.
type Enrollment struct {
	ID                     int64            `json:"id" validate:"required"`
	Student                int64            `json:"student"`
	StudentName            string           `json:"student_name"`
	Course                 int64            `json:"course" validate:"required"`
	CourseTitle            string           `json:"course_title"`
	Status                 string           `json:"status"`
	EnrollmentDate         *strfmt.DateTime `json:"enrollment_date,omitempty"`
	StartDate              *strfmt.Date     `json:"start_date,omitempty"`
	ExpectedCompletionDate *strfmt.Date     `json:"expected_completion_date,omitempty"`
	ActualCompletionDate   *strfmt.Date     `json:"actual_completion_date,omitempty"`
	// TuitionPaid is the amount paid so far as a decimal string, e.g. "150000.00".
	TuitionPaid            string           `json:"tuition_paid"`
	Notes                  string           `json:"notes"`
	ProgressPercentage     int              `json:"progress_percentage"`
}

// JobPosting is an employer's vacancy.
type JobPosting struct {
	ID                  int64            `json:"id" validate:"required"`
	Employer            int64            `json:"employer"`
	EmployerName        string           `json:"employer_name"`
	Title               string           `json:"title" validate:"required"`
	Description         string           `json:"description"`
	Requirements        string           `json:"requirements"`
	Responsibilities    string           `json:"responsibilities"`
	RequiredSkills      string           `json:"required_skills"`
	Benefits            string           `json:"benefits"`
	EmploymentType      string           `json:"employment_type"`
	SalaryMin           *string          `json:"salary_min,omitempty"`
	SalaryMax           *string          `json:"salary_max,omitempty"`
	Location            string           `json:"location"`
	StartDate           *strfmt.Date     `json:"start_date,omitempty"`
	DurationMonths      *int             `json:"duration_months,omitempty"`
	Status              string           `json:"status"`
	IsUrgent            bool             `json:"is_urgent"`
	ApplicationDeadline *strfmt.Date     `json:"application_deadline,omitempty"`
	ApplicationCount    int              `json:"application_count"`
	DaysSincePosted     int              `json:"days_since_posted"`
	CreatedAt           *strfmt.DateTime `json:"created_at,omitempty"`
}

// JobApplication is created by applying for a posting.
type JobApplication struct {
	ID               int64            `json:"id" validate:"required"`
	JobPosting       int64            `json:"job_posting" validate:"required"`
	JobTitle         string           `json:"job_title"`
	EmployerName     string           `json:"employer_name"`
	Student          int64            `json:"student"`
	StudentName      string           `json:"student_name"`
	Status           string           `json:"status"`
	CoverLetter      string           `json:"cover_letter"`
	ExpectedSalary   *string          `json:"expected_salary,omitempty"`
	AvailabilityDate *strfmt.Date     `json:"availability_date,omitempty"`
	DaysSinceApplied int              `json:"days_since_applied"`
	AppliedAt        *strfmt.DateTime `json:"applied_at,omitempty"`
	UpdatedAt        *strfmt.DateTime `json:"updated_at,omitempty"`
}

// Certificate is an issued course certificate.
type Certificate struct {
	ID                int64            `json:"id" validate:"required"`
	Student           int64            `json:"student"`
	StudentName       string           `json:"student_name"`
	Course            int64            `json:"course"`
	CourseTitle       string           `json:"course_title"`
	CertificateNumber string           `json:"certificate_number" validate:"required"`
	Template          *int64           `json:"template,omitempty"`
	TemplateName      *string          `json:"template_name,omitempty"`
	Status            string           `json:"status"`
	IssueDate         *strfmt.Date     `json:"issue_date,omitempty"`
	ExpiryDate        *strfmt.Date     `json:"expiry_date,omitempty"`
	FinalGrade        string           `json:"final_grade"`
	OverallScore      *string          `json:"overall_score,omitempty"`
	VerificationCode  string           `json:"verification_code"`
	VerificationURL   string           `json:"verification_url"`
	IssuedByName      string           `json:"issued_by_name"`
	IsExpired         bool             `json:"is_expired"`
	CreatedAt         *strfmt.DateTime `json:"created_at,omitempty"`
}
