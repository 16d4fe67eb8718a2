package types

import "github.com/go-openapi/strfmt"

// ------------------------------
// Request Types
// ------------------------------

// Credentials is the body posted to /token/.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest is the body posted to /token/refresh/.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// RegisterRequest holds parameters for a new account.
type RegisterRequest struct {
	Username        string       `json:"username"`
	Email           string       `json:"email"`
	FirstName       string       `json:"first_name,omitempty"`
	LastName        string       `json:"last_name,omitempty"`
	Password        string       `json:"password"`
	PasswordConfirm string       `json:"password_confirm"`
	UserType        string       `json:"user_type,omitempty"`
	PhoneNumber     string       `json:"phone_number,omitempty"`
	Address         string       `json:"address,omitempty"`
	DateOfBirth     *strfmt.Date `json:"date_of_birth,omitempty"`
}

// ProfileUpdate holds the fields sent to update_profile. Empty fields are
// omitted so the backend leaves them unchanged.
type ProfileUpdate struct {
	FirstName   string       `json:"first_name,omitempty"`
	LastName    string       `json:"last_name,omitempty"`
	Email       string       `json:"email,omitempty"`
	PhoneNumber string       `json:"phone_number,omitempty"`
	Address     string       `json:"address,omitempty"`
	DateOfBirth *strfmt.Date `json:"date_of_birth,omitempty"`
}

// JobApplicationRequest is the body posted to a posting's apply action.
type JobApplicationRequest struct {
	CoverLetter      string       `json:"cover_letter,omitempty"`
	ExpectedSalary   string       `json:"expected_salary,omitempty"`
	AvailabilityDate *strfmt.Date `json:"availability_date,omitempty"`
}
