package client

import (
	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/client/internal/api"
	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/client/internal/types"
)

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	Credentials           = types.Credentials
	RegisterRequest       = types.RegisterRequest
	ProfileUpdate         = types.ProfileUpdate
	JobApplicationRequest = types.JobApplicationRequest

	// Domain entities
	User           = types.User
	Profile        = types.Profile
	CourseCategory = types.CourseCategory
	CourseModule   = types.CourseModule
	Course         = types.Course
	Student        = types.Student
	Enrollment     = types.Enrollment
	JobPosting     = types.JobPosting
	JobApplication = types.JobApplication
	Certificate    = types.Certificate

	// Responses
	TokenPair        = types.TokenPair
	RegisterResponse = types.RegisterResponse

	// Params is a query mapping for list endpoints; empty values are dropped.
	Params = api.Params
)

// Errors re-exported in errors.go
