package api

import (
	"context"

	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/client/internal/types"
)

const (
	StudentsPath      = "/students/students/"
	MyEnrollmentsPath = "/students/students/me/enrollments/"
)

// ListStudents lists the students visible to the caller.
func ListStudents(ctx context.Context, r Requester, params Params) ([]types.Student, error) {
	return listOf[types.Student](ctx, r, WithQuery(StudentsPath, params))
}

// MyEnrollments lists the caller's own enrollments.
func MyEnrollments(ctx context.Context, r Requester) ([]types.Enrollment, error) {
	return listOf[types.Enrollment](ctx, r, MyEnrollmentsPath)
}
