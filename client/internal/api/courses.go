package api

import (
	"context"

	"github.com/janz-emmanuel24/peer-standard-school-of-house-managers/client/internal/types"
)

const (
	CoursesPath        = "/courses/courses/"
	CourseSearchPath   = "/courses/courses/search/"
	PopularCoursesPath = "/courses/courses/popular/"
	CategoriesPath     = "/courses/categories/"
)

// CoursePath returns the detail path for a course.
func CoursePath(id int64) string { return CoursesPath + itoa(id) + "/" }

// ListCourses lists courses, filtered by params (e.g. status, category).
func ListCourses(ctx context.Context, r Requester, params Params) ([]types.Course, error) {
	return listOf[types.Course](ctx, r, WithQuery(CoursesPath, params))
}

// GetCourse retrieves a course with its modules.
func GetCourse(ctx context.Context, r Requester, id int64) (*types.Course, error) {
	var c types.Course
	if err := getInto(ctx, r, CoursePath(id), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// SearchCourses matches q against title, description and learning outcomes.
func SearchCourses(ctx context.Context, r Requester, q string) ([]types.Course, error) {
	return listOf[types.Course](ctx, r, WithQuery(CourseSearchPath, Params{"q": q}))
}

// PopularCourses returns the most enrolled courses.
func PopularCourses(ctx context.Context, r Requester) ([]types.Course, error) {
	return listOf[types.Course](ctx, r, PopularCoursesPath)
}

// ListCategories returns the course categories.
func ListCategories(ctx context.Context, r Requester) ([]types.CourseCategory, error) {
	return listOf[types.CourseCategory](ctx, r, CategoriesPath)
}

func listOf[T any](ctx context.Context, r Requester, path string) ([]T, error) {
	var l types.List[T]
	if err := getInto(ctx, r, path, &l); err != nil {
		return nil, err
	}
	return l.Items, nil
}
