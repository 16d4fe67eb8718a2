package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListStudents(t *testing.T) {
	t.Parallel()
	r := &fakeRequester{body: `[{"id":1,"student_id":"STU-001","full_name":"Grace A"}]`}
	ss, err := ListStudents(context.Background(), r, Params{"is_active": "true"})
	require.NoError(t, err)
	assert.Equal(t, "STU-001", ss[0].StudentID)
	assert.Equal(t, "/students/students/?is_active=true", r.last().path)
}

func TestMyEnrollments(t *testing.T) {
	t.Parallel()
	r := &fakeRequester{body: `[{"id":2,"course":4,"course_title":"Elderly Care","status":"enrolled"}]`}
	es, err := MyEnrollments(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, "enrolled", es[0].Status)
	assert.Equal(t, MyEnrollmentsPath, r.last().path)
}
