package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_BareArray(t *testing.T) {
	t.Parallel()
	var l List[Course]
	require.NoError(t, json.Unmarshal([]byte(`[{"id":1,"title":"Laundry"},{"id":2,"title":"Childcare"}]`), &l))
	assert.Len(t, l.Items, 2)
	assert.Equal(t, 2, l.Count)
	assert.Nil(t, l.Next)
	assert.Equal(t, "Childcare", l.Items[1].Title)
}

func TestList_Paginated(t *testing.T) {
	t.Parallel()
	body := `{"count":41,"next":"http://x/api/courses/courses/?page=2","previous":null,"results":[{"id":7,"title":"Cooking"}]}`
	var l List[Course]
	require.NoError(t, json.Unmarshal([]byte(body), &l))
	require.Len(t, l.Items, 1)
	assert.Equal(t, 41, l.Count)
	require.NotNil(t, l.Next)
	assert.Equal(t, "http://x/api/courses/courses/?page=2", *l.Next)
	assert.Nil(t, l.Previous)
}

func TestList_EmptyArray(t *testing.T) {
	t.Parallel()
	var l List[Certificate]
	require.NoError(t, json.Unmarshal([]byte(`[]`), &l))
	assert.Empty(t, l.Items)
	assert.Equal(t, 0, l.Count)
}

func TestList_Rejects(t *testing.T) {
	t.Parallel()
	for _, body := range []string{`null`, `{"detail":"x"}`, `{"results":"nope"}`, `"str"`} {
		var l List[Course]
		assert.Error(t, json.Unmarshal([]byte(body), &l), body)
	}
}

func TestDomainDates(t *testing.T) {
	t.Parallel()
	body := `{"id":3,"certificate_number":"PSS-2025-0003","issue_date":"2025-03-14","expiry_date":null,"created_at":"2025-03-14T09:30:00Z"}`
	var c Certificate
	require.NoError(t, json.Unmarshal([]byte(body), &c))
	require.NotNil(t, c.IssueDate)
	assert.Equal(t, "2025-03-14", c.IssueDate.String())
	assert.Nil(t, c.ExpiryDate)
	require.NotNil(t, c.CreatedAt)
	assert.NoError(t, ValidateResponse(&c))
}
