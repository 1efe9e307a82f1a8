package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginationParamsValidateClampsRanges(t *testing.T) {
	p := &PaginationParams{Page: 0, PerPage: 500}
	p.Validate()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.PerPage)
	assert.Equal(t, 0, p.Offset())

	p = &PaginationParams{Page: 3, PerPage: 20}
	p.Validate()
	assert.Equal(t, 40, p.Offset())
}

func TestNewPagination(t *testing.T) {
	pg := NewPagination(2, 15, 31)
	assert.Equal(t, 3, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)
}

func TestCursorRoundTrip(t *testing.T) {
	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	encoded := EncodeCursor("abc-123", created)

	params := &CursorParams{Cursor: encoded}
	cursor, err := params.DecodeCursor()
	require.NoError(t, err)
	assert.Equal(t, "abc-123", cursor.ID)
	assert.True(t, cursor.CreatedAt.Equal(created))
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	params := &CursorParams{Cursor: "not base64!!"}
	_, err := params.DecodeCursor()
	assert.Error(t, err)

	// an empty cursor means "first page", not an error
	params = &CursorParams{}
	cursor, err := params.DecodeCursor()
	require.NoError(t, err)
	assert.Nil(t, cursor)
}

func TestNewCursorPaginationTrimsOverfetch(t *testing.T) {
	now := time.Now()
	items := []string{"a", "b", "c", "d"} // limit+1 fetched

	meta, trimmed := NewCursorPagination(items, 3,
		func(s string) string { return s },
		func(string) time.Time { return now },
	)

	assert.Len(t, trimmed, 3)
	assert.True(t, meta.HasNext)
	require.NotNil(t, meta.NextCursor)
	require.NotNil(t, meta.PrevCursor)

	meta, trimmed = NewCursorPagination(items[:2], 3,
		func(s string) string { return s },
		func(string) time.Time { return now },
	)
	assert.Len(t, trimmed, 2)
	assert.False(t, meta.HasNext)
}
