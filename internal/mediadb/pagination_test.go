package mediadb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPageNormalize(t *testing.T) {
	page := Page{}.Normalize()
	require.Equal(t, uint32(DefaultPage), page.Number)
	require.Equal(t, uint32(DefaultPageSize), page.Size)

	page = Page{Number: 3, Size: 25}.Normalize()
	require.Equal(t, uint32(3), page.Number)
	require.Equal(t, uint32(25), page.Size)
}

func TestPageLimitOffset(t *testing.T) {
	limit, offset := Page{}.limitOffset()
	require.Equal(t, int64(10), limit)
	require.Equal(t, int64(0), offset)

	limit, offset = Page{Number: 4, Size: 25}.limitOffset()
	require.Equal(t, int64(25), limit)
	require.Equal(t, int64(75), offset)
}

func TestEscapeLike(t *testing.T) {
	require.Equal(t, "plain name", escapeLike("plain name"))
	require.Equal(t, `100\% cotton`, escapeLike("100% cotton"))
	require.Equal(t, `a\_b`, escapeLike("a_b"))
	require.Equal(t, `c:\\media`, escapeLike(`c:\media`))
}

func TestOrderClause(t *testing.T) {
	require.Equal(t,
		" ORDER BY m.created_at ASC, m.media_id ASC",
		Order{}.orderClause())
	require.Equal(t,
		" ORDER BY m.updated_at DESC, m.media_id ASC",
		Order{Field: OrderUpdatedAt, Descending: true}.orderClause())
	require.Equal(t,
		" ORDER BY m.name ASC, m.media_id ASC",
		Order{Field: OrderName}.orderClause())
}
