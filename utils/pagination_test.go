package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	p := Paginate(2, 10, 35)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 10, p.Offset())
	assert.Equal(t, 4, p.TotalPages)
	assert.True(t, p.HasPrev())
	assert.True(t, p.HasNext())
	assert.Equal(t, 1, p.PrevPage())
	assert.Equal(t, 3, p.NextPage())
}

func TestPaginateNormalizesPage(t *testing.T) {
	p := Paginate(0, 10, 35)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.Offset())
	assert.False(t, p.HasPrev())
}

func TestPaginateEmptyCollection(t *testing.T) {
	p := Paginate(1, 10, 0)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNext())
}

func TestPaginatePastEnd(t *testing.T) {
	p := Paginate(9, 10, 35)
	assert.Equal(t, 9, p.Page)
	assert.Equal(t, 80, p.Offset())
	assert.False(t, p.HasNext())
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, 3, ParsePage("3"))
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 1, ParsePage("0"))
	assert.Equal(t, 1, ParsePage("-1"))
}

func TestLastPage(t *testing.T) {
	assert.Equal(t, 1, LastPage(0, 10))
	assert.Equal(t, 1, LastPage(10, 10))
	assert.Equal(t, 2, LastPage(11, 10))
	assert.Equal(t, 4, LastPage(35, 10))
}
