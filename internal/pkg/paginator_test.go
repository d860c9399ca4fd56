package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage_Defaults(t *testing.T) {
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 1, ParsePage("0"))
	assert.Equal(t, 1, ParsePage("-3"))
	assert.Equal(t, 7, ParsePage("7"))
}

func TestPaginate_SplitsThirteenPosts(t *testing.T) {
	// 13 条、每页 10 条：第一页满页，第二页 3 条
	page, offset := Paginate(13, 1)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 2, page.NumPages)
	assert.True(t, page.HasNext)
	assert.False(t, page.HasPrevious)

	page, offset = Paginate(13, 2)
	assert.Equal(t, 10, offset)
	assert.Equal(t, 2, page.Number)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrevious)
}

func TestPaginate_ClampsToLastPage(t *testing.T) {
	page, offset := Paginate(13, 99)
	assert.Equal(t, 2, page.Number)
	assert.Equal(t, 10, offset)
}

func TestPaginate_EmptyListKeepsOnePage(t *testing.T) {
	// 空列表不是错误，仍然有一个空页
	page, offset := Paginate(0, 2)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.NumPages)
	assert.Equal(t, 0, offset)
	assert.False(t, page.HasNext)
	assert.False(t, page.HasPrevious)
}

func TestPaginate_ExactMultiple(t *testing.T) {
	page, _ := Paginate(20, 2)
	assert.Equal(t, 2, page.NumPages)
	assert.False(t, page.HasNext)
}
