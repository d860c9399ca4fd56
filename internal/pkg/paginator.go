package pkg

import "strconv"

// PostsPerPage 列表页固定大小
const PostsPerPage = 10

// Page 分页元信息，随列表一起返回给渲染层
type Page struct {
	Number      int   `json:"number"`
	NumPages    int   `json:"num_pages"`
	Count       int64 `json:"count"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// ParsePage page参数解析，缺省或非法时回退到第一页
func ParsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Paginate 计算分页窗口，越界页码收敛到最后一页；空列表也保留一个空页
func Paginate(count int64, number int) (Page, int) {
	numPages := int((count + PostsPerPage - 1) / PostsPerPage)
	if numPages < 1 {
		numPages = 1
	}
	if number < 1 {
		number = 1
	}
	if number > numPages {
		number = numPages
	}
	offset := (number - 1) * PostsPerPage
	return Page{
		Number:      number,
		NumPages:    numPages,
		Count:       count,
		HasNext:     number < numPages,
		HasPrevious: number > 1,
	}, offset
}
