package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"yatube/internal/middleware"
	"yatube/internal/model"
	"yatube/internal/pkg"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeAuth 测试用：直接注入登录态
func fakeAuth(uid uint64, username string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, uid)
		c.Set(middleware.ContextUsernameKey, username)
	}
}

type handlerEnv struct {
	posts    *service.MockPostStore
	groups   *service.MockGroupStore
	users    *service.MockUserStore
	comments *service.MockCommentStore
	follows  *service.MockFollowStore
	router   *gin.Engine
}

func newHandlerEnv(uid uint64, username string) *handlerEnv {
	gin.SetMode(gin.TestMode)

	env := &handlerEnv{
		posts:    new(service.MockPostStore),
		groups:   new(service.MockGroupStore),
		users:    new(service.MockUserStore),
		comments: new(service.MockCommentStore),
		follows:  new(service.MockFollowStore),
	}

	query := service.NewQueryService(env.posts, env.groups, env.users, env.comments, env.follows, nil)
	authoring := service.NewPostService(env.posts, env.groups, env.comments, nil)
	h := NewPostHandler(query, authoring, nil)

	r := gin.New()
	r.GET("/", h.Index)
	r.GET("/group/:slug/", h.GroupList)
	r.GET("/profile/:username/", h.Profile)
	r.GET("/posts/:id/", h.Detail)

	authed := r.Group("/", fakeAuth(uid, username))
	authed.GET("/create/", h.CreateForm)
	authed.POST("/create/", h.Create)
	authed.GET("/posts/:id/edit/", h.EditForm)
	authed.POST("/posts/:id/edit/", h.Edit)
	authed.POST("/posts/:id/comment/", h.AddComment)
	authed.GET("/follow/", h.Feed)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "page not found"})
	})

	env.router = r
	return env
}

func (e *handlerEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *handlerEnv) postForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestIndex_ContextMapping(t *testing.T) {
	env := newHandlerEnv(0, "")
	env.posts.On("CountAll").Return(int64(1), nil)
	env.posts.On("ListAll", 0, pkg.PostsPerPage).Return([]model.Post{{ID: 1, AuthorID: 1, Text: "hello"}}, nil)

	w := env.get(t, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	pageObj, ok := body["page_obj"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, pageObj["posts"], 1)
	assert.Equal(t, float64(1), pageObj["number"])
}

func TestGroupList_UnknownSlugIs404(t *testing.T) {
	env := newHandlerEnv(0, "")
	env.groups.On("FindBySlug", "nope").Return(nil, gorm.ErrRecordNotFound)

	w := env.get(t, "/group/nope/")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGroupList_FreshPostAtHead(t *testing.T) {
	env := newHandlerEnv(0, "")
	env.groups.On("FindBySlug", "go").Return(&model.Group{ID: 1, Slug: "go", Title: "Go"}, nil)
	env.posts.On("CountByGroup", uint64(1)).Return(int64(2), nil)
	env.posts.On("ListByGroup", uint64(1), 0, pkg.PostsPerPage).Return([]model.Post{
		{ID: 2, Text: "T"},
		{ID: 1, Text: "older"},
	}, nil)

	w := env.get(t, "/group/go/")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "go", body["group"].(map[string]any)["Slug"])
	posts := body["page_obj"].(map[string]any)["posts"].([]any)
	assert.Equal(t, "T", posts[0].(map[string]any)["Text"])
}

func TestDetail_ContextMapping(t *testing.T) {
	env := newHandlerEnv(0, "")
	env.posts.On("FindByID", uint64(1)).Return(&model.Post{ID: 1, AuthorID: 2, Text: "hello"}, nil)
	env.posts.On("CountByAuthor", uint64(2)).Return(int64(5), nil)
	env.comments.On("ListByPost", uint64(1)).Return([]model.Comment{{ID: 1, Text: "hi"}}, nil)

	w := env.get(t, "/posts/1/")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(5), body["count_posts"])
	assert.Len(t, body["comments"], 1)
	assert.Contains(t, body, "form")
	assert.Contains(t, body, "post")
}

func TestDetail_UnknownIDIs404(t *testing.T) {
	env := newHandlerEnv(0, "")
	env.posts.On("FindByID", uint64(404)).Return(nil, gorm.ErrRecordNotFound)

	w := env.get(t, "/posts/404/")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateForm_ContextMapping(t *testing.T) {
	env := newHandlerEnv(7, "anna")

	w := env.get(t, "/create/")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["is_edit"])
	assert.Contains(t, body, "form")
}

func TestCreate_RedirectsToProfile(t *testing.T) {
	env := newHandlerEnv(7, "anna")
	env.posts.On("Create", mock.MatchedBy(func(p *model.Post) bool {
		return p.AuthorID == 7 && p.Text == "T"
	})).Return(nil)

	w := env.postForm(t, "/create/", url.Values{"text": {"T"}})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/profile/anna/", w.Header().Get("Location"))
	env.posts.AssertExpectations(t)
}

func TestCreate_EmptyTextRerendersForm(t *testing.T) {
	env := newHandlerEnv(7, "anna")

	w := env.postForm(t, "/create/", url.Values{"text": {""}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	form := body["form"].(map[string]any)
	assert.NotEmpty(t, form["errors"])
	env.posts.AssertNotCalled(t, "Create", mock.Anything)
}

func TestEdit_NonAuthorRedirectsToDetail(t *testing.T) {
	env := newHandlerEnv(8, "mallory")
	env.posts.On("FindByID", uint64(1)).Return(&model.Post{ID: 1, AuthorID: 7, Text: "original"}, nil)

	w := env.postForm(t, "/posts/1/edit/", url.Values{"text": {"hacked"}})

	// 非作者静默跳回详情页，不报错也不落库
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/posts/1/", w.Header().Get("Location"))
	env.posts.AssertNotCalled(t, "Update", mock.Anything)
}

func TestEdit_AuthorRedirectsToDetail(t *testing.T) {
	env := newHandlerEnv(7, "anna")
	env.posts.On("FindByID", uint64(1)).Return(&model.Post{ID: 1, AuthorID: 7, Text: "old"}, nil)
	env.posts.On("Update", mock.Anything).Return(nil)

	w := env.postForm(t, "/posts/1/edit/", url.Values{"text": {"new"}})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/posts/1/", w.Header().Get("Location"))
}

func TestEditForm_AuthorGetsFilledForm(t *testing.T) {
	env := newHandlerEnv(7, "anna")
	env.posts.On("FindByID", uint64(1)).Return(&model.Post{ID: 1, AuthorID: 7, Text: "old"}, nil)
	env.posts.On("CountByAuthor", uint64(7)).Return(int64(1), nil)
	env.comments.On("ListByPost", uint64(1)).Return([]model.Comment{}, nil)

	w := env.get(t, "/posts/1/edit/")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["is_edit"])
	assert.Equal(t, "old", body["form"].(map[string]any)["text"])
}

func TestAddComment_RedirectsToDetail(t *testing.T) {
	env := newHandlerEnv(9, "bob")
	env.posts.On("FindByID", uint64(1)).Return(&model.Post{ID: 1, AuthorID: 2}, nil)
	env.comments.On("Create", mock.MatchedBy(func(c *model.Comment) bool {
		return c.PostID == 1 && c.AuthorID == 9
	})).Return(nil)

	w := env.postForm(t, "/posts/1/comment/", url.Values{"text": {"nice"}})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/posts/1/", w.Header().Get("Location"))
}

func TestAddComment_EmptyTextStillRedirects(t *testing.T) {
	env := newHandlerEnv(9, "bob")
	env.posts.On("FindByID", uint64(1)).Return(&model.Post{ID: 1, AuthorID: 2}, nil)

	w := env.postForm(t, "/posts/1/comment/", url.Values{"text": {""}})

	// 空评论不落库，但仍然跳回详情页
	assert.Equal(t, http.StatusFound, w.Code)
	env.comments.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAddComment_UnknownPostIs404(t *testing.T) {
	env := newHandlerEnv(9, "bob")
	env.posts.On("FindByID", uint64(404)).Return(nil, gorm.ErrRecordNotFound)

	w := env.postForm(t, "/posts/404/comment/", url.Values{"text": {"nice"}})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFeed_ContextMapping(t *testing.T) {
	env := newHandlerEnv(9, "bob")
	env.posts.On("CountFeed", uint64(9)).Return(int64(1), nil)
	env.posts.On("ListFeed", uint64(9), 0, pkg.PostsPerPage).Return([]model.Post{{ID: 1, Text: "followed"}}, nil)

	w := env.get(t, "/follow/")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["page_obj"].(map[string]any)["posts"], 1)
}

func TestUnknownRouteIs404(t *testing.T) {
	env := newHandlerEnv(0, "")

	w := env.get(t, "/definitely/not/a/page/")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
