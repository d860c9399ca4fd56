package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"yatube/internal/middleware"
	"yatube/internal/pkg"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
)

// MediaUploader 图片上传端，测试时可为空
type MediaUploader interface {
	Upload(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error)
}

type PostHandler struct {
	query *service.QueryService
	svc   *service.PostService
	media MediaUploader
}

func NewPostHandler(query *service.QueryService, svc *service.PostService, media MediaUploader) *PostHandler {
	return &PostHandler{
		query: query,
		svc:   svc,
		media: media,
	}
}

// Index 首页帖子列表
func (h *PostHandler) Index(c *gin.Context) {
	page := pkg.ParsePage(c.Query("page"))
	pp, err := h.query.Index(c.Request.Context(), page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"page_obj": pp})
}

// GroupList 分组帖子列表
func (h *PostHandler) GroupList(c *gin.Context) {
	slug := c.Param("slug")
	page := pkg.ParsePage(c.Query("page"))

	group, pp, err := h.query.GroupPosts(c.Request.Context(), slug, page)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"group":    group,
		"page_obj": pp,
	})
}

// Profile 作者主页
func (h *PostHandler) Profile(c *gin.Context) {
	username := c.Param("username")
	page := pkg.ParsePage(c.Query("page"))

	view, err := h.query.Profile(c.Request.Context(), username, currentUserID(c), page)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"author":          view.Author,
		"page_obj":        view.Page,
		"count_posts":     view.CountPosts,
		"count_followers": view.CountFollowers,
		"count_following": view.CountFollowing,
		"following":       view.Following,
	})
}

// Detail 帖子详情
func (h *PostHandler) Detail(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		notFound(c)
		return
	}

	view, err := h.query.PostDetail(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "detail failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"post":        view.Post,
		"count_posts": view.CountPosts,
		"comments":    view.Comments,
		"form":        gin.H{"text": ""},
	})
}

// CreateForm 发帖表单
func (h *PostHandler) CreateForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"form":    gin.H{"text": "", "group": nil, "image": ""},
		"is_edit": false,
	})
}

// Create 创建帖子，成功后跳作者主页
func (h *PostHandler) Create(c *gin.Context) {
	uid := currentUserID(c)
	text := c.PostForm("text")

	groupID, ok := h.parseGroup(c)
	if !ok {
		return
	}
	image, err := h.storeImage(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "image upload failed"})
		return
	}

	if _, err := h.svc.CreatePost(c.Request.Context(), uid, text, groupID, image); err != nil {
		var verr *pkg.ValidationError
		if errors.As(err, &verr) {
			h.renderForm(c, text, groupID, false, verr)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s/", currentUsername(c)))
}

// EditForm 编辑表单，非作者直接跳详情页
func (h *PostHandler) EditForm(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		notFound(c)
		return
	}

	view, err := h.query.PostDetail(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "detail failed"})
		return
	}
	if view.Post.AuthorID != currentUserID(c) {
		redirectDetail(c, postID)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"form": gin.H{
			"text":  view.Post.Text,
			"group": view.Post.GroupID,
			"image": view.Post.Image,
		},
		"post":    view.Post,
		"is_edit": true,
	})
}

// Edit 编辑帖子。非作者不报错，跳回详情页。
func (h *PostHandler) Edit(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		notFound(c)
		return
	}

	uid := currentUserID(c)
	text := c.PostForm("text")

	groupID, ok := h.parseGroup(c)
	if !ok {
		return
	}
	image, err := h.storeImage(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "image upload failed"})
		return
	}

	if _, err := h.svc.EditPost(c.Request.Context(), uid, postID, text, groupID, image); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			notFound(c)
		case errors.Is(err, service.ErrForbidden):
			redirectDetail(c, postID)
		default:
			var verr *pkg.ValidationError
			if errors.As(err, &verr) {
				h.renderForm(c, text, groupID, true, verr)
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		}
		return
	}

	redirectDetail(c, postID)
}

// AddComment 添加评论后回到详情页；正文无效时不落库，同样回详情页
func (h *PostHandler) AddComment(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		notFound(c)
		return
	}

	if _, err := h.svc.AddComment(c.Request.Context(), currentUserID(c), postID, c.PostForm("text")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c)
			return
		}
		var verr *pkg.ValidationError
		if !errors.As(err, &verr) {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "comment failed"})
			return
		}
	}
	redirectDetail(c, postID)
}

// Feed 关注流
func (h *PostHandler) Feed(c *gin.Context) {
	page := pkg.ParsePage(c.Query("page"))
	pp, err := h.query.Feed(c.Request.Context(), currentUserID(c), page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"page_obj": pp})
}

// parseGroup group 字段可空；非法值按表单错误处理
func (h *PostHandler) parseGroup(c *gin.Context) (*uint64, bool) {
	raw := c.PostForm("group")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		h.renderForm(c, c.PostForm("text"), nil, false, &pkg.ValidationError{
			Fields: []pkg.FieldError{{Field: "group", Message: "invalid choice"}},
		})
		return nil, false
	}
	return &id, true
}

func (h *PostHandler) storeImage(c *gin.Context) (string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		// 没有上传图片
		return "", nil
	}
	if h.media == nil {
		return "", errors.New("media storage unavailable")
	}
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	return h.media.Upload(c.Request.Context(), fh.Filename, f, fh.Size, fh.Header.Get("Content-Type"))
}

// renderForm 校验失败时带字段错误重新渲染表单
func (h *PostHandler) renderForm(c *gin.Context, text string, groupID *uint64, isEdit bool, verr *pkg.ValidationError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"form": gin.H{
			"text":   text,
			"group":  groupID,
			"errors": verr.Fields,
		},
		"is_edit": isEdit,
	})
}

func redirectDetail(c *gin.Context, postID uint64) {
	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", postID))
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"msg": "page not found"})
}

func currentUserID(c *gin.Context) uint64 {
	if v, ok := c.Get(middleware.ContextUserIDKey); ok {
		if id, ok2 := v.(uint64); ok2 {
			return id
		}
	}
	return 0
}

func currentUsername(c *gin.Context) string {
	if v, ok := c.Get(middleware.ContextUsernameKey); ok {
		if name, ok2 := v.(string); ok2 {
			return name
		}
	}
	return ""
}
