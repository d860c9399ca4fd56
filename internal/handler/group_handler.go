package handler

import (
	"errors"
	"net/http"
	"strconv"

	"yatube/internal/pkg"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
)

type GroupHandler struct {
	svc *service.GroupService
}

type GroupCreateReq struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func NewGroupHandler(svc *service.GroupService) *GroupHandler {
	return &GroupHandler{svc: svc}
}

// Create 创建分组，管理员专用
func (h *GroupHandler) Create(c *gin.Context) {
	var req GroupCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	group, err := h.svc.CreateGroup(currentUserID(c), req.Slug, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"msg": "admin only"})
			return
		}
		var verr *pkg.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"form": gin.H{"errors": verr.Fields}})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          group.ID,
		"slug":        group.Slug,
		"title":       group.Title,
		"description": group.Description,
	})
}

// List 分组列表
func (h *GroupHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))

	list, err := h.svc.ListGroups(page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"groups": list})
}
