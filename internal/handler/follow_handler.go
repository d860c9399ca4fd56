package handler

import (
	"errors"
	"fmt"
	"net/http"

	"yatube/internal/service"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	svc *service.FollowService
}

func NewFollowHandler(svc *service.FollowService) *FollowHandler {
	return &FollowHandler{svc: svc}
}

// Follow 关注作者后跳回其主页。自关注/重复关注静默吞掉。
func (h *FollowHandler) Follow(c *gin.Context) {
	username := c.Param("username")
	if _, err := h.svc.FollowByUsername(c.Request.Context(), currentUserID(c), username); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	redirectProfile(c, username)
}

// Unfollow 取关后跳回作者主页，幂等
func (h *FollowHandler) Unfollow(c *gin.Context) {
	username := c.Param("username")
	if _, err := h.svc.UnfollowByUsername(c.Request.Context(), currentUserID(c), username); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	redirectProfile(c, username)
}

// Relation 查询当前用户是否关注了某作者
func (h *FollowHandler) Relation(c *gin.Context) {
	username := c.Query("username")
	uid := currentUserID(c)

	ok, err := h.svc.FollowByUsernameCheck(c.Request.Context(), uid, username)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": ok})
}

func redirectProfile(c *gin.Context, username string) {
	c.Redirect(http.StatusFound, fmt.Sprintf("/profile/%s/", username))
}
