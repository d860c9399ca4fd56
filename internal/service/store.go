package service

import (
	"context"
	"errors"

	"yatube/internal/model"
)

// 服务层统一错误，handler 按类型映射响应
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)

// PostStore 帖子存取
type PostStore interface {
	Create(post *model.Post) error
	Update(post *model.Post) error
	FindByID(id uint64) (*model.Post, error)
	ListAll(offset, limit int) ([]model.Post, error)
	CountAll() (int64, error)
	ListByGroup(groupID uint64, offset, limit int) ([]model.Post, error)
	CountByGroup(groupID uint64) (int64, error)
	ListByAuthor(authorID uint64, offset, limit int) ([]model.Post, error)
	CountByAuthor(authorID uint64) (int64, error)
	ListFeed(followerID uint64, offset, limit int) ([]model.Post, error)
	CountFeed(followerID uint64) (int64, error)
}

// GroupStore 分组存取
type GroupStore interface {
	Create(g *model.Group) error
	FindByID(id uint64) (*model.Group, error)
	FindBySlug(slug string) (*model.Group, error)
	List(offset, limit int) ([]model.Group, error)
}

// UserStore 用户存取
type UserStore interface {
	Create(user *model.User) error
	FindByID(id uint64) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	UpdatePassword(user *model.User, newPassword string) error
}

// CommentStore 评论存取
type CommentStore interface {
	Create(comment *model.Comment) error
	ListByPost(postID uint64) ([]model.Comment, error)
}

// FollowStore 关注边存取
type FollowStore interface {
	Follow(ctx context.Context, followerID, followeeID uint64) (bool, error)
	Unfollow(ctx context.Context, followerID, followeeID uint64) (bool, error)
	IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error)
	CountFollowers(ctx context.Context, userID uint64) (int64, error)
	CountFollowing(ctx context.Context, userID uint64) (int64, error)
}

// OutboxStore 关注事件 outbox
type OutboxStore interface {
	List(ctx context.Context, batchSize int) ([]model.FollowOutbox, error)
	MarkSent(ctx context.Context, id uint64) error
	MarkFailed(ctx context.Context, id uint64) error
}

// PageCache 首页列表缓存
type PageCache interface {
	Get(ctx context.Context, page int) ([]byte, bool, error)
	Set(ctx context.Context, page int, payload []byte) error
	Clear(ctx context.Context) error
}

// TokenStore 登录态 token
type TokenStore interface {
	AddUserToken(usrId uint64, token string) error
	GetUserToken(usrId uint64) (string, error)
	DeleteUserToken(usrId uint64) error
}
