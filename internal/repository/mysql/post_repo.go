package mysql

import (
	"yatube/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

// Update 只改正文/分组/图片，id 和作者不动
func (r *PostRepository) Update(post *model.Post) error {
	return r.DB.Model(post).
		Select("text", "group_id", "image").
		Updates(map[string]any{
			"text":     post.Text,
			"group_id": post.GroupID,
			"image":    post.Image,
		}).Error
}

func (r *PostRepository) FindByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.Preload("Author").Preload("Group").First(&post, "id = ?", id).Error
	return &post, err
}

// ListAll 全站列表，新帖在前
func (r *PostRepository) ListAll(offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.
		Preload("Author").Preload("Group").
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *PostRepository) CountAll() (int64, error) {
	var n int64
	err := r.DB.Model(&model.Post{}).Count(&n).Error
	return n, err
}

// ListByGroup 分组内帖子列表，走 group_id 索引
func (r *PostRepository) ListByGroup(groupID uint64, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.
		Where("group_id = ?", groupID).
		Preload("Author").Preload("Group").
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *PostRepository) CountByGroup(groupID uint64) (int64, error) {
	var n int64
	err := r.DB.Model(&model.Post{}).Where("group_id = ?", groupID).Count(&n).Error
	return n, err
}

// ListByAuthor 作者主页列表，走 author_id 索引
func (r *PostRepository) ListByAuthor(authorID uint64, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.
		Where("author_id = ?", authorID).
		Preload("Author").Preload("Group").
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *PostRepository) CountByAuthor(authorID uint64) (int64, error) {
	var n int64
	err := r.DB.Model(&model.Post{}).Where("author_id = ?", authorID).Count(&n).Error
	return n, err
}

// ListFeed 关注流：当前用户关注的作者发的帖子
func (r *PostRepository) ListFeed(followerID uint64, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.
		Joins("JOIN follow ON follow.followee_id = posts.author_id").
		Where("follow.follower_id = ?", followerID).
		Preload("Author").Preload("Group").
		Order("posts.created_at DESC, posts.id DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *PostRepository) CountFeed(followerID uint64) (int64, error) {
	var n int64
	err := r.DB.Model(&model.Post{}).
		Joins("JOIN follow ON follow.followee_id = posts.author_id").
		Where("follow.follower_id = ?", followerID).
		Count(&n).Error
	return n, err
}
