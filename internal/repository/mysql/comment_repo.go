package mysql

import (
	"yatube/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.DB.Create(comment).Error
}

// ListByPost 帖子下全部评论，旧评论在前
func (r *CommentRepository) ListByPost(postID uint64) ([]model.Comment, error) {
	var list []model.Comment
	err := r.DB.
		Where("post_id = ?", postID).
		Preload("Author").
		Order("created_at ASC, id ASC").
		Find(&list).Error
	return list, err
}
