package model

import "time"

// Comment 帖子评论，创建后不可编辑
type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	PostID    uint64 `gorm:"not null;index"`
	AuthorID  uint64 `gorm:"not null;index"`
	Text      string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Author User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Post   Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}
