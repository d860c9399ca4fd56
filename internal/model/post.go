package model

import "time"

type Post struct {
	ID        uint64    `gorm:"primaryKey"`
	AuthorID  uint64    `gorm:"not null;index:idx_author_time,priority:1"`
	GroupID   *uint64   `gorm:"index:idx_group_time,priority:1"` // 可空，无分组帖子
	Text      string    `gorm:"type:text;not null"`
	Image     string    `gorm:"size:255"` // 媒体存储返回的引用路径
	CreatedAt time.Time `gorm:"index:idx_author_time,priority:2,sort:desc;index:idx_group_time,priority:2,sort:desc"`
	UpdatedAt time.Time

	Author User   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Group  *Group `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`
}
