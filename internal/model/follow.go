package model

import "time"

// Follow 关注关系，(follower, followee) 唯一，只做插入和删除
type Follow struct {
	ID         uint64 `gorm:"primaryKey"`
	FollowerID uint64 `gorm:"not null;index:idx_follower_id;uniqueIndex:uk_follower_followee"`
	FolloweeID uint64 `gorm:"not null;index:idx_followee_id;uniqueIndex:uk_follower_followee"`
	CreatedAt  time.Time

	Follower User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Followee User `gorm:"foreignKey:FolloweeID;constraint:OnDelete:CASCADE"`
}

// TableName sets table name for Follow
func (Follow) TableName() string {
	return "follow"
}

// FollowOutbox 关注事件监控表
type FollowOutbox struct {
	ID         uint64 `gorm:"primaryKey"`
	EventType  string `gorm:"size:16;not null"` // follow / unfollow
	FollowerID uint64 `gorm:"not null"`
	FolloweeID uint64 `gorm:"not null"`
	Payload    string `gorm:"type:json;not null"`
	Status     int8   `gorm:"not null;default:0;comment:'0=pending,1=sent,2=failed'"`
	Retry      int    `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (FollowOutbox) TableName() string { return "follow_outbox" }
