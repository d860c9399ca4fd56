package mysql

import (
	"context"
	"encoding/json"
	"time"

	"yatube/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepository struct {
	DB *gorm.DB
}

type OutboxRepository struct {
	DB *gorm.DB
}

// Follow 建立关注边（幂等）。唯一索引 + DoNothing，真正新建时返回 changed=true。
func (r *FollowRepository) Follow(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	var changed bool
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rel := model.Follow{
			FollowerID: followerID,
			FolloweeID: followeeID,
		}
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "follower_id"}, {Name: "followee_id"}},
			DoNothing: true,
		}).Create(&rel)
		if res.Error != nil {
			return res.Error
		}
		// RowsAffected==0：边已存在，重复请求直接吞掉
		if res.RowsAffected == 0 {
			return nil
		}
		changed = true
		return r.insertOutbox(tx, "follow", followerID, followeeID)
	})
	return changed, err
}

// Unfollow 删除关注边（幂等）。不存在时不报错。
func (r *FollowRepository) Unfollow(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	var changed bool
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
			Delete(&model.Follow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		changed = true
		return r.insertOutbox(tx, "unfollow", followerID, followeeID)
	})
	return changed, err
}

// IsFollowing 判断是否关注
func (r *FollowRepository) IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	var n int64
	if err := r.DB.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// CountFollowers 粉丝数
func (r *FollowRepository) CountFollowers(ctx context.Context, userID uint64) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Follow{}).
		Where("followee_id = ?", userID).
		Count(&n).Error
	return n, err
}

// CountFollowing 关注数
func (r *FollowRepository) CountFollowing(ctx context.Context, userID uint64) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ?", userID).
		Count(&n).Error
	return n, err
}

// 插入outbox事件表，与关注边同一事务提交
func (r *FollowRepository) insertOutbox(tx *gorm.DB, event string, follower, followee uint64) error {
	payload, _ := json.Marshal(map[string]any{
		"event":      event,
		"event_time": time.Now().UTC().Format(time.RFC3339Nano),
		"follower":   follower,
		"followee":   followee,
	})
	ob := &model.FollowOutbox{
		EventType:  event,
		FollowerID: follower,
		FolloweeID: followee,
		Payload:    string(payload),
		Status:     0,
	}
	return tx.Create(ob).Error
}

// List outbox查询
func (r *OutboxRepository) List(ctx context.Context, batchSize int) ([]model.FollowOutbox, error) {
	var list []model.FollowOutbox
	if err := r.DB.WithContext(ctx).
		Where("status = 0").
		Order("id ASC").
		Limit(batchSize).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// MarkFailed outbox记录投递失败重试
func (r *OutboxRepository) MarkFailed(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.FollowOutbox{}).Where("id = ?", id).
		Updates(map[string]any{"status": 2, "retry": gorm.Expr("retry + 1")}).Error
}

// MarkSent outbox投递成功更新
func (r *OutboxRepository) MarkSent(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.FollowOutbox{}).Where("id = ?", id).
		Update("status", 1).Error
}
