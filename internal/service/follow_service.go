package service

import (
	"context"
	"errors"
	"time"

	"yatube/internal/model"
	"yatube/internal/pkg"

	"github.com/rs/zerolog/log"
)

// FollowService 关注/取关。自关注和重复关注都静默吞掉，不报错。
type FollowService struct {
	repo  FollowStore
	users UserStore
}

func NewFollowService(repo FollowStore, users UserStore) *FollowService {
	return &FollowService{repo: repo, users: users}
}

func (s *FollowService) Follow(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	if followerID == 0 || followeeID == 0 {
		return false, errors.New("invalid user id")
	}
	// 自关注按无操作处理
	if followerID == followeeID {
		return false, nil
	}
	return s.repo.Follow(ctx, followerID, followeeID)
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	if followerID == 0 || followeeID == 0 {
		return false, errors.New("invalid user id")
	}
	if followerID == followeeID {
		return false, nil
	}
	return s.repo.Unfollow(ctx, followerID, followeeID)
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	if followerID == 0 || followeeID == 0 {
		return false, errors.New("invalid user id")
	}
	return s.repo.IsFollowing(ctx, followerID, followeeID)
}

// FollowByUsername 按用户名关注，用户不存在返回 ErrNotFound
func (s *FollowService) FollowByUsername(ctx context.Context, followerID uint64, username string) (bool, error) {
	author, err := s.users.FindByUsername(username)
	if err != nil {
		return false, mapNotFound(err)
	}
	return s.Follow(ctx, followerID, author.ID)
}

// UnfollowByUsername 按用户名取关
func (s *FollowService) UnfollowByUsername(ctx context.Context, followerID uint64, username string) (bool, error) {
	author, err := s.users.FindByUsername(username)
	if err != nil {
		return false, mapNotFound(err)
	}
	return s.Unfollow(ctx, followerID, author.ID)
}

// FollowByUsernameCheck 按用户名查询关注状态
func (s *FollowService) FollowByUsernameCheck(ctx context.Context, followerID uint64, username string) (bool, error) {
	author, err := s.users.FindByUsername(username)
	if err != nil {
		return false, mapNotFound(err)
	}
	if followerID == 0 || followerID == author.ID {
		return false, nil
	}
	return s.repo.IsFollowing(ctx, followerID, author.ID)
}

type Sender func(ctx context.Context, ob *model.FollowOutbox) error

// OutboxRelayer outbox 投递器，把关注事件批量搬到 kafka
type OutboxRelayer struct {
	repo      OutboxStore
	batchSize int
	interval  time.Duration
	sender    Sender
}

func NewOutboxRelayer(repo OutboxStore, sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      repo,
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
	}
}

// Run outbox启动器
func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.List(ctx, r.batchSize)
	if err != nil {
		log.Error().Err(err).Msg("outbox query failed")
		return
	}
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			log.Warn().Err(err).Uint64("outbox_id", ob.ID).Msg("outbox send failed")
			_ = r.repo.MarkFailed(ctx, ob.ID)
			continue
		}
		_ = r.repo.MarkSent(ctx, ob.ID)
	}
}

// KafkaSender 把 outbox 行投递到 kafka，按被关注者分区
func KafkaSender(producer *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.FollowOutbox) error {
		return producer.Send(ctx, pkg.MakeKeyFromID(ob.FolloweeID), []byte(ob.Payload))
	}
}
