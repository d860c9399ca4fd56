package service

import (
	"context"
	"encoding/json"
	"errors"

	"yatube/internal/pkg"

	"github.com/rs/zerolog/log"
)

// Mailer 发信端，测试时可替换
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// MessageSource kafka 消费端抽象
type MessageSource interface {
	FetchValue(ctx context.Context) ([]byte, error)
}

// FollowEvent 关注事件载荷（outbox payload 的镜像）
type FollowEvent struct {
	Event     string `json:"event"`
	EventTime string `json:"event_time"`
	Follower  uint64 `json:"follower"`
	Followee  uint64 `json:"followee"`
}

// FollowNotifier 消费关注事件，给被关注者发邮件通知
type FollowNotifier struct {
	users  UserStore
	source MessageSource
	mailer Mailer
}

func NewFollowNotifier(users UserStore, source MessageSource, mailer Mailer) *FollowNotifier {
	return &FollowNotifier{users: users, source: source, mailer: mailer}
}

// Run 通知 worker 启动器
func (n *FollowNotifier) Run(ctx context.Context) {
	for {
		value, err := n.source.FetchValue(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return
			}
			log.Error().Err(err).Msg("fetch follow event failed")
			continue
		}
		if err := n.notifyOnce(ctx, value); err != nil {
			log.Warn().Err(err).Msg("follow notification failed")
		}
	}
}

func (n *FollowNotifier) notifyOnce(ctx context.Context, value []byte) error {
	var ev FollowEvent
	if err := json.Unmarshal(value, &ev); err != nil {
		return err
	}
	// 只有新增关注才通知
	if ev.Event != "follow" {
		return nil
	}

	follower, err := n.users.FindByID(ev.Follower)
	if err != nil {
		return err
	}
	followee, err := n.users.FindByID(ev.Followee)
	if err != nil {
		return err
	}
	return n.mailer.Send(followee.Email, "新的关注者", pkg.FollowEmailHTML(follower.Username))
}

// KafkaSource KafkaConsumer 适配成 MessageSource
type KafkaSource struct {
	Consumer *pkg.KafkaConsumer
}

func (s *KafkaSource) FetchValue(ctx context.Context) ([]byte, error) {
	msg, err := s.Consumer.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return msg.Value, nil
}
