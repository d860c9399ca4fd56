package service

import (
	"context"
	"errors"
	"testing"

	"yatube/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestFollow_SelfFollowIsSilentNoop(t *testing.T) {
	repo := new(MockFollowStore)
	svc := NewFollowService(repo, nil)

	changed, err := svc.Follow(context.Background(), 5, 5)

	assert.NoError(t, err)
	assert.False(t, changed)
	// 自关注不能落到存储层
	repo.AssertNotCalled(t, "Follow", mock.Anything, mock.Anything, mock.Anything)
}

func TestFollow_Delegates(t *testing.T) {
	repo := new(MockFollowStore)
	repo.On("Follow", mock.Anything, uint64(1), uint64(2)).Return(true, nil)

	svc := NewFollowService(repo, nil)
	changed, err := svc.Follow(context.Background(), 1, 2)

	assert.NoError(t, err)
	assert.True(t, changed)
}

func TestFollow_DuplicateReportsUnchanged(t *testing.T) {
	repo := new(MockFollowStore)
	// 唯一索引吞掉重复插入，repo 返回 changed=false
	repo.On("Follow", mock.Anything, uint64(1), uint64(2)).Return(false, nil)

	svc := NewFollowService(repo, nil)
	changed, err := svc.Follow(context.Background(), 1, 2)

	assert.NoError(t, err)
	assert.False(t, changed)
}

func TestFollow_InvalidIDs(t *testing.T) {
	svc := NewFollowService(new(MockFollowStore), nil)
	_, err := svc.Follow(context.Background(), 0, 2)
	assert.Error(t, err)
}

func TestUnfollow_SelfIsNoop(t *testing.T) {
	repo := new(MockFollowStore)
	svc := NewFollowService(repo, nil)

	changed, err := svc.Unfollow(context.Background(), 5, 5)

	assert.NoError(t, err)
	assert.False(t, changed)
	repo.AssertNotCalled(t, "Unfollow", mock.Anything, mock.Anything, mock.Anything)
}

func TestFollowByUsername_UnknownAuthor(t *testing.T) {
	users := new(MockUserStore)
	users.On("FindByUsername", "ghost").Return(nil, gorm.ErrRecordNotFound)

	svc := NewFollowService(new(MockFollowStore), users)
	_, err := svc.FollowByUsername(context.Background(), 1, "ghost")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFollowByUsername(t *testing.T) {
	users := new(MockUserStore)
	users.On("FindByUsername", "leo").Return(&model.User{ID: 2, Username: "leo"}, nil)

	repo := new(MockFollowStore)
	repo.On("Follow", mock.Anything, uint64(1), uint64(2)).Return(true, nil)

	svc := NewFollowService(repo, users)
	changed, err := svc.FollowByUsername(context.Background(), 1, "leo")

	assert.NoError(t, err)
	assert.True(t, changed)
}

func TestFollowByUsernameCheck_SelfIsFalse(t *testing.T) {
	users := new(MockUserStore)
	users.On("FindByUsername", "leo").Return(&model.User{ID: 2}, nil)

	repo := new(MockFollowStore)
	svc := NewFollowService(repo, users)

	ok, err := svc.FollowByUsernameCheck(context.Background(), 2, "leo")
	assert.NoError(t, err)
	assert.False(t, ok)
	repo.AssertNotCalled(t, "IsFollowing", mock.Anything, mock.Anything, mock.Anything)
}

func TestOutboxRelayer_DrainMarksSentAndFailed(t *testing.T) {
	rows := []model.FollowOutbox{
		{ID: 1, EventType: "follow", Payload: `{"event":"follow"}`},
		{ID: 2, EventType: "unfollow", Payload: `{"event":"unfollow"}`},
	}

	repo := new(MockOutboxStore)
	repo.On("List", mock.Anything, 200).Return(rows, nil)
	repo.On("MarkSent", mock.Anything, uint64(1)).Return(nil)
	repo.On("MarkFailed", mock.Anything, uint64(2)).Return(nil)

	relayer := NewOutboxRelayer(repo, func(ctx context.Context, ob *model.FollowOutbox) error {
		if ob.ID == 2 {
			return errors.New("broker down")
		}
		return nil
	})
	relayer.drainOnce(context.Background())

	repo.AssertExpectations(t)
}

func TestFollowNotifier_SendsEmailOnFollow(t *testing.T) {
	users := new(MockUserStore)
	users.On("FindByID", uint64(1)).Return(&model.User{ID: 1, Username: "anna"}, nil)
	users.On("FindByID", uint64(2)).Return(&model.User{ID: 2, Username: "leo", Email: "leo@example.com"}, nil)

	mailer := new(mailerSpy)
	n := NewFollowNotifier(users, nil, mailer)

	err := n.notifyOnce(context.Background(), []byte(`{"event":"follow","follower":1,"followee":2}`))

	assert.NoError(t, err)
	assert.Equal(t, "leo@example.com", mailer.to)
	assert.Contains(t, mailer.body, "anna")
}

func TestFollowNotifier_IgnoresUnfollow(t *testing.T) {
	mailer := new(mailerSpy)
	n := NewFollowNotifier(new(MockUserStore), nil, mailer)

	err := n.notifyOnce(context.Background(), []byte(`{"event":"unfollow","follower":1,"followee":2}`))

	assert.NoError(t, err)
	assert.Empty(t, mailer.to)
}

type mailerSpy struct {
	to, subject, body string
}

func (m *mailerSpy) Send(to, subject, htmlBody string) error {
	m.to, m.subject, m.body = to, subject, htmlBody
	return nil
}
