package service

import (
	"context"

	"yatube/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockPostStore struct {
	mock.Mock
}

func (m *MockPostStore) Create(post *model.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostStore) Update(post *model.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostStore) FindByID(id uint64) (*model.Post, error) {
	args := m.Called(id)
	if p := args.Get(0); p != nil {
		return p.(*model.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostStore) ListAll(offset, limit int) ([]model.Post, error) {
	args := m.Called(offset, limit)
	if l := args.Get(0); l != nil {
		return l.([]model.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostStore) CountAll() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostStore) ListByGroup(groupID uint64, offset, limit int) ([]model.Post, error) {
	args := m.Called(groupID, offset, limit)
	if l := args.Get(0); l != nil {
		return l.([]model.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostStore) CountByGroup(groupID uint64) (int64, error) {
	args := m.Called(groupID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostStore) ListByAuthor(authorID uint64, offset, limit int) ([]model.Post, error) {
	args := m.Called(authorID, offset, limit)
	if l := args.Get(0); l != nil {
		return l.([]model.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostStore) CountByAuthor(authorID uint64) (int64, error) {
	args := m.Called(authorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostStore) ListFeed(followerID uint64, offset, limit int) ([]model.Post, error) {
	args := m.Called(followerID, offset, limit)
	if l := args.Get(0); l != nil {
		return l.([]model.Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPostStore) CountFeed(followerID uint64) (int64, error) {
	args := m.Called(followerID)
	return args.Get(0).(int64), args.Error(1)
}

type MockGroupStore struct {
	mock.Mock
}

func (m *MockGroupStore) Create(g *model.Group) error {
	args := m.Called(g)
	return args.Error(0)
}

func (m *MockGroupStore) FindByID(id uint64) (*model.Group, error) {
	args := m.Called(id)
	if g := args.Get(0); g != nil {
		return g.(*model.Group), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGroupStore) FindBySlug(slug string) (*model.Group, error) {
	args := m.Called(slug)
	if g := args.Get(0); g != nil {
		return g.(*model.Group), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGroupStore) List(offset, limit int) ([]model.Group, error) {
	args := m.Called(offset, limit)
	if l := args.Get(0); l != nil {
		return l.([]model.Group), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserStore) FindByID(id uint64) (*model.User, error) {
	args := m.Called(id)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserStore) FindByUsername(username string) (*model.User, error) {
	args := m.Called(username)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserStore) FindByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserStore) UpdatePassword(user *model.User, newPassword string) error {
	args := m.Called(user, newPassword)
	return args.Error(0)
}

type MockCommentStore struct {
	mock.Mock
}

func (m *MockCommentStore) Create(comment *model.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentStore) ListByPost(postID uint64) ([]model.Comment, error) {
	args := m.Called(postID)
	if l := args.Get(0); l != nil {
		return l.([]model.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockFollowStore struct {
	mock.Mock
}

func (m *MockFollowStore) Follow(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowStore) Unfollow(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowStore) IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowStore) CountFollowers(ctx context.Context, userID uint64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFollowStore) CountFollowing(ctx context.Context, userID uint64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockOutboxStore struct {
	mock.Mock
}

func (m *MockOutboxStore) List(ctx context.Context, batchSize int) ([]model.FollowOutbox, error) {
	args := m.Called(ctx, batchSize)
	if l := args.Get(0); l != nil {
		return l.([]model.FollowOutbox), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOutboxStore) MarkSent(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOutboxStore) MarkFailed(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPageCache struct {
	mock.Mock
}

func (m *MockPageCache) Get(ctx context.Context, page int) ([]byte, bool, error) {
	args := m.Called(ctx, page)
	if b := args.Get(0); b != nil {
		return b.([]byte), args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

func (m *MockPageCache) Set(ctx context.Context, page int, payload []byte) error {
	args := m.Called(ctx, page, payload)
	return args.Error(0)
}

func (m *MockPageCache) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) AddUserToken(usrId uint64, token string) error {
	args := m.Called(usrId, token)
	return args.Error(0)
}

func (m *MockTokenStore) GetUserToken(usrId uint64) (string, error) {
	args := m.Called(usrId)
	return args.String(0), args.Error(1)
}

func (m *MockTokenStore) DeleteUserToken(usrId uint64) error {
	args := m.Called(usrId)
	return args.Error(0)
}
