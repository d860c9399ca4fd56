package service

import (
	"yatube/internal/model"
	"yatube/internal/pkg"
)

// GroupService 分组管理。创建是管理操作，只有管理员角色可用。
type GroupService struct {
	repo  GroupStore
	users UserStore
}

func NewGroupService(repo GroupStore, users UserStore) *GroupService {
	return &GroupService{repo: repo, users: users}
}

func (s *GroupService) CreateGroup(userID uint64, slug, title, desc string) (*model.Group, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if user.Role < 1 {
		return nil, ErrForbidden
	}
	if verr := pkg.ValidateGroupForm(slug, title); verr != nil {
		return nil, verr
	}

	group := &model.Group{
		Slug:        slug,
		Title:       title,
		Description: desc,
	}
	if err := s.repo.Create(group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *GroupService) ListGroups(page, size int) ([]model.Group, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 50 {
		size = 20
	}

	offset := (page - 1) * size
	return s.repo.List(offset, size)
}
