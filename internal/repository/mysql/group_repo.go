package mysql

import (
	"yatube/internal/model"

	"gorm.io/gorm"
)

type GroupRepository struct {
	DB *gorm.DB
}

func (r *GroupRepository) Create(g *model.Group) error {
	return r.DB.Create(g).Error
}

func (r *GroupRepository) FindByID(id uint64) (*model.Group, error) {
	var group model.Group
	err := r.DB.First(&group, id).Error
	return &group, err
}

func (r *GroupRepository) FindBySlug(slug string) (*model.Group, error) {
	var group model.Group
	err := r.DB.Where("slug = ?", slug).First(&group).Error
	return &group, err
}

func (r *GroupRepository) List(offset, limit int) ([]model.Group, error) {
	var list []model.Group
	err := r.DB.Order("id desc").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}
