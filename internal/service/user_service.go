package service

import (
	"errors"

	"yatube/internal/model"
	"yatube/internal/pkg"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo   UserStore
	tokens TokenStore
}

func NewUserService(repo UserStore, tokens TokenStore) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

func (s *UserService) Register(username, password, email string) error {
	if username == "" || password == "" || email == "" {
		return errors.New("username, password and email required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Username: username,
		Password: string(hash),
		Email:    email,
	}

	return s.repo.Create(user)
}

func (s *UserService) Login(username, password string) (*pkg.Pair, error) {
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		return nil, errors.New("user not found")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, errors.New("invalid password")
	}
	// 将token写入redis
	token, err := pkg.GeneratePair(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}
	if err = s.tokens.AddUserToken(user.ID, token.AccessToken); err != nil {
		return nil, err
	}
	return token, nil
}

func (s *UserService) Logout(usrID uint64) error {
	return s.tokens.DeleteUserToken(usrID)
}

func (s *UserService) Refresh(refreshToken string) (*pkg.Pair, error) {
	return pkg.Refresh(refreshToken)
}

// ChangePassword 登录态修改密码
func (s *UserService) ChangePassword(usrId uint64, oldPassword, newPassword string) error {
	user, err := s.repo.FindByID(usrId)
	if err != nil {
		return err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return errors.New("old password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err = s.repo.UpdatePassword(user, string(hash)); err != nil {
		return err
	}

	return s.Logout(usrId)
}
