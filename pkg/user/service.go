package user

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrNotLoggedIn = errors.New("not logged in")

type Service interface {
	Login(ctx context.Context, email string, password string) (User, error)
	Register(ctx context.Context, name string, email string, password string) (User, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (User, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

// Login accepts any credentials, empty ones included. Passwords are neither
// checked nor kept.
func (s *ServiceImpl) Login(ctx context.Context, email string, _ string) (User, error) {
	u := User{Email: email, Name: DefaultName}
	if err := s.repo.StoreLogin(ctx, Login{LoggedIn: true, User: u}); err != nil {
		return User{}, fmt.Errorf("failed to store login: %w", err)
	}
	log.Debugf("user logged in: %q", email)
	return u, nil
}

// Register behaves like Login but keeps the given display name.
func (s *ServiceImpl) Register(ctx context.Context, name string, email string, _ string) (User, error) {
	u := User{Email: email, Name: name}
	if err := s.repo.StoreLogin(ctx, Login{LoggedIn: true, User: u}); err != nil {
		return User{}, fmt.Errorf("failed to store login: %w", err)
	}
	log.Debugf("user registered: %q", email)
	return u, nil
}

func (s *ServiceImpl) Logout(ctx context.Context) error {
	return s.repo.ResetSession(ctx)
}

func (s *ServiceImpl) Current(ctx context.Context) (User, error) {
	login, err := s.repo.GetLogin(ctx)
	if err != nil {
		return User{}, err
	}
	if !login.LoggedIn {
		return User{}, ErrNotLoggedIn
	}
	return login.User, nil
}
