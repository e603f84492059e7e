package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/linskybing/bugtrack-go/internal/api/middleware"
	"github.com/linskybing/bugtrack-go/internal/domain/user"
	"github.com/linskybing/bugtrack-go/internal/repository"
	"github.com/linskybing/bugtrack-go/pkg/apperrors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordHashFailure = errors.New("failed to hash password")
	ErrInvalidRole         = fmt.Errorf("%w: role must be admin or member", apperrors.ErrValidation)
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) Register(input user.RegisterInput) (user.User, error) {
	_, err := s.Repos.User.GetByEmail(input.Email)
	if err == nil {
		return user.User{}, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrPasswordHashFailure
	}

	usr := user.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		Role:     user.RoleMember,
	}
	if input.Role != nil {
		if !input.Role.Valid() {
			return user.User{}, ErrInvalidRole
		}
		usr.Role = *input.Role
	}

	return usr, s.Repos.User.Create(&usr)
}

func (s *UserService) Login(email, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetByEmail(email)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(usr.UID, usr.Role, 24*time.Hour)
	if err != nil {
		return user.User{}, "", err
	}

	return usr, token, nil
}

// ListUsers returns the directory used to populate ticket assignment.
func (s *UserService) ListUsers() ([]user.DirectoryEntry, error) {
	users, err := s.Repos.User.List()
	if err != nil {
		return nil, err
	}
	entries := make([]user.DirectoryEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, user.DirectoryEntry{
			UID:   u.UID,
			Name:  u.Name,
			Email: u.Email,
			Role:  u.Role,
		})
	}
	return entries, nil
}
