package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"adpc-engine/internal/domain"
	"adpc-engine/internal/repository"
)

var ErrInvalidEmail = errors.New("invalid email")

// UserService administra el alta/actualizacion de usuarios por email.
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) UpsertUser(ctx context.Context, emailAddr, name string) (domain.User, error) {
	emailAddr = normalizeEmail(emailAddr)
	if emailAddr == "" {
		return domain.User{}, ErrInvalidEmail
	}

	user := domain.User{
		ID:        uuid.NewString(),
		Email:     emailAddr,
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now().UTC(),
	}
	return s.users.Upsert(ctx, user)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
