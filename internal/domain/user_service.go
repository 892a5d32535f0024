package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type UserService struct {
	users    UserStore
	notifier Notifier
}

func NewUserService(users UserStore, notifier Notifier) *UserService {
	return &UserService{users: users, notifier: notifier}
}

func (s *UserService) CreateUser(ctx context.Context, username string) (User, error) {
	if username == "" {
		return User{}, ErrUsernameRequired
	}

	user := User{
		ID:        uuid.NewString(),
		Username:  username,
		IsOnline:  true,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		return User{}, fmt.Errorf("users.CreateUser: %w", err)
	}

	return user, nil
}

func (s *UserService) Users(ctx context.Context) []User {
	return s.users.Users(ctx)
}

func (s *UserService) User(ctx context.Context, id string) (User, error) {
	user, ok := s.users.FindUserByID(ctx, id)
	if !ok {
		return User{}, ErrUserNotFound
	}

	return user, nil
}

// UpdateStatus mutates the store-level flag; it is independent of live
// presence, which is driven by the session lifecycle.
func (s *UserService) UpdateStatus(ctx context.Context, id string, isOnline bool) (User, error) {
	user, ok := s.users.FindUserByID(ctx, id)
	if !ok {
		return User{}, ErrUserNotFound
	}

	user.IsOnline = isOnline
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return User{}, fmt.Errorf("users.UpdateUser: %w", err)
	}

	s.notifier.Broadcast(ctx, Event{
		Name:    EventUserStatusChanged,
		Payload: StatusPayload{UserID: id, IsOnline: isOnline},
	}, nil)

	return user, nil
}
