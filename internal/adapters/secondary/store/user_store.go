package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/arthurdotwork/chatroom/internal/domain"
)

func (s *FileStore) Users(ctx context.Context) []domain.User {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	return slices.Clone(s.users)
}

func (s *FileStore) FindUserByID(ctx context.Context, id string) (domain.User, bool) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	for _, user := range s.users {
		if user.ID == id {
			return user, true
		}
	}

	return domain.User{}, false
}

func (s *FileStore) FindUserByUsername(ctx context.Context, username string) (domain.User, bool) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, true
		}
	}

	return domain.User{}, false
}

// CreateUser rejects duplicate usernames under the collection lock so
// concurrent requests cannot both claim a name.
func (s *FileStore) CreateUser(ctx context.Context, user domain.User) error {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}

	s.users = append(s.users, user)

	if err := s.saveUsers(); err != nil {
		return fmt.Errorf("saveUsers: %w", err)
	}

	return nil
}

func (s *FileStore) UpdateUser(ctx context.Context, user domain.User) error {
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	for i := range s.users {
		if s.users[i].ID == user.ID {
			s.users[i] = user

			if err := s.saveUsers(); err != nil {
				return fmt.Errorf("saveUsers: %w", err)
			}

			return nil
		}
	}

	return domain.ErrUserNotFound
}
