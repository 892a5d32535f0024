// Package store persists the chat collections as flat JSON files. Each
// collection keeps an in-memory mirror guarded by its own lock; every
// mutation rewrites the collection file in full.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/arthurdotwork/chatroom/internal/domain"
)

const (
	usersFile    = "users.json"
	messagesFile = "messages.json"
	roomsFile    = "rooms.json"
)

type FileStore struct {
	dir string

	usersMu sync.RWMutex
	users   []domain.User

	messagesMu sync.RWMutex
	messages   []domain.Message

	roomsMu sync.RWMutex
	rooms   []domain.Room
}

// Open loads the collections from dir, creating the directory and empty
// collection files when missing.
func Open(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll: %w", err)
	}

	s := &FileStore{dir: dir}

	if err := load(filepath.Join(dir, usersFile), &s.users); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	if err := load(filepath.Join(dir, messagesFile), &s.messages); err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}

	if err := load(filepath.Join(dir, roomsFile), &s.rooms); err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}

	return s, nil
}

func load[T any](path string, collection *[]T) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		*collection = []T{}
		return write(path, *collection)
	}

	if err != nil {
		return fmt.Errorf("os.ReadFile: %w", err)
	}

	if err := json.Unmarshal(data, collection); err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	return nil
}

func write[T any](path string, collection []T) error {
	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile: %w", err)
	}

	return nil
}

func (s *FileStore) saveUsers() error {
	return write(filepath.Join(s.dir, usersFile), s.users)
}

func (s *FileStore) saveMessages() error {
	return write(filepath.Join(s.dir, messagesFile), s.messages)
}

func (s *FileStore) saveRooms() error {
	return write(filepath.Join(s.dir, roomsFile), s.rooms)
}
