package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/arthurdotwork/chatroom/internal/domain"
)

func (s *FileStore) Rooms(ctx context.Context) []domain.Room {
	s.roomsMu.RLock()
	defer s.roomsMu.RUnlock()

	rooms := make([]domain.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		room.Members = slices.Clone(room.Members)
		rooms = append(rooms, room)
	}

	return rooms
}

func (s *FileStore) FindRoomByID(ctx context.Context, id string) (domain.Room, bool) {
	s.roomsMu.RLock()
	defer s.roomsMu.RUnlock()

	for _, room := range s.rooms {
		if room.ID == id {
			room.Members = slices.Clone(room.Members)
			return room, true
		}
	}

	return domain.Room{}, false
}

func (s *FileStore) CreateRoom(ctx context.Context, room domain.Room) error {
	s.roomsMu.Lock()
	defer s.roomsMu.Unlock()

	s.rooms = append(s.rooms, room)

	if err := s.saveRooms(); err != nil {
		return fmt.Errorf("saveRooms: %w", err)
	}

	return nil
}

// AddRoomMember re-checks membership under the collection lock; the
// service-level check alone would race with a concurrent join.
func (s *FileStore) AddRoomMember(ctx context.Context, roomID string, userID string) error {
	s.roomsMu.Lock()
	defer s.roomsMu.Unlock()

	for i := range s.rooms {
		if s.rooms[i].ID != roomID {
			continue
		}

		if slices.Contains(s.rooms[i].Members, userID) {
			return domain.ErrAlreadyRoomMember
		}

		s.rooms[i].Members = append(s.rooms[i].Members, userID)

		if err := s.saveRooms(); err != nil {
			return fmt.Errorf("saveRooms: %w", err)
		}

		return nil
	}

	return domain.ErrRoomNotFound
}
