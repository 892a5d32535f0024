package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/arthurdotwork/chatroom/internal/domain"
)

func (s *FileStore) AppendMessage(ctx context.Context, message domain.Message) error {
	s.messagesMu.Lock()
	defer s.messagesMu.Unlock()

	s.messages = append(s.messages, message)

	if err := s.saveMessages(); err != nil {
		return fmt.Errorf("saveMessages: %w", err)
	}

	return nil
}

// DirectMessages returns the conversation between two users, in either
// direction, sorted by ascending timestamp.
func (s *FileStore) DirectMessages(ctx context.Context, userID1 string, userID2 string) []domain.Message {
	s.messagesMu.RLock()
	defer s.messagesMu.RUnlock()

	var messages []domain.Message
	for _, m := range s.messages {
		if m.Type != domain.MessageTypeDirect {
			continue
		}

		if (m.SenderID == userID1 && m.ReceiverID == userID2) || (m.SenderID == userID2 && m.ReceiverID == userID1) {
			messages = append(messages, m)
		}
	}

	return sortByTimestamp(messages)
}

// UserMessages returns everything the user sent or received, room
// messages they sent included.
func (s *FileStore) UserMessages(ctx context.Context, userID string) []domain.Message {
	s.messagesMu.RLock()
	defer s.messagesMu.RUnlock()

	var messages []domain.Message
	for _, m := range s.messages {
		if m.SenderID == userID || m.ReceiverID == userID {
			messages = append(messages, m)
		}
	}

	return sortByTimestamp(messages)
}

func (s *FileStore) RoomMessages(ctx context.Context, roomID string) []domain.Message {
	s.messagesMu.RLock()
	defer s.messagesMu.RUnlock()

	var messages []domain.Message
	for _, m := range s.messages {
		if m.Type == domain.MessageTypeRoom && m.RoomID == roomID {
			messages = append(messages, m)
		}
	}

	return sortByTimestamp(messages)
}

func sortByTimestamp(messages []domain.Message) []domain.Message {
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})

	return messages
}
