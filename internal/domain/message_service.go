package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type MessageService struct {
	users    UserStore
	messages MessageStore
	notifier Notifier
}

func NewMessageService(users UserStore, messages MessageStore, notifier Notifier) *MessageService {
	return &MessageService{users: users, messages: messages, notifier: notifier}
}

func (s *MessageService) SendDirectMessage(ctx context.Context, senderID string, receiverID string, content string) (Message, error) {
	if senderID == "" || receiverID == "" || content == "" {
		return Message{}, ErrDirectMessageFields
	}

	sender, ok := s.users.FindUserByID(ctx, senderID)
	if !ok {
		return Message{}, ErrSenderNotFound
	}

	receiver, ok := s.users.FindUserByID(ctx, receiverID)
	if !ok {
		return Message{}, ErrReceiverNotFound
	}

	message := Message{
		ID:               uuid.NewString(),
		SenderID:         senderID,
		SenderUsername:   sender.Username,
		ReceiverID:       receiverID,
		ReceiverUsername: receiver.Username,
		Content:          content,
		Timestamp:        time.Now().UTC(),
		Type:             MessageTypeDirect,
	}

	if err := s.messages.AppendMessage(ctx, message); err != nil {
		return Message{}, fmt.Errorf("messages.AppendMessage: %w", err)
	}

	s.notifier.Broadcast(ctx, Event{Name: EventNewMessage, Payload: message}, nil)

	return message, nil
}

func (s *MessageService) DirectMessages(ctx context.Context, userID1 string, userID2 string) []Message {
	return s.messages.DirectMessages(ctx, userID1, userID2)
}

func (s *MessageService) UserMessages(ctx context.Context, userID string) []Message {
	return s.messages.UserMessages(ctx, userID)
}
