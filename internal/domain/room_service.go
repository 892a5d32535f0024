package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type RoomService struct {
	users    UserStore
	rooms    RoomStore
	messages MessageStore
	notifier Notifier
}

func NewRoomService(users UserStore, rooms RoomStore, messages MessageStore, notifier Notifier) *RoomService {
	return &RoomService{users: users, rooms: rooms, messages: messages, notifier: notifier}
}

func (s *RoomService) CreateRoom(ctx context.Context, name string, creatorID string) (Room, error) {
	if name == "" || creatorID == "" {
		return Room{}, ErrRoomFields
	}

	creator, ok := s.users.FindUserByID(ctx, creatorID)
	if !ok {
		return Room{}, ErrCreatorNotFound
	}

	room := Room{
		ID:              uuid.NewString(),
		Name:            name,
		CreatorID:       creatorID,
		CreatorUsername: creator.Username,
		Members:         []string{creatorID},
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.rooms.CreateRoom(ctx, room); err != nil {
		return Room{}, fmt.Errorf("rooms.CreateRoom: %w", err)
	}

	return room, nil
}

func (s *RoomService) Rooms(ctx context.Context) []Room {
	return s.rooms.Rooms(ctx)
}

func (s *RoomService) Room(ctx context.Context, id string) (Room, error) {
	room, ok := s.rooms.FindRoomByID(ctx, id)
	if !ok {
		return Room{}, ErrRoomNotFound
	}

	return room, nil
}

func (s *RoomService) JoinRoom(ctx context.Context, roomID string, userID string) error {
	if userID == "" {
		return ErrUserIDRequired
	}

	room, ok := s.rooms.FindRoomByID(ctx, roomID)
	if !ok {
		return ErrRoomNotFound
	}

	user, ok := s.users.FindUserByID(ctx, userID)
	if !ok {
		return ErrUserNotFound
	}

	if room.HasMember(userID) {
		return ErrAlreadyRoomMember
	}

	if err := s.rooms.AddRoomMember(ctx, roomID, userID); err != nil {
		return fmt.Errorf("rooms.AddRoomMember: %w", err)
	}

	s.notifier.Broadcast(ctx, Event{
		Name:    EventUserJoinedRoom,
		Payload: RoomPresencePayload{RoomID: roomID, UserID: userID, Username: user.Username},
	}, nil)

	return nil
}

func (s *RoomService) SendRoomMessage(ctx context.Context, roomID string, senderID string, content string) (Message, error) {
	if senderID == "" || content == "" {
		return Message{}, ErrRoomMessageFields
	}

	room, ok := s.rooms.FindRoomByID(ctx, roomID)
	if !ok {
		return Message{}, ErrRoomNotFound
	}

	sender, ok := s.users.FindUserByID(ctx, senderID)
	if !ok {
		return Message{}, ErrSenderNotFound
	}

	if !room.HasMember(senderID) {
		return Message{}, ErrNotRoomMember
	}

	message := Message{
		ID:             uuid.NewString(),
		SenderID:       senderID,
		SenderUsername: sender.Username,
		RoomID:         roomID,
		RoomName:       room.Name,
		Content:        content,
		Timestamp:      time.Now().UTC(),
		Type:           MessageTypeRoom,
	}

	if err := s.messages.AppendMessage(ctx, message); err != nil {
		return Message{}, fmt.Errorf("messages.AppendMessage: %w", err)
	}

	s.notifier.Broadcast(ctx, Event{Name: EventNewRoomMessage, Payload: message}, nil)

	return message, nil
}

func (s *RoomService) RoomMessages(ctx context.Context, roomID string) ([]Message, error) {
	if _, ok := s.rooms.FindRoomByID(ctx, roomID); !ok {
		return nil, ErrRoomNotFound
	}

	return s.messages.RoomMessages(ctx, roomID), nil
}
