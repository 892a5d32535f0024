package domain

import "context"

// Store contracts are the directory surface over the persisted
// collections: finders report absence, not errors.

type UserStore interface {
	Users(ctx context.Context) []User
	FindUserByID(ctx context.Context, id string) (User, bool)
	FindUserByUsername(ctx context.Context, username string) (User, bool)
	CreateUser(ctx context.Context, user User) error
	UpdateUser(ctx context.Context, user User) error
}

type RoomStore interface {
	Rooms(ctx context.Context) []Room
	FindRoomByID(ctx context.Context, id string) (Room, bool)
	CreateRoom(ctx context.Context, room Room) error
	AddRoomMember(ctx context.Context, roomID string, userID string) error
}

type MessageStore interface {
	AppendMessage(ctx context.Context, message Message) error
	DirectMessages(ctx context.Context, userID1 string, userID2 string) []Message
	UserMessages(ctx context.Context, userID string) []Message
	RoomMessages(ctx context.Context, roomID string) []Message
}

// Messenger is the transport end of one live connection.
type Messenger interface {
	Send(ctx context.Context, event Event) error
	Close(ctx context.Context) error
}

// Notifier resolves a delivery scope and hands the event to every live
// connection in it. Delivery is best-effort and never reported back.
type Notifier interface {
	Broadcast(ctx context.Context, event Event, exclude *Session)
	NotifyRoom(ctx context.Context, roomID string, event Event, exclude *Session)
	NotifyUser(ctx context.Context, userID string, event Event)
}
