package domain_test

import (
	"context"
	"testing"

	"github.com/arthurdotwork/chatroom/internal/domain"
	"github.com/arthurdotwork/chatroom/internal/domain/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRoomService(t *testing.T) (*domain.RoomService, *mocks.MockUserStore, *mocks.MockRoomStore, *mocks.MockMessageStore, *mocks.MockNotifier) {
	users := mocks.NewMockUserStore(t)
	rooms := mocks.NewMockRoomStore(t)
	messages := mocks.NewMockMessageStore(t)
	notifier := mocks.NewMockNotifier(t)

	return domain.NewRoomService(users, rooms, messages, notifier), users, rooms, messages, notifier
}

func TestRoomService_CreateRoom(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t.Run("it should reject missing fields", func(t *testing.T) {
		service, _, _, _, _ := newRoomService(t)

		_, err := service.CreateRoom(ctx, "", "u1")
		require.ErrorIs(t, err, domain.ErrRoomFields)

		_, err = service.CreateRoom(ctx, "general", "")
		require.ErrorIs(t, err, domain.ErrRoomFields)
	})

	t.Run("it should return not found for an unknown creator", func(t *testing.T) {
		service, users, _, _, _ := newRoomService(t)

		users.On("FindUserByID", ctx, "u1").Return(domain.User{}, false).Once()

		_, err := service.CreateRoom(ctx, "general", "u1")
		require.ErrorIs(t, err, domain.ErrCreatorNotFound)
	})

	t.Run("it should make the creator the first member", func(t *testing.T) {
		service, users, rooms, _, _ := newRoomService(t)

		users.On("FindUserByID", ctx, "u1").Return(domain.User{ID: "u1", Username: "arthur"}, true).Once()
		rooms.On("CreateRoom", ctx, mock.MatchedBy(func(r domain.Room) bool {
			return r.Name == "general" && r.HasMember("u1")
		})).Return(nil).Once()

		room, err := service.CreateRoom(ctx, "general", "u1")
		require.NoError(t, err)
		require.NotEmpty(t, room.ID)
		require.Equal(t, []string{"u1"}, room.Members)
		require.Equal(t, "arthur", room.CreatorUsername)
	})
}

func TestRoomService_JoinRoom(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	room := domain.Room{ID: "r1", Name: "general", CreatorID: "u1", Members: []string{"u1"}}

	t.Run("it should reject a missing user id", func(t *testing.T) {
		service, _, _, _, _ := newRoomService(t)

		require.ErrorIs(t, service.JoinRoom(ctx, "r1", ""), domain.ErrUserIDRequired)
	})

	t.Run("it should return not found for an unknown room", func(t *testing.T) {
		service, _, rooms, _, _ := newRoomService(t)

		rooms.On("FindRoomByID", ctx, "r1").Return(domain.Room{}, false).Once()

		require.ErrorIs(t, service.JoinRoom(ctx, "r1", "u2"), domain.ErrRoomNotFound)
	})

	t.Run("it should return not found for an unknown user", func(t *testing.T) {
		service, users, rooms, _, _ := newRoomService(t)

		rooms.On("FindRoomByID", ctx, "r1").Return(room, true).Once()
		users.On("FindUserByID", ctx, "u2").Return(domain.User{}, false).Once()

		require.ErrorIs(t, service.JoinRoom(ctx, "r1", "u2"), domain.ErrUserNotFound)
	})

	t.Run("it should reject a user who is already a member", func(t *testing.T) {
		service, users, rooms, _, _ := newRoomService(t)

		rooms.On("FindRoomByID", ctx, "r1").Return(room, true).Once()
		users.On("FindUserByID", ctx, "u1").Return(domain.User{ID: "u1", Username: "arthur"}, true).Once()

		require.ErrorIs(t, service.JoinRoom(ctx, "r1", "u1"), domain.ErrAlreadyRoomMember)
	})

	t.Run("it should add the member and broadcast the join", func(t *testing.T) {
		service, users, rooms, _, notifier := newRoomService(t)

		rooms.On("FindRoomByID", ctx, "r1").Return(room, true).Once()
		users.On("FindUserByID", ctx, "u2").Return(domain.User{ID: "u2", Username: "john"}, true).Once()
		rooms.On("AddRoomMember", ctx, "r1", "u2").Return(nil).Once()
		notifier.On("Broadcast", ctx, domain.Event{
			Name:    domain.EventUserJoinedRoom,
			Payload: domain.RoomPresencePayload{RoomID: "r1", UserID: "u2", Username: "john"},
		}, (*domain.Session)(nil)).Return().Once()

		require.NoError(t, service.JoinRoom(ctx, "r1", "u2"))
	})
}

func TestRoomService_SendRoomMessage(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	room := domain.Room{ID: "r1", Name: "general", CreatorID: "u1", Members: []string{"u1"}}

	t.Run("it should reject missing fields", func(t *testing.T) {
		service, _, _, _, _ := newRoomService(t)

		_, err := service.SendRoomMessage(ctx, "r1", "", "hi")
		require.ErrorIs(t, err, domain.ErrRoomMessageFields)
	})

	t.Run("it should return not found for an unknown room", func(t *testing.T) {
		service, _, rooms, _, _ := newRoomService(t)

		rooms.On("FindRoomByID", ctx, "r1").Return(domain.Room{}, false).Once()

		_, err := service.SendRoomMessage(ctx, "r1", "u1", "hi")
		require.ErrorIs(t, err, domain.ErrRoomNotFound)
	})

	t.Run("it should forbid a sender who is not a member", func(t *testing.T) {
		service, users, rooms, _, _ := newRoomService(t)

		rooms.On("FindRoomByID", ctx, "r1").Return(room, true).Once()
		users.On("FindUserByID", ctx, "u3").Return(domain.User{ID: "u3", Username: "jane"}, true).Once()

		_, err := service.SendRoomMessage(ctx, "r1", "u3", "hi")
		require.ErrorIs(t, err, domain.ErrNotRoomMember)
	})

	t.Run("it should persist the message and broadcast it", func(t *testing.T) {
		service, users, rooms, messages, notifier := newRoomService(t)

		rooms.On("FindRoomByID", ctx, "r1").Return(room, true).Once()
		users.On("FindUserByID", ctx, "u1").Return(domain.User{ID: "u1", Username: "arthur"}, true).Once()
		messages.On("AppendMessage", ctx, mock.MatchedBy(func(m domain.Message) bool {
			return m.Type == domain.MessageTypeRoom && m.RoomID == "r1" && m.ReceiverID == ""
		})).Return(nil).Once()
		notifier.On("Broadcast", ctx, mock.MatchedBy(func(e domain.Event) bool {
			return e.Name == domain.EventNewRoomMessage
		}), (*domain.Session)(nil)).Return().Once()

		message, err := service.SendRoomMessage(ctx, "r1", "u1", "hi")
		require.NoError(t, err)
		require.Equal(t, "general", message.RoomName)
		require.Equal(t, "arthur", message.SenderUsername)
	})
}

func TestRoomService_RoomMessages(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t.Run("it should return not found for an unknown room", func(t *testing.T) {
		service, _, rooms, _, _ := newRoomService(t)

		rooms.On("FindRoomByID", ctx, "r1").Return(domain.Room{}, false).Once()

		_, err := service.RoomMessages(ctx, "r1")
		require.ErrorIs(t, err, domain.ErrRoomNotFound)
	})

	t.Run("it should return the room history", func(t *testing.T) {
		service, _, rooms, messages, _ := newRoomService(t)

		history := []domain.Message{{ID: "m1", RoomID: "r1", Content: "hi"}}
		rooms.On("FindRoomByID", ctx, "r1").Return(domain.Room{ID: "r1"}, true).Once()
		messages.On("RoomMessages", ctx, "r1").Return(history).Once()

		got, err := service.RoomMessages(ctx, "r1")
		require.NoError(t, err)
		require.Equal(t, history, got)
	})
}
