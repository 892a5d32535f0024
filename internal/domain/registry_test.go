package domain_test

import (
	"testing"

	"github.com/arthurdotwork/chatroom/internal/domain"
	"github.com/arthurdotwork/chatroom/internal/domain/mocks"
	"github.com/stretchr/testify/require"
)

func TestSessionRegistry_Register(t *testing.T) {
	t.Parallel()

	t.Run("it should resolve the registered session", func(t *testing.T) {
		registry := domain.NewSessionRegistry()
		messenger := mocks.NewMockMessenger(t)

		session := registry.Register("u1", "arthur", messenger)
		require.NotNil(t, session)
		require.Equal(t, session, registry.SessionFor("u1"))
	})

	t.Run("it should replace an existing session for the same user", func(t *testing.T) {
		registry := domain.NewSessionRegistry()
		messenger := mocks.NewMockMessenger(t)

		first := registry.Register("u1", "arthur", messenger)
		second := registry.Register("u1", "arthur", messenger)

		require.NotEqual(t, first, second)
		require.Equal(t, second, registry.SessionFor("u1"))
		require.Len(t, registry.Sessions(), 1)
	})
}

func TestSessionRegistry_Unregister(t *testing.T) {
	t.Parallel()

	t.Run("it should remove the mapping of the current session", func(t *testing.T) {
		registry := domain.NewSessionRegistry()
		messenger := mocks.NewMockMessenger(t)

		session := registry.Register("u1", "arthur", messenger)

		require.True(t, registry.Unregister(session))
		require.Nil(t, registry.SessionFor("u1"))
	})

	t.Run("it should not remove the mapping of a superseded session", func(t *testing.T) {
		registry := domain.NewSessionRegistry()
		messenger := mocks.NewMockMessenger(t)

		first := registry.Register("u1", "arthur", messenger)
		second := registry.Register("u1", "arthur", messenger)

		require.False(t, registry.Unregister(first))
		require.Equal(t, second, registry.SessionFor("u1"))

		require.True(t, registry.Unregister(second))
		require.Nil(t, registry.SessionFor("u1"))
	})

	t.Run("it should tolerate a nil session", func(t *testing.T) {
		registry := domain.NewSessionRegistry()

		require.False(t, registry.Unregister(nil))
	})
}

func TestSessionRegistry_Rooms(t *testing.T) {
	t.Parallel()

	t.Run("it should track room subscriptions per session", func(t *testing.T) {
		registry := domain.NewSessionRegistry()
		messenger := mocks.NewMockMessenger(t)

		arthur := registry.Register("u1", "arthur", messenger)
		john := registry.Register("u2", "john", messenger)

		registry.JoinRoom(arthur, "general")
		registry.JoinRoom(john, "random")

		require.Equal(t, []*domain.Session{arthur}, registry.RoomSessions("general"))
		require.Equal(t, []*domain.Session{john}, registry.RoomSessions("random"))
	})

	t.Run("it should be idempotent on join", func(t *testing.T) {
		registry := domain.NewSessionRegistry()
		messenger := mocks.NewMockMessenger(t)

		session := registry.Register("u1", "arthur", messenger)

		registry.JoinRoom(session, "general")
		registry.JoinRoom(session, "general")

		require.Len(t, registry.RoomSessions("general"), 1)
	})

	t.Run("it should no-op when leaving a room that was never joined", func(t *testing.T) {
		registry := domain.NewSessionRegistry()
		messenger := mocks.NewMockMessenger(t)

		session := registry.Register("u1", "arthur", messenger)

		registry.LeaveRoom(session, "general")
		require.Empty(t, registry.RoomSessions("general"))
	})

	t.Run("it should stop resolving a session after it leaves a room", func(t *testing.T) {
		registry := domain.NewSessionRegistry()
		messenger := mocks.NewMockMessenger(t)

		session := registry.Register("u1", "arthur", messenger)

		registry.JoinRoom(session, "general")
		registry.LeaveRoom(session, "general")

		require.Empty(t, registry.RoomSessions("general"))
	})

	t.Run("it should tolerate a nil session", func(t *testing.T) {
		registry := domain.NewSessionRegistry()

		registry.JoinRoom(nil, "general")
		registry.LeaveRoom(nil, "general")

		require.Empty(t, registry.RoomSessions("general"))
	})
}
