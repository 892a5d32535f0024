package domain

import (
	"context"
	"log/slog"
)

// SessionService handles live-connection events: identification, room
// subscriptions, typing indicators, and the presence announcements they
// trigger. It never touches the persistent store; a session can subscribe
// to a room it is not a store-level member of, and vice versa.
type SessionService struct {
	registry *SessionRegistry
	notifier Notifier
}

func NewSessionService(registry *SessionRegistry, notifier Notifier) *SessionService {
	return &SessionService{registry: registry, notifier: notifier}
}

func (s *SessionService) Join(ctx context.Context, userID string, username string, messenger Messenger) *Session {
	session := s.registry.Register(userID, username, messenger)

	slog.DebugContext(ctx, "user joined", "user_id", userID, "username", username)

	s.notifier.Broadcast(ctx, Event{
		Name:    EventUserOnline,
		Payload: PresencePayload{UserID: userID, Username: username},
	}, session)

	return session
}

// Disconnect announces the user offline only when the session still owned
// its registry mapping; disconnecting a superseded session is a no-op.
func (s *SessionService) Disconnect(ctx context.Context, session *Session) {
	if session == nil {
		return
	}

	if !s.registry.Unregister(session) {
		return
	}

	slog.DebugContext(ctx, "user disconnected", "user_id", session.UserID)

	s.notifier.Broadcast(ctx, Event{
		Name:    EventUserOffline,
		Payload: PresencePayload{UserID: session.UserID, Username: session.Username},
	}, session)
}

func (s *SessionService) JoinRoom(ctx context.Context, session *Session, roomID string) {
	s.registry.JoinRoom(session, roomID)
}

func (s *SessionService) LeaveRoom(ctx context.Context, session *Session, roomID string) {
	s.registry.LeaveRoom(session, roomID)
}

func (s *SessionService) Typing(ctx context.Context, session *Session, roomID string, receiverID string) {
	s.typing(ctx, session, roomID, receiverID, EventUserTyping)
}

func (s *SessionService) StopTyping(ctx context.Context, session *Session, roomID string, receiverID string) {
	s.typing(ctx, session, roomID, receiverID, EventUserStoppedTyping)
}

func (s *SessionService) typing(ctx context.Context, session *Session, roomID string, receiverID string, name string) {
	if session == nil {
		return
	}

	switch {
	case roomID != "":
		s.notifier.NotifyRoom(ctx, roomID, Event{
			Name:    name,
			Payload: TypingPayload{UserID: session.UserID, Username: session.Username, RoomID: roomID},
		}, session)
	case receiverID != "":
		s.notifier.NotifyUser(ctx, receiverID, Event{
			Name:    name,
			Payload: TypingPayload{UserID: session.UserID, Username: session.Username},
		})
	}
}

// Shutdown asks every live connection to close; used on graceful stop.
func (s *SessionService) Shutdown(ctx context.Context) {
	for _, session := range s.registry.Sessions() {
		if err := session.Messenger().Close(ctx); err != nil {
			slog.DebugContext(ctx, "error closing session", "user_id", session.UserID, "error", err)
		}
	}
}
