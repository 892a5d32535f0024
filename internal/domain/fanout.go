package domain

import (
	"context"
	"log/slog"
)

// Fanout delivers events to the live sessions resolved by a scope.
// Delivery is at-most-once: a failed send or an unresolved direct target is
// dropped, never queued or retried.
type Fanout struct {
	registry *SessionRegistry
}

func NewFanout(registry *SessionRegistry) *Fanout {
	return &Fanout{registry: registry}
}

func (f *Fanout) Broadcast(ctx context.Context, event Event, exclude *Session) {
	for _, session := range f.registry.Sessions() {
		if session == exclude {
			continue
		}

		f.send(ctx, session, event)
	}
}

// NotifyRoom reaches the sessions currently subscribed to the room,
// regardless of store-level membership.
func (f *Fanout) NotifyRoom(ctx context.Context, roomID string, event Event, exclude *Session) {
	for _, session := range f.registry.RoomSessions(roomID) {
		if session == exclude {
			continue
		}

		f.send(ctx, session, event)
	}
}

func (f *Fanout) NotifyUser(ctx context.Context, userID string, event Event) {
	session := f.registry.SessionFor(userID)
	if session == nil {
		return
	}

	f.send(ctx, session, event)
}

func (f *Fanout) send(ctx context.Context, session *Session, event Event) {
	if err := session.messenger.Send(ctx, event); err != nil {
		slog.DebugContext(ctx, "dropping event", "event", event.Name, "user_id", session.UserID, "error", err)
	}
}
