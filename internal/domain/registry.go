package domain

import "sync"

// Session is the live-connection handle for one connected user. It exists
// only while the underlying transport is connected and is never persisted.
// Room subscriptions on a session are independent of store-level room
// membership.
type Session struct {
	UserID    string
	Username  string
	messenger Messenger
	rooms     map[string]struct{}
}

func (s *Session) Messenger() Messenger {
	return s.messenger
}

// SessionRegistry maps a user identity to at most one live session. The
// last registration for a user wins; superseded sessions are reaped by the
// transport when their connection dies.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]*Session)}
}

func (r *SessionRegistry) Register(userID string, username string, messenger Messenger) *Session {
	session := &Session{
		UserID:    userID,
		Username:  username,
		messenger: messenger,
		rooms:     make(map[string]struct{}),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[userID] = session
	return session
}

// Unregister removes the user mapping only while it still points at the
// given session, so disconnecting a superseded session never evicts its
// replacement. It reports whether the mapping was removed.
func (r *SessionRegistry) Unregister(session *Session) bool {
	if session == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.sessions[session.UserID]; !ok || current != session {
		return false
	}

	delete(r.sessions, session.UserID)
	return true
}

func (r *SessionRegistry) JoinRoom(session *Session, roomID string) {
	if session == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session.rooms[roomID] = struct{}{}
}

func (r *SessionRegistry) LeaveRoom(session *Session, roomID string) {
	if session == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(session.rooms, roomID)
}

func (r *SessionRegistry) SessionFor(userID string) *Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sessions[userID]
}

func (r *SessionRegistry) Sessions() []*Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]*Session, 0, len(r.sessions))
	for _, session := range r.sessions {
		sessions = append(sessions, session)
	}

	return sessions
}

func (r *SessionRegistry) RoomSessions(roomID string) []*Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sessions []*Session
	for _, session := range r.sessions {
		if _, ok := session.rooms[roomID]; ok {
			sessions = append(sessions, session)
		}
	}

	return sessions
}
