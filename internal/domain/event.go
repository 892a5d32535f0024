package domain

// Server-to-client event names as they appear on the wire.
const (
	EventUserOnline        = "userOnline"
	EventUserOffline       = "userOffline"
	EventUserStatusChanged = "userStatusChanged"
	EventNewMessage        = "newMessage"
	EventNewRoomMessage    = "newRoomMessage"
	EventUserJoinedRoom    = "userJoinedRoom"
	EventUserTyping        = "userTyping"
	EventUserStoppedTyping = "userStoppedTyping"
)

type Event struct {
	Name    string
	Payload any
}

type PresencePayload struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

type StatusPayload struct {
	UserID   string `json:"userId"`
	IsOnline bool   `json:"isOnline"`
}

type RoomPresencePayload struct {
	RoomID   string `json:"roomId"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// TypingPayload omits RoomID for direct typing indicators.
type TypingPayload struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	RoomID   string `json:"roomId,omitempty"`
}
