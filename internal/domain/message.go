package domain

import "time"

type MessageType string

const (
	MessageTypeDirect MessageType = "direct"
	MessageTypeRoom   MessageType = "room"
)

// Message is an immutable entry of the append-only message log. Exactly one
// of ReceiverID and RoomID is set, matching Type.
type Message struct {
	ID               string      `json:"id"`
	SenderID         string      `json:"senderId"`
	SenderUsername   string      `json:"senderUsername"`
	ReceiverID       string      `json:"receiverId,omitempty"`
	ReceiverUsername string      `json:"receiverUsername,omitempty"`
	RoomID           string      `json:"roomId,omitempty"`
	RoomName         string      `json:"roomName,omitempty"`
	Content          string      `json:"content"`
	Timestamp        time.Time   `json:"timestamp"`
	Type             MessageType `json:"type"`
}
