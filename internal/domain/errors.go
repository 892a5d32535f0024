package domain

type ErrorCode int

const (
	CodeValidation ErrorCode = iota + 1
	CodeNotFound
	CodeConflict
	CodeForbidden
)

// Error carries a user-facing message plus the code transports map to a
// status. Messages double as API responses, hence the capitalization.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrUsernameRequired    = &Error{Code: CodeValidation, Message: "Username is required"}
	ErrDirectMessageFields = &Error{Code: CodeValidation, Message: "senderId, receiverId, and content are required"}
	ErrRoomFields          = &Error{Code: CodeValidation, Message: "Room name and creator ID are required"}
	ErrUserIDRequired      = &Error{Code: CodeValidation, Message: "User ID is required"}
	ErrRoomMessageFields   = &Error{Code: CodeValidation, Message: "Sender ID and content are required"}

	ErrUserNotFound     = &Error{Code: CodeNotFound, Message: "User not found"}
	ErrSenderNotFound   = &Error{Code: CodeNotFound, Message: "Sender not found"}
	ErrReceiverNotFound = &Error{Code: CodeNotFound, Message: "Receiver not found"}
	ErrCreatorNotFound  = &Error{Code: CodeNotFound, Message: "Creator not found"}
	ErrRoomNotFound     = &Error{Code: CodeNotFound, Message: "Room not found"}

	ErrUsernameTaken     = &Error{Code: CodeConflict, Message: "Username already exists"}
	ErrAlreadyRoomMember = &Error{Code: CodeConflict, Message: "User is already a member of this room"}

	ErrNotRoomMember = &Error{Code: CodeForbidden, Message: "User is not a member of this room"}
)
