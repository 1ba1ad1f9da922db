package core

// Error codes for domain errors.
const (
	ErrCodeInvalidUsername = "invalid_username"
	ErrCodeUsernameNotSet  = "username_not_set"
	ErrCodeInvalidRoom     = "invalid_room"
	ErrCodeNoRoomJoined    = "no_room_joined"
)

// RelayError wraps a code and a human-readable message. It is delivered
// to the offending client only and is never fatal to the connection.
type RelayError struct {
	Code    string
	Message string
}

func (e *RelayError) Error() string {
	return e.Message
}

func errInvalidUsername() *RelayError {
	return &RelayError{Code: ErrCodeInvalidUsername, Message: "No username!"}
}

func errUsernameNotSet() *RelayError {
	return &RelayError{Code: ErrCodeUsernameNotSet, Message: "Username not set!"}
}

func errInvalidRoom() *RelayError {
	return &RelayError{Code: ErrCodeInvalidRoom, Message: "No room!"}
}

func errNoRoomJoined() *RelayError {
	return &RelayError{Code: ErrCodeNoRoomJoined, Message: "No rooms joined!"}
}
