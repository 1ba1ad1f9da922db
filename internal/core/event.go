package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventRoomMessage notifies clients about a chat message in a room.
	EventRoomMessage EventKind = iota
	// EventHistory delivers past room messages to a client upon joining.
	EventHistory
	// EventTyping notifies room members that a user started typing.
	EventTyping
	// EventStopTyping notifies room members that a user stopped typing.
	EventStopTyping
	// EventError notifies a single client about a domain error.
	EventError
)

// Event is sent to clients to describe what happened in the system.
type Event struct {
	Kind     EventKind
	Room     string
	User     string
	Message  Message
	Messages []Message // for EventHistory
	Error    *RelayError
}
