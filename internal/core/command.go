package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandSetUsername stores or overwrites the client's display name.
	CommandSetUsername CommandKind = iota
	// CommandJoinRoom moves the client into a room, leaving any previous one.
	CommandJoinRoom
	// CommandSendMessage delivers a chat message to the client's current room.
	CommandSendMessage
	// CommandTyping announces the client started typing.
	CommandTyping
	// CommandStopTyping announces the client stopped typing.
	CommandStopTyping
)

// Command represents an action requested by a client.
type Command struct {
	Kind     CommandKind
	Username string
	Room     string
	Text     string
}
