package core

// Client is a single live connection as seen by the core layer.
// Username and room membership live in the Hub's session state,
// not on the transport handle.
type Client struct {
	ID       string
	Commands chan *Command
	Events   chan *Event
}

// NewClient constructs a client with initialized channels.
func NewClient(id string) *Client {
	return &Client{
		ID:       id,
		Commands: make(chan *Command, 8),
		Events:   make(chan *Event, 16),
	}
}

// send delivers an event without blocking; slow consumers lose events.
func (c *Client) send(ev *Event) {
	select {
	case c.Events <- ev:
	default:
	}
}
