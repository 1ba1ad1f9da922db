package proto

import "encoding/json"

// Inbound is the envelope for events coming from the client.
type Inbound struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Inbound event names (client -> server).
const (
	InboundSetUsername = "set-username"
	InboundRequestRoom = "request-room"
	InboundSendMessage = "send-message"
	InboundTyping      = "typing-state-change"
	InboundStopTyping  = "stop-typing"
)

// Outbound event names (server -> client).
const (
	OutboundError      = "errorMessage"
	OutboundRoom       = "room"
	OutboundMessage    = "message"
	OutboundTyping     = "typing"
	OutboundStopTyping = "stop-typing"
)

// SendMessageData is the payload of a send-message event. The username
// is server-authoritative and never taken from the client.
type SendMessageData struct {
	Content string `json:"content"`
}

// Outbound is the envelope for events sent to the client.
type Outbound struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// EventMessage is a chat or system message as delivered to clients.
// Seq gives clients a stable identity for list rendering.
type EventMessage struct {
	Seq      int64  `json:"seq,omitempty"`
	Username string `json:"username"`
	Content  string `json:"content"`
	TS       int64  `json:"ts,omitempty"`
}
