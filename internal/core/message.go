package core

import "time"

// SystemUser is the reserved sender name for join/leave/welcome notices.
const SystemUser = "System"

// Message is the domain model for a chat message. Seq is a monotonic
// per-hub sequence number that gives every delivered message a stable
// identity for clients.
type Message struct {
	Seq       int64
	Room      string
	From      string
	Text      string
	CreatedAt time.Time
}
