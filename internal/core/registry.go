package core

import "sync"

// Registry maps room names to the set of clients currently joined.
// Rooms are created implicitly on first join and pruned once empty.
// All mutations happen on the hub goroutine; the mutex makes the
// Members snapshot safe to take from anywhere.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
}

// NewRegistry constructs an empty room registry.
func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[string]map[*Client]struct{}),
	}
}

// Join inserts a client into a room, creating the room if needed.
// Returns true if newly added, false if already a member.
func (r *Registry) Join(room string, c *Client) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.rooms[room]
	if !ok {
		members = make(map[*Client]struct{})
		r.rooms[room] = members
	}
	if _, exists := members[c]; exists {
		return false
	}
	members[c] = struct{}{}
	return true
}

// Leave removes a client from a room. A missing room or non-member
// is a no-op. Empty rooms are dropped.
func (r *Registry) Leave(room string, c *Client) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.rooms[room]
	if !ok {
		return false
	}
	if _, exists := members[c]; !exists {
		return false
	}
	delete(members, c)
	if len(members) == 0 {
		delete(r.rooms, room)
	}
	return true
}

// Broadcast sends an event to every member of a room except the given
// client (nil excludes no one). Absent rooms degrade to a no-op.
func (r *Registry) Broadcast(room string, except *Client, ev *Event) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for client := range r.rooms[room] {
		if client == except {
			continue
		}
		client.send(ev)
	}
}

// Members returns a snapshot of the ids of clients in a room.
func (r *Registry) Members(room string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := r.rooms[room]
	ids := make([]string, 0, len(members))
	for client := range members {
		ids = append(ids, client.ID)
	}
	return ids
}
