package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/vibechat/vibechat-server/internal/store"
)

const (
	// DefaultWelcomeRoom is the reserved room that greets joiners.
	DefaultWelcomeRoom = "Welcome Room"
	// DefaultHistoryLimit caps how many past messages a joiner receives.
	DefaultHistoryLimit = 50
)

// session is the coordinator-owned state of one connection.
type session struct {
	username string
	room     string
}

type clientCommand struct {
	client *Client
	cmd    *Command
}

// Hub coordinates sessions and rooms. A single goroutine started by Run
// consumes all client commands, so every join/leave/broadcast executes
// as one critical section and the one-room-per-client invariant holds
// under concurrent connections.
type Hub struct {
	// WelcomeRoom and HistoryLimit may be adjusted before Run is called.
	WelcomeRoom  string
	HistoryLimit int

	store store.Store
	log   *zerolog.Logger

	register   chan *Client
	unregister chan *Client
	commands   chan clientCommand
	done       chan struct{}

	sessions map[*Client]*session
	registry *Registry
	seq      int64
}

// NewHub creates a hub. A nil store disables message history.
func NewHub(st store.Store, logger *zerolog.Logger) *Hub {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Hub{
		WelcomeRoom:  DefaultWelcomeRoom,
		HistoryLimit: DefaultHistoryLimit,
		store:        st,
		log:          logger,
		register:     make(chan *Client),
		unregister:   make(chan *Client),
		commands:     make(chan clientCommand, 64),
		done:         make(chan struct{}),
		sessions:     make(map[*Client]*session),
		registry:     NewRegistry(),
	}
}

// RegisterClient adds a connection to the hub and starts consuming its
// commands. Safe to call after shutdown (no-op).
func (h *Hub) RegisterClient(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
	}
}

// UnregisterClient removes a connection, cleaning up any room
// membership it still holds. No leave notification is broadcast.
// Callers must not send further commands for this client.
func (h *Hub) UnregisterClient(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// RoomMembers returns a snapshot of connection ids currently in a room.
func (h *Hub) RoomMembers(room string) []string {
	return h.registry.Members(room)
}

// Run processes registrations and commands until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	// Start the sequence above every persisted id so history entries
	// and live events never share a number within a client's stream.
	if h.store != nil {
		if id, err := h.store.LastMessageID(ctx); err != nil {
			h.log.Warn().Err(err).Msg("failed to seed message sequence")
		} else {
			h.seq = id
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.handleRegister(c)
		case c := <-h.unregister:
			h.handleUnregister(c)
		case cc := <-h.commands:
			h.handleCommand(ctx, cc.client, cc.cmd)
		}
	}
}

func (h *Hub) handleRegister(c *Client) {
	if _, exists := h.sessions[c]; exists {
		return
	}
	h.sessions[c] = &session{}
	h.log.Debug().Str("client_id", c.ID).Msg("client registered")

	// Pump the client's commands into the hub's single stream.
	go func() {
		for {
			select {
			case cmd, ok := <-c.Commands:
				if !ok {
					return
				}
				select {
				case h.commands <- clientCommand{client: c, cmd: cmd}:
				case <-h.done:
					return
				}
			case <-h.done:
				return
			}
		}
	}()
}

func (h *Hub) handleUnregister(c *Client) {
	sess, exists := h.sessions[c]
	if !exists {
		return
	}
	if sess.room != "" {
		h.registry.Leave(sess.room, c)
	}
	delete(h.sessions, c)
	close(c.Commands) // stops the pump goroutine
	close(c.Events)
	h.log.Debug().Str("client_id", c.ID).Msg("client unregistered")
}

func (h *Hub) handleCommand(ctx context.Context, c *Client, cmd *Command) {
	sess, exists := h.sessions[c]
	if !exists {
		// Commands buffered past unregistration are dropped.
		return
	}

	switch cmd.Kind {
	case CommandSetUsername:
		h.setUsername(c, sess, cmd.Username)
	case CommandJoinRoom:
		h.joinRoom(ctx, c, sess, cmd.Room)
	case CommandSendMessage:
		h.sendMessage(ctx, c, sess, cmd.Text)
	case CommandTyping:
		h.notifyTyping(c, sess, EventTyping)
	case CommandStopTyping:
		h.notifyTyping(c, sess, EventStopTyping)
	}
}

// setUsername stores the display name. Last value wins; changing the
// name never forces leaving a room.
func (h *Hub) setUsername(c *Client, sess *session, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		c.send(errorEvent(errInvalidUsername()))
		return
	}
	sess.username = name
}

// joinRoom moves the client to the requested room. The old room is
// vacated (with a leave notice to its remaining members) before the new
// one is entered, so a client is never in two rooms at once.
func (h *Hub) joinRoom(ctx context.Context, c *Client, sess *session, room string) {
	if sess.username == "" {
		c.send(errorEvent(errUsernameNotSet()))
		return
	}
	if room == "" {
		c.send(errorEvent(errInvalidRoom()))
		return
	}

	if sess.room != "" {
		h.registry.Leave(sess.room, c)
		h.registry.Broadcast(sess.room, nil, h.systemMessage(sess.room, sess.username+" has left"))
	}

	sess.room = room
	h.registry.Join(room, c)
	h.log.Debug().Str("client_id", c.ID).Str("room", room).Msg("client joined room")

	h.sendHistory(ctx, c, room)
	if room == h.WelcomeRoom {
		c.send(h.systemMessage(room, h.welcomeText(sess.username)))
	}
	h.registry.Broadcast(room, c, h.systemMessage(room, sess.username+" has joined"))
}

// sendMessage relays a chat message to the other members of the
// client's current room. The sender never receives its own echo.
func (h *Hub) sendMessage(ctx context.Context, c *Client, sess *session, text string) {
	if sess.room == "" {
		c.send(errorEvent(errNoRoomJoined()))
		return
	}

	msg := Message{
		Seq:       h.nextSeq(),
		Room:      sess.room,
		From:      sess.username,
		Text:      text,
		CreatedAt: time.Now(),
	}

	if h.store != nil {
		if _, err := h.store.SaveMessage(ctx, store.Message{
			Room:      msg.Room,
			Username:  msg.From,
			Body:      msg.Text,
			CreatedAt: msg.CreatedAt,
		}); err != nil {
			h.log.Warn().Err(err).Str("room", msg.Room).Msg("failed to persist message")
		}
	}

	h.registry.Broadcast(sess.room, c, &Event{
		Kind:    EventRoomMessage,
		Room:    sess.room,
		User:    msg.From,
		Message: msg,
	})
}

// notifyTyping relays a typing state change. Without a room it is a
// silent no-op rather than an error.
func (h *Hub) notifyTyping(c *Client, sess *session, kind EventKind) {
	if sess.room == "" {
		return
	}
	h.registry.Broadcast(sess.room, c, &Event{
		Kind: kind,
		Room: sess.room,
		User: sess.username,
	})
}

// sendHistory replays the most recent persisted room messages to the
// joining client only. A nil store or a storage error degrades to no
// history, never to a client-visible failure.
func (h *Hub) sendHistory(ctx context.Context, c *Client, room string) {
	if h.store == nil || h.HistoryLimit <= 0 {
		return
	}

	stored, err := h.store.RecentMessages(ctx, room, h.HistoryLimit)
	if err != nil {
		h.log.Warn().Err(err).Str("room", room).Msg("failed to load history")
		return
	}

	messages := make([]Message, 0, len(stored))
	for _, m := range stored {
		messages = append(messages, Message{
			Seq:       m.ID,
			Room:      m.Room,
			From:      m.Username,
			Text:      m.Body,
			CreatedAt: m.CreatedAt,
		})
	}
	c.send(&Event{Kind: EventHistory, Room: room, Messages: messages})
}

func (h *Hub) systemMessage(room, text string) *Event {
	return &Event{
		Kind: EventRoomMessage,
		Room: room,
		User: SystemUser,
		Message: Message{
			Seq:       h.nextSeq(),
			Room:      room,
			From:      SystemUser,
			Text:      text,
			CreatedAt: time.Now(),
		},
	}
}

func (h *Hub) welcomeText(username string) string {
	return fmt.Sprintf("Welcome %s! You are in the %s. You can switch to a new room using the tabs above, "+
		"to chat with people feeling the same vibes as you. Now that you got the rundown, get a (chat)room!",
		username, h.WelcomeRoom)
}

func (h *Hub) nextSeq() int64 {
	h.seq++
	return h.seq
}

func errorEvent(err *RelayError) *Event {
	return &Event{Kind: EventError, Error: err}
}
