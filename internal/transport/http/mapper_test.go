package http

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/vibechat/vibechat-server/internal/core"
	"github.com/vibechat/vibechat-server/internal/proto"
)

func TestInboundToCommand(t *testing.T) {
	cmd, reply, err := inboundToCommand(proto.Inbound{
		Event: proto.InboundSetUsername,
		Data:  json.RawMessage(`"alice"`),
	})
	if err != nil || reply != nil {
		t.Fatalf("set-username: err=%v reply=%+v", err, reply)
	}
	if cmd.Kind != core.CommandSetUsername || cmd.Username != "alice" {
		t.Fatalf("unexpected command: %+v", cmd)
	}

	cmd, reply, err = inboundToCommand(proto.Inbound{
		Event: proto.InboundSendMessage,
		Data:  json.RawMessage(`{"content":"hi","username":"spoofed"}`),
	})
	if err != nil || reply != nil {
		t.Fatalf("send-message: err=%v reply=%+v", err, reply)
	}
	// The username is server-authoritative; only content survives mapping.
	if cmd.Kind != core.CommandSendMessage || cmd.Text != "hi" || cmd.Username != "" {
		t.Fatalf("unexpected command: %+v", cmd)
	}

	cmd, reply, err = inboundToCommand(proto.Inbound{Event: proto.InboundTyping})
	if err != nil || reply != nil || cmd.Kind != core.CommandTyping {
		t.Fatalf("typing: cmd=%+v reply=%+v err=%v", cmd, reply, err)
	}

	cmd, reply, err = inboundToCommand(proto.Inbound{Event: "dance"})
	if err != nil || cmd != nil {
		t.Fatalf("unknown event: cmd=%+v err=%v", cmd, err)
	}
	if reply == nil || reply.Event != proto.OutboundError {
		t.Fatalf("expected protocol error reply, got %+v", reply)
	}

	if _, _, err := inboundToCommand(proto.Inbound{
		Event: proto.InboundSetUsername,
		Data:  json.RawMessage(`{"not":"a string"}`),
	}); err == nil {
		t.Fatal("expected decode error for malformed payload")
	}
}

func TestOutboundFromEvent(t *testing.T) {
	ts := time.Unix(1700000000, 0)

	out := outboundFromEvent(&core.Event{
		Kind: core.EventRoomMessage,
		Room: "Lobby",
		Message: core.Message{
			Seq: 7, From: "alice", Text: "hi", CreatedAt: ts,
		},
	})
	if out.Event != proto.OutboundMessage {
		t.Fatalf("unexpected event name: %s", out.Event)
	}
	msg, ok := out.Data.(proto.EventMessage)
	if !ok || msg.Seq != 7 || msg.Username != "alice" || msg.Content != "hi" || msg.TS != ts.Unix() {
		t.Fatalf("unexpected payload: %+v", out.Data)
	}

	out = outboundFromEvent(&core.Event{Kind: core.EventStopTyping, User: "bob"})
	if out.Event != proto.OutboundStopTyping || out.Data != "bob" {
		t.Fatalf("unexpected stop-typing outbound: %+v", out)
	}

	out = outboundFromEvent(&core.Event{
		Kind:  core.EventError,
		Error: &core.RelayError{Code: core.ErrCodeInvalidRoom, Message: "No room!"},
	})
	if out.Event != proto.OutboundError || out.Data != "No room!" {
		t.Fatalf("unexpected error outbound: %+v", out)
	}

	out = outboundFromEvent(&core.Event{
		Kind:     core.EventHistory,
		Room:     "Lobby",
		Messages: []core.Message{{Seq: 1, From: "bob", Text: "old", CreatedAt: ts}},
	})
	if out.Event != proto.OutboundRoom {
		t.Fatalf("unexpected history event name: %s", out.Event)
	}
	history, ok := out.Data.([]proto.EventMessage)
	if !ok || len(history) != 1 || history[0].Content != "old" {
		t.Fatalf("unexpected history payload: %+v", out.Data)
	}
}
