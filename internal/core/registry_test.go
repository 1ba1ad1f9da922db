package core

import "testing"

func TestRegistryJoinIsIdempotent(t *testing.T) {
	reg := NewRegistry()
	c := NewClient("c1")

	if !reg.Join("general", c) {
		t.Fatal("first join reported not added")
	}
	if reg.Join("general", c) {
		t.Fatal("second join reported added")
	}
	if members := reg.Members("general"); len(members) != 1 {
		t.Fatalf("expected 1 member, got %v", members)
	}
}

func TestRegistryLeaveUnknownIsNoop(t *testing.T) {
	reg := NewRegistry()
	c := NewClient("c1")

	if reg.Leave("ghost", c) {
		t.Fatal("leave of unknown room reported removal")
	}

	reg.Join("general", c)
	if !reg.Leave("general", c) {
		t.Fatal("leave reported no removal")
	}
	if reg.Leave("general", c) {
		t.Fatal("double leave reported removal")
	}
	if members := reg.Members("general"); len(members) != 0 {
		t.Fatalf("expected empty room, got %v", members)
	}
}

func TestRegistryBroadcastExcludesSender(t *testing.T) {
	reg := NewRegistry()
	alice := NewClient("c1")
	bob := NewClient("c2")
	outsider := NewClient("c3")

	reg.Join("general", alice)
	reg.Join("general", bob)
	reg.Join("elsewhere", outsider)

	reg.Broadcast("general", alice, &Event{Kind: EventTyping, User: "alice"})

	select {
	case ev := <-bob.Events:
		if ev.User != "alice" {
			t.Fatalf("unexpected event: %+v", ev)
		}
	default:
		t.Fatal("bob received nothing")
	}
	select {
	case ev := <-alice.Events:
		t.Fatalf("sender received its own broadcast: %+v", ev)
	default:
	}
	select {
	case ev := <-outsider.Events:
		t.Fatalf("outsider received room broadcast: %+v", ev)
	default:
	}

	// Broadcast to an absent room is a silent no-op.
	reg.Broadcast("ghost", nil, &Event{Kind: EventTyping})
}
