package session

import (
	"testing"

	"github.com/rahul0401-coder/intraview-AI-career/internal/models"
)

func hookedClient(events *[]models.LiveCodeEvent) *Client {
	c := NewClient(nil)
	c.SetSendHook(func(ev models.LiveCodeEvent) { *events = append(*events, ev) })
	return c
}

func TestHubBroadcastReachesRoomOnly(t *testing.T) {
	hub := NewHub()

	var a, b, other []models.LiveCodeEvent
	ca, cb, cOther := hookedClient(&a), hookedClient(&b), hookedClient(&other)
	hub.Join("iv1", ca)
	hub.Join("iv1", cb)
	hub.Join("iv2", cOther)

	hub.Broadcast(models.LiveCodeEvent{InterviewID: "iv1", Code: "x"})

	if len(a) != 1 || len(b) != 1 {
		t.Fatalf("room subscribers got %d/%d events, want 1/1", len(a), len(b))
	}
	if len(other) != 0 {
		t.Fatalf("other room got %d events, want 0", len(other))
	}
}

func TestHubLeave(t *testing.T) {
	hub := NewHub()

	var got []models.LiveCodeEvent
	c1, c2 := hookedClient(&got), hookedClient(&got)
	hub.Join("iv1", c1)
	hub.Join("iv1", c2)

	if remaining := hub.Leave("iv1", c1); remaining != 1 {
		t.Fatalf("remaining = %d, want 1", remaining)
	}
	if remaining := hub.Leave("iv1", c2); remaining != 0 {
		t.Fatalf("remaining = %d, want 0", remaining)
	}
	if n := hub.SubscriberCount("iv1"); n != 0 {
		t.Fatalf("subscriber count = %d, want 0", n)
	}

	// Broadcasting to an empty room is a no-op.
	hub.Broadcast(models.LiveCodeEvent{InterviewID: "iv1"})
	if len(got) != 0 {
		t.Fatalf("departed clients received %d events", len(got))
	}
}
