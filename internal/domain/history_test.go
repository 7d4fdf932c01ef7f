package domain

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConversationHistoryEvictsOldestHalf(t *testing.T) {
	h := NewConversationHistory(nil)

	for i := 0; i < MaxConversationMessages/2; i++ {
		h.AppendExchange(fmt.Sprintf("cmd-%d", i), fmt.Sprintf("reply-%d", i))
	}
	if h.Len() != MaxConversationMessages {
		t.Fatalf("Len() = %d, want %d", h.Len(), MaxConversationMessages)
	}

	// The next message overflows the cap and drops the oldest half in
	// one step.
	h.AppendExchange("overflow", "overflow-reply")
	if h.Len() != MaxConversationMessages/2+1 {
		t.Fatalf("Len() after overflow = %d, want %d", h.Len(), MaxConversationMessages/2+1)
	}

	messages := h.Messages()
	last := messages[len(messages)-1]
	want := Message{Role: "assistant", Content: "overflow-reply"}
	if diff := cmp.Diff(want, last); diff != "" {
		t.Fatalf("newest message mismatch (-want +got):\n%s", diff)
	}
	if messages[0].Content == "cmd-0" {
		t.Fatal("oldest message survived eviction")
	}
}

func TestConversationHistoryNeverExceedsCap(t *testing.T) {
	h := NewConversationHistory(nil)
	for i := 0; i < 100; i++ {
		h.AppendExchange("cmd", "reply")
		if h.Len() > MaxConversationMessages {
			t.Fatalf("Len() = %d after %d exchanges, cap is %d", h.Len(), i+1, MaxConversationMessages)
		}
	}
}

func TestNewConversationHistoryTrimsPersistedOverflow(t *testing.T) {
	var persisted []Message
	for i := 0; i < MaxConversationMessages*2; i++ {
		persisted = append(persisted, Message{Role: "user", Content: fmt.Sprintf("m-%d", i)})
	}
	h := NewConversationHistory(persisted)
	if h.Len() > MaxConversationMessages {
		t.Fatalf("Len() = %d, want <= %d", h.Len(), MaxConversationMessages)
	}
}

func TestLastExchanges(t *testing.T) {
	h := NewConversationHistory(nil)
	h.AppendExchange("first", "first-reply")
	h.AppendExchange("second", "second-reply")
	h.AppendExchange("third", "third-reply")

	got := h.LastExchanges(2)
	want := []Message{
		{Role: "user", Content: "second"},
		{Role: "assistant", Content: "second-reply"},
		{Role: "user", Content: "third"},
		{Role: "assistant", Content: "third-reply"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("LastExchanges(2) mismatch (-want +got):\n%s", diff)
	}

	if got := h.LastExchanges(10); len(got) != 6 {
		t.Fatalf("LastExchanges(10) len = %d, want all 6 messages", len(got))
	}
}

func TestConversationHistoryReset(t *testing.T) {
	h := NewConversationHistory(nil)
	h.AppendExchange("cmd", "reply")
	h.Reset()
	if h.Len() != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", h.Len())
	}
}
