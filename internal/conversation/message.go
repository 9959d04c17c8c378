// Package conversation holds the in-memory chat state for the Converso screen:
// the append-only message store and the view-model that owns the draft.
package conversation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrUnknownSender is returned by ParseSender for anything but Chatbot or User.
var ErrUnknownSender = errors.New("unknown sender")

// Sender identifies who wrote a message.
type Sender int

const (
	SenderChatbot Sender = iota
	SenderUser
)

// String returns the display name used in seeds and config files.
func (s Sender) String() string {
	switch s {
	case SenderChatbot:
		return "Chatbot"
	case SenderUser:
		return "User"
	default:
		return fmt.Sprintf("Sender(%d)", int(s))
	}
}

// ParseSender maps a display name (case-insensitive) back to a Sender.
func ParseSender(s string) (Sender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "chatbot":
		return SenderChatbot, nil
	case "user":
		return SenderUser, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSender, s)
	}
}

// Message is one line of chat. Messages are immutable once appended.
type Message struct {
	ID     uuid.UUID
	Sender Sender
	Body   string
	Time   time.Time
}

// NewMessage stamps a message with a fresh ID and the current time.
func NewMessage(sender Sender, body string) Message {
	return Message{
		ID:     uuid.New(),
		Sender: sender,
		Body:   body,
		Time:   time.Now(),
	}
}

// SeedMessages returns the conversation the screen opens with.
func SeedMessages() []Message {
	return []Message{
		NewMessage(SenderChatbot, "Hello! How can I help you?"),
		NewMessage(SenderUser, "I'd like to practice some SwiftUI!"),
		NewMessage(SenderChatbot, "Sure! Let's get started."),
		NewMessage(SenderUser, "Thanks!"),
	}
}
