package models

import "github.com/google/uuid"

type Role int

const (
	User Role = iota
	Assistant
	Program
)

// Message is a single transcript entry. The transcript is append-only:
// entries are never edited or removed once added.
type Message struct {
	ID      string
	Content string
	Role    Role
	// Error marks an assistant turn that stands in for a failed send.
	// Error turns still go through the assistant formatting pipeline.
	Error bool
}

func NewMessage(role Role, content string) Message {
	return Message{
		ID:      uuid.NewString(),
		Content: content,
		Role:    role,
	}
}

func NewErrorMessage(content string) Message {
	msg := NewMessage(Assistant, content)
	msg.Error = true
	return msg
}
