package chat

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is one turn in the conversation. Messages are never mutated after
// creation; the session log is append-only. Model text may carry **bold**
// markers, which are a display concern and are not interpreted here.
type Message struct {
	ID        string
	Role      Role
	Text      string
	Timestamp time.Time

	// IsError marks a synthesized failure notice rather than genuine
	// model output.
	IsError bool
}

// Turn is the history representation sent to the generation service:
// a message stripped down to what the model needs.
type Turn struct {
	Role Role
	Text string
}

func newMessage(role Role, text string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now(),
	}
}
