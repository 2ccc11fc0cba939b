package domain

// Role of a message author in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single turn in a conversation. Messages are append-only:
// once added to a session they are never modified.
type Message struct {
	Role Role
	Text string
}
