package domain

// Discussion roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one message of a follow-up discussion about a dream.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
