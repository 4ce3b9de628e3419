package model

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// ChatMessage is a single turn in a stylist conversation.
type ChatMessage struct {
	ID   string   `json:"id"`
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

// ChatRequest represents a message sent to the stylist.
type ChatRequest struct {
	Message string `json:"message"`
}
