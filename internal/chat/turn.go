package chat

import "strings"

// Role tags a turn so the model knows who spoke it.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in a conversation. Turns are marshalled verbatim
// into the chat-completion payload, so the JSON shape is part of the
// upstream contract.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Reply is the model's answer as returned by the adapter: exactly one of
// Text or Segments is populated, mirroring the two content shapes the
// upstream API produces.
type Reply struct {
	Text     string
	Segments []string
}

// Resolve flattens the reply into a single string. Segments are joined
// in order with single spaces.
func (r *Reply) Resolve() string {
	if len(r.Segments) > 0 {
		return strings.Join(r.Segments, " ")
	}
	return r.Text
}
