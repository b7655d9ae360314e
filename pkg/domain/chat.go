package domain

// Role identifies the author of a chat message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Citation is a provider-attributed source reference
type Citation struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Message is a single entry of a chat transcript
type Message struct {
	Role    Role       `json:"role"`
	Text    string     `json:"text"`
	Sources []Citation `json:"sources,omitempty"`
}

// Answer is the result of answering a question, text is never empty
type Answer struct {
	Text    string     `json:"text"`
	Sources []Citation `json:"sources"`
}
