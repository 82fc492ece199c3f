package dtos

// ChatMessage is a single turn in a conversation forwarded to the LLM
// provider.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the payload for /api/chat.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

// ChatResult carries the assistant reply extracted from the provider
// response.
type ChatResult struct {
	Reply string `json:"reply"`
}
