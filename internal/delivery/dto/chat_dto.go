package dto

// Chat history transcript shapes, matching the provider's role/parts layout.

type ChatPart struct {
	Text string `json:"text"`
}

type ChatTurn struct {
	Role  string     `json:"role"`
	Parts []ChatPart `json:"parts"`
}

type ChatHistoryResponse struct {
	History []ChatTurn `json:"history"`
}

type ReviewResponseRequest struct {
	Response string `json:"response"`
}

type ReviewResponseResult struct {
	Success bool `json:"success"`
}
