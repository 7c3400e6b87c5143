package dto

type ChatRequest struct {
	Message string `json:"message" validate:"max=2000"`
}

type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
}

type CategoryDetailResponse struct {
	Category string   `json:"category"`
	Blurb    string   `json:"blurb"`
	Careers  []string `json:"careers"`
}

type HealthResponse struct {
	Status         string `json:"status"`
	ActiveSessions int    `json:"active_sessions"`
}
