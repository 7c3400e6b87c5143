package constant

// Chat turn status values mirrored to clients.
const (
	ChatStatusWaitingForInput = "waiting_for_input"
	ChatStatusActive          = "active"
	ChatStatusSessionEnded    = "session_ended"
)

// Fixed fallback texts. Every request yields some response, even when turn
// processing fails internally.
const (
	EmptyInputPrompt  = "Please tell me something about your interests!"
	ProcessingFailure = "I had trouble processing that. Could you try saying it another way?"
)

// SessionIDHeader carries the conversation identifier between turns.
const SessionIDHeader = "X-Session-ID"
