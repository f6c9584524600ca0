package bot

// Status identifies where a conversation sits in the top-level flow.
type Status string

const (
	// StatusNew marks a session created by the first inbound message,
	// before the user picked a menu option. Menu dispatch treats it the
	// same as StatusMenu.
	StatusNew Status = "new"
	// StatusMenu means the options menu was presented and the engine is
	// waiting for a selection.
	StatusMenu Status = "menu"
	// StatusOther means the user asked for general inquiries.
	StatusOther Status = "other"
	// StatusTag means a TAG registration is in progress.
	StatusTag Status = "tag"
	// StatusEnd marks a finished conversation. The record is kept so the
	// next inbound message can be detected as a restart.
	StatusEnd Status = "end"
)

// ChatSession captures the latest inbound message seen for one chat
// identity. It is replaced wholesale on every message, never merged.
type ChatSession struct {
	Identity    string      `json:"identity"`
	Body        string      `json:"body"`
	Kind        MessageKind `json:"kind"`
	Timestamp   int64       `json:"timestamp"` // epoch milliseconds
	DisplayName string      `json:"displayName"`
	Status      Status      `json:"status"`
}
