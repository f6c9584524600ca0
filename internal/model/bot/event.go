package bot

// MessageKind mirrors the transport's message type discriminator.
type MessageKind string

const (
	KindText  MessageKind = "text"
	KindImage MessageKind = "image"
	KindOther MessageKind = "other"
)

// InboundMessage is a single event delivered by the chat transport.
type InboundMessage struct {
	Identity    string
	Body        string
	Kind        MessageKind
	Media       []byte // raw image payload when Kind is KindImage
	Timestamp   int64  // epoch seconds or milliseconds; the engine normalizes
	DisplayName string
}
