package ws

import (
	"context"
	"encoding/base64"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lfmorais/nara/backend/internal/model/bot"
)

// Engine is the piece of the conversation engine the transport needs.
type Engine interface {
	HandleMessage(ctx context.Context, msg bot.InboundMessage)
}

// inboundFrame is one message as sent by a connected chat client.
type inboundFrame struct {
	Body        string `json:"body"`
	Kind        string `json:"kind"`
	Media       string `json:"media,omitempty"` // base64 image payload
	Timestamp   int64  `json:"timestamp"`
	DisplayName string `json:"displayName,omitempty"`
}

// outboundFrame is one assistant reply pushed to a client.
type outboundFrame struct {
	ID        string `json:"id"`
	To        string `json:"to"`
	Body      string `json:"body"`
	Timestamp int64  `json:"timestamp"`
}

type connection struct {
	mu   sync.Mutex // gorilla allows one concurrent writer
	sock *websocket.Conn
}

func (c *connection) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sock.WriteJSON(v)
}

// Adapter bridges websocket chat clients and the conversation engine.
// Each connection is owned by one chat identity; outbound texts are
// fire-and-forget, a failed or missing connection is only logged.
type Adapter struct {
	engine   Engine
	upgrader websocket.Upgrader

	mu    sync.RWMutex
	conns map[string]*connection
}

// NewAdapter returns an adapter delivering inbound events to engine.
func NewAdapter(engine Engine) *Adapter {
	return &Adapter{
		engine: engine,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		conns: make(map[string]*connection),
	}
}

// RegisterRoutes mounts the chat websocket endpoint.
func (a *Adapter) RegisterRoutes(r chi.Router) {
	r.Get("/ws/chat", a.handleConnect)
}

// SendText delivers an outbound text to the identity's connection.
func (a *Adapter) SendText(_ context.Context, identity, text string) error {
	a.mu.RLock()
	conn, ok := a.conns[identity]
	a.mu.RUnlock()
	if !ok {
		log.Printf("[ws] no connection for %s, dropping message", identity)
		return nil
	}

	frame := outboundFrame{
		ID:        uuid.NewString(),
		To:        identity,
		Body:      text,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := conn.writeJSON(frame); err != nil {
		log.Printf("[ws] write to %s failed: %v", identity, err)
	}
	return nil
}

func (a *Adapter) handleConnect(w http.ResponseWriter, r *http.Request) {
	identity := r.URL.Query().Get("identity")
	if identity == "" {
		http.Error(w, "identity is required", http.StatusBadRequest)
		return
	}

	sock, err := a.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade for %s failed: %v", identity, err)
		return
	}

	conn := &connection{sock: sock}
	a.register(identity, conn)
	defer a.unregister(identity, conn)
	defer sock.Close()

	log.Printf("[ws] %s connected", identity)

	for {
		var frame inboundFrame
		if err := sock.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] read from %s failed: %v", identity, err)
			}
			return
		}
		a.engine.HandleMessage(r.Context(), decodeFrame(identity, frame))
	}
}

func (a *Adapter) register(identity string, conn *connection) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.conns[identity] = conn
}

func (a *Adapter) unregister(identity string, conn *connection) {
	a.mu.Lock()
	defer a.mu.Unlock()
	// A reconnect may already have replaced the entry.
	if a.conns[identity] == conn {
		delete(a.conns, identity)
	}
	log.Printf("[ws] %s disconnected", identity)
}

// decodeFrame maps a wire frame onto the engine's inbound event. An
// undecodable media payload degrades the message to text so the engine
// re-prompts instead of crashing the read loop.
func decodeFrame(identity string, frame inboundFrame) bot.InboundMessage {
	kind := bot.MessageKind(frame.Kind)
	switch kind {
	case bot.KindText, bot.KindImage:
	default:
		kind = bot.KindOther
	}

	var media []byte
	if kind == bot.KindImage && frame.Media != "" {
		decoded, err := base64.StdEncoding.DecodeString(frame.Media)
		if err != nil {
			log.Printf("[ws] bad media payload from %s: %v", identity, err)
			kind = bot.KindOther
		} else {
			media = decoded
		}
	}

	return bot.InboundMessage{
		Identity:    identity,
		Body:        frame.Body,
		Kind:        kind,
		Media:       media,
		Timestamp:   frame.Timestamp,
		DisplayName: frame.DisplayName,
	}
}
