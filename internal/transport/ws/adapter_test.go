package ws

import (
	"context"
	"encoding/base64"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/lfmorais/nara/backend/internal/model/bot"
)

// echoEngine replies to every inbound message with its own body.
type echoEngine struct {
	mu       sync.Mutex
	adapter  *Adapter
	received []bot.InboundMessage
}

func (e *echoEngine) HandleMessage(ctx context.Context, msg bot.InboundMessage) {
	e.mu.Lock()
	e.received = append(e.received, msg)
	e.mu.Unlock()
	e.adapter.SendText(ctx, msg.Identity, "eco: "+msg.Body)
}

func (e *echoEngine) last() (bot.InboundMessage, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.received) == 0 {
		return bot.InboundMessage{}, false
	}
	return e.received[len(e.received)-1], true
}

func dialTestServer(t *testing.T) (*websocket.Conn, *echoEngine, func()) {
	t.Helper()

	engine := &echoEngine{}
	adapter := NewAdapter(engine)
	engine.adapter = adapter

	r := chi.NewRouter()
	adapter.RegisterRoutes(r)
	server := httptest.NewServer(r)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/chat?identity=5517999990000@c.us"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		server.Close()
		t.Fatalf("dial: %v", err)
	}

	return conn, engine, func() {
		conn.Close()
		server.Close()
	}
}

func TestRoundTrip(t *testing.T) {
	conn, engine, cleanup := dialTestServer(t)
	defer cleanup()

	err := conn.WriteJSON(inboundFrame{Body: "oi", Kind: "text", DisplayName: "João"})
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var reply outboundFrame
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("read: %v", err)
	}

	if reply.Body != "eco: oi" {
		t.Fatalf("unexpected reply body %q", reply.Body)
	}
	if reply.To != "5517999990000@c.us" {
		t.Fatalf("unexpected recipient %q", reply.To)
	}
	if reply.ID == "" {
		t.Fatal("outbound frames must carry an id")
	}

	msg, ok := engine.last()
	if !ok {
		t.Fatal("engine received no message")
	}
	if msg.Identity != "5517999990000@c.us" || msg.Body != "oi" || msg.Kind != bot.KindText {
		t.Fatalf("unexpected inbound message: %+v", msg)
	}
}

func TestConnectRequiresIdentity(t *testing.T) {
	adapter := NewAdapter(&echoEngine{})
	r := chi.NewRouter()
	adapter.RegisterRoutes(r)
	server := httptest.NewServer(r)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/chat"
	if _, _, err := websocket.DefaultDialer.Dial(url, nil); err == nil {
		t.Fatal("expected dial to fail without identity")
	}
}

func TestSendTextWithoutConnectionIsDropped(t *testing.T) {
	adapter := NewAdapter(&echoEngine{})
	if err := adapter.SendText(context.Background(), "nobody", "olá"); err != nil {
		t.Fatalf("SendText should swallow missing connections, got %v", err)
	}
}

func TestDecodeFrameMedia(t *testing.T) {
	payload := []byte{0xff, 0xd8, 0xff, 0xe0}
	frame := inboundFrame{
		Body:  "img",
		Kind:  "image",
		Media: base64.StdEncoding.EncodeToString(payload),
	}

	msg := decodeFrame("id", frame)
	if msg.Kind != bot.KindImage {
		t.Fatalf("expected image kind, got %s", msg.Kind)
	}
	if string(msg.Media) != string(payload) {
		t.Fatalf("unexpected media payload %v", msg.Media)
	}
}

func TestDecodeFrameBadMediaDegradesToOther(t *testing.T) {
	msg := decodeFrame("id", inboundFrame{Body: "x", Kind: "image", Media: "%%%not-base64%%%"})
	if msg.Kind != bot.KindOther {
		t.Fatalf("expected other kind for bad media, got %s", msg.Kind)
	}
	if msg.Media != nil {
		t.Fatal("bad media must not leak a payload")
	}
}

func TestDecodeFrameUnknownKind(t *testing.T) {
	msg := decodeFrame("id", inboundFrame{Body: "x", Kind: "sticker"})
	if msg.Kind != bot.KindOther {
		t.Fatalf("expected other kind, got %s", msg.Kind)
	}
}
