package bot

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/lfmorais/nara/backend/internal/model/bot"
	"github.com/lfmorais/nara/backend/internal/model/catalog"
	"github.com/lfmorais/nara/backend/internal/service/directory"
	"github.com/lfmorais/nara/backend/internal/service/media"
)

// DefaultIdleTimeout is how long a conversation may stay silent before
// the next message restarts it from the menu.
const DefaultIdleTimeout = 10 * time.Minute

// Sender delivers outbound texts over the chat transport. Failures are
// logged by the engine and never surfaced to the user.
type Sender interface {
	SendText(ctx context.Context, identity, text string) error
}

// Config wires the engine's collaborators.
type Config struct {
	Directory directory.Store
	Images    media.Normalizer
	Catalog   *catalog.Catalog
	Sender    Sender
	// IdleTimeout overrides DefaultIdleTimeout when positive.
	IdleTimeout time.Duration
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Engine drives the assistant's conversation state: one session per
// chat identity, plus the TAG registration flow layered on top of it.
type Engine struct {
	sessions  *SessionRegistry
	drafts    *DraftRegistry
	directory directory.Store
	images    media.Normalizer
	catalog   *catalog.Catalog
	sender    Sender
	idle      time.Duration
	now       func() time.Time
	locks     *identityLocks
}

// NewEngine builds an engine with empty registries.
func NewEngine(cfg Config) *Engine {
	idle := cfg.IdleTimeout
	if idle <= 0 {
		idle = DefaultIdleTimeout
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Engine{
		sessions:  NewSessionRegistry(),
		drafts:    NewDraftRegistry(),
		directory: cfg.Directory,
		images:    cfg.Images,
		catalog:   cfg.Catalog,
		sender:    cfg.Sender,
		idle:      idle,
		now:       now,
		locks:     newIdentityLocks(),
	}
}

// SetSender attaches the outbound transport. The engine and the
// transport reference each other, so whichever is built second is wired
// in here.
func (e *Engine) SetSender(sender Sender) {
	e.sender = sender
}

// HandleMessage is the transport entry point. Messages from the same
// identity are serialized; different identities proceed concurrently.
func (e *Engine) HandleMessage(ctx context.Context, msg bot.InboundMessage) {
	if msg.Identity == "" {
		return
	}
	if msg.Body == "" && len(msg.Media) == 0 {
		return
	}

	unlock := e.locks.acquire(msg.Identity)
	defer unlock()

	session, ok := e.sessions.FindByIdentity(msg.Identity)
	if !ok {
		e.initiateConversation(ctx, msg)
		return
	}

	input := strings.ToLower(strings.TrimSpace(msg.Body))
	switch {
	case e.isStale(session):
		// A finished or long-idle conversation restarts on any message,
		// even "fim": there is nothing active left to cancel.
		e.resetConversation(ctx, msg)
	case input == "fim" || input == "cancelar":
		session = e.storeSession(msg, session.Status)
		e.endConversation(ctx, session)
	case session.Status == bot.StatusTag:
		e.handleRegistration(ctx, msg)
	default:
		e.handleMenu(ctx, msg, session)
	}
}

// ListSessions exposes the current in-memory sessions for the
// diagnostic HTTP endpoint.
func (e *Engine) ListSessions() []bot.ChatSession {
	return e.sessions.ListAll()
}

func (e *Engine) isStale(session bot.ChatSession) bool {
	if session.Status == bot.StatusEnd {
		return true
	}
	return e.now().UnixMilli()-session.Timestamp > e.idle.Milliseconds()
}

func (e *Engine) initiateConversation(ctx context.Context, msg bot.InboundMessage) {
	e.storeSession(msg, bot.StatusNew)
	e.send(ctx, msg.Identity, msgGreeting)
	e.send(ctx, msg.Identity, msgInstructions)
	e.sendMenu(ctx, msg.Identity)
}

func (e *Engine) resetConversation(ctx context.Context, msg bot.InboundMessage) {
	e.drafts.Remove(msg.Identity)
	e.storeSession(msg, bot.StatusMenu)
	e.send(ctx, msg.Identity, msgWelcomeBack)
	e.sendMenu(ctx, msg.Identity)
}

func (e *Engine) sendMenu(ctx context.Context, identity string) {
	e.send(ctx, identity, msgMenu)
	e.send(ctx, identity, msgMenuHint)
}

func (e *Engine) handleMenu(ctx context.Context, msg bot.InboundMessage, session bot.ChatSession) {
	switch strings.TrimSpace(msg.Body) {
	case "1":
		e.storeSession(msg, bot.StatusTag)
		// The selection itself kicks off the registration flow, so the
		// same message advances past the tag0 greeting.
		e.handleRegistration(ctx, msg)
	case "2":
		session = e.storeSession(msg, bot.StatusOther)
		e.send(ctx, msg.Identity, msgContactInfo)
		e.endConversation(ctx, session)
	default:
		e.storeSession(msg, session.Status)
		e.send(ctx, msg.Identity, msgInvalidOption)
	}
}

// endConversation terminates a chat: the draft is discarded, a farewell
// is sent and the session is marked ended but kept for the lazy restart
// check. Calling it on an already ended session is a no-op.
func (e *Engine) endConversation(ctx context.Context, session bot.ChatSession) {
	if session.Status == bot.StatusEnd {
		return
	}
	e.drafts.Remove(session.Identity)
	e.send(ctx, session.Identity, msgFarewell)
	session.Status = bot.StatusEnd
	e.sessions.Upsert(session)
}

// storeSession replaces the session for the message's identity with a
// record of this message. Timestamps arriving in seconds are normalized
// to milliseconds and never move backwards.
func (e *Engine) storeSession(msg bot.InboundMessage, status bot.Status) bot.ChatSession {
	ts := msg.Timestamp
	if ts > 0 && ts < 1e12 {
		ts *= 1000
	}
	if ts == 0 {
		ts = e.now().UnixMilli()
	}
	if prior, ok := e.sessions.FindByIdentity(msg.Identity); ok && prior.Timestamp > ts {
		ts = prior.Timestamp
	}

	name := msg.DisplayName
	if name == "" {
		name = "Usuário"
	}

	session := bot.ChatSession{
		Identity:    msg.Identity,
		Body:        msg.Body,
		Kind:        msg.Kind,
		Timestamp:   ts,
		DisplayName: name,
		Status:      status,
	}
	e.sessions.Upsert(session)
	return session
}

func (e *Engine) send(ctx context.Context, identity, text string) {
	if e.sender == nil {
		log.Printf("[bot] no sender configured, dropping message to %s", identity)
		return
	}
	if err := e.sender.SendText(ctx, identity, text); err != nil {
		log.Printf("[bot] send to %s failed: %v", identity, err)
	}
}
