package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tether-dev/tether/pkg/bind"
	"github.com/tether-dev/tether/pkg/emitter"
	"github.com/tether-dev/tether/pkg/scope"
	"github.com/tether-dev/tether/pkg/vdom"
)

// Session owns one client connection and its mounted root wrapper. All
// lifecycle work (mount, prop updates, renders, unmount) runs on the
// session's event loop goroutine; Dispatch is the cross-goroutine entry
// point.
type Session struct {
	ID        string
	CreatedAt time.Time

	conn   *websocket.Conn
	connMu sync.Mutex // Protects conn writes
	config Config

	sc   *scope.Scope
	root *bind.Wrapper

	// lastTree is the last rendered tree, kept for diffing.
	lastTree *vdom.VNode
	hidSeq   int

	jobs      chan func()
	renderReq chan struct{}
	done      chan struct{}
	closed    atomic.Bool
	closeOnce sync.Once

	sendSeq atomic.Uint64

	logger *slog.Logger
	tracer trace.Tracer
}

// generateSessionID returns a random 16-hex-char session ID.
func generateSessionID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "s-unknown"
	}
	return hex.EncodeToString(b)
}

// newSession creates a session over the given connection. conn may be nil
// for detached sessions.
func newSession(conn *websocket.Conn, store emitter.Store, config Config) *Session {
	sc := scope.New(nil)
	if store != nil {
		sc.Set(config.StoreKey, store)
	}

	return &Session{
		ID:        generateSessionID(),
		CreatedAt: time.Now(),
		conn:      conn,
		config:    config,
		sc:        sc,
		jobs:      make(chan func(), 64),
		renderReq: make(chan struct{}, 1),
		done:      make(chan struct{}),
		logger:    config.logger(),
		tracer:    otel.Tracer(config.TracerName),
	}
}

// NewDetached creates a session with no connection. Rendered frames are
// discarded. Useful for embedding and tests.
func NewDetached(store emitter.Store, opts ...Option) *Session {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return newSession(nil, store, config)
}

// Scope returns the session's root scope. The store is published here under
// the configured store key; composition points may set additional values
// before mounting.
func (s *Session) Scope() *scope.Scope {
	return s.sc
}

// MountRoot mounts the wrapper as the session's root component and schedules
// the initial render. Store events reported by the wrapper schedule further
// renders on the session loop.
func (s *Session) MountRoot(w *bind.Wrapper, props vdom.Props) {
	s.root = w
	w.SetOnInvalidate(s.scheduleRender)
	w.Mount(s.sc, props)
	s.scheduleRender()
}

// UpdateRootProps delivers new own props to the root wrapper on the session
// loop. The wrapper reconciles its subscriptions and decides whether the
// change re-renders.
func (s *Session) UpdateRootProps(next vdom.Props) {
	s.Dispatch(func() {
		if s.root != nil && s.root.ReceiveProps(next) {
			s.renderPass()
		}
	})
}

// Dispatch queues fn to run on the session's event loop. Safe to call from
// any goroutine. Dropped when the session is closed or the queue is full.
func (s *Session) Dispatch(fn func()) {
	if s.closed.Load() {
		return
	}
	select {
	case s.jobs <- fn:
	default:
		s.logger.Warn("session job queue full, dropping job", "session", s.ID)
	}
}

// scheduleRender requests a render pass. Coalesces: multiple requests before
// the loop runs collapse into one pass.
func (s *Session) scheduleRender() {
	if s.closed.Load() {
		return
	}
	select {
	case s.renderReq <- struct{}{}:
	default:
	}
}

// Run processes jobs and render requests until the session closes. The root
// wrapper is unmounted when the loop exits, so store registrations are
// released on every exit path.
func (s *Session) Run() {
	defer s.unmountRoot()

	var ping <-chan time.Time
	if s.conn != nil && s.config.PingInterval > 0 {
		t := time.NewTicker(s.config.PingInterval)
		defer t.Stop()
		ping = t.C
	}

	for {
		select {
		case <-s.done:
			return
		case fn := <-s.jobs:
			fn()
		case <-s.renderReq:
			s.renderPass()
		case <-ping:
			if err := s.sendPing(); err != nil {
				s.Close()
			}
		}
	}
}

// unmountRoot releases the root wrapper's store registrations.
func (s *Session) unmountRoot() {
	if s.root != nil {
		s.root.Unmount()
	}
}

// renderPass renders the root, diffs against the previous tree, and pushes
// the result to the client. Panics from user render code are contained to
// the pass and logged.
func (s *Session) renderPass() {
	if s.root == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("render panic",
				"session", s.ID,
				"panic", r,
				"stack", string(debug.Stack()),
			)
		}
	}()

	_, span := s.tracer.Start(context.Background(), "tether.render",
		trace.WithAttributes(
			attribute.String("tether.session_id", s.ID),
			attribute.String("tether.wrapper", s.root.Name()),
		),
	)
	defer span.End()

	tree := s.root.Render()
	s.hidSeq = vdom.AssignHIDs(tree, s.hidSeq)

	if s.lastTree == nil {
		s.lastTree = tree
		span.SetAttributes(attribute.Bool("tether.full_tree", true))
		s.send(frame{Type: frameTree, Tree: tree})
		return
	}

	patches := vdom.Diff(s.lastTree, tree)
	s.lastTree = tree
	span.SetAttributes(attribute.Int("tether.patch_count", len(patches)))

	if len(patches) > 0 {
		recordPatches(len(patches))
		s.send(frame{Type: framePatches, Patches: patches})
	}
}

// send encodes and writes a frame. Detached sessions discard frames.
func (s *Session) send(f frame) {
	if s.conn == nil {
		return
	}

	f.Seq = s.sendSeq.Add(1)
	data, err := f.encode()
	if err != nil {
		s.logger.Error("frame encode error", "session", s.ID, "error", err)
		return
	}

	s.connMu.Lock()
	defer s.connMu.Unlock()

	s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.logger.Error("write error", "session", s.ID, "error", err)
		s.Close()
	}
}

// sendPing writes a websocket ping control message.
func (s *Session) sendPing() error {
	s.connMu.Lock()
	defer s.connMu.Unlock()
	return s.conn.WriteControl(websocket.PingMessage, nil,
		time.Now().Add(s.config.WriteTimeout))
}

// ReadLoop drains client messages until the connection drops, keeping read
// deadlines fresh. The server runs it on its own goroutine; client events
// are not part of the protocol, so payloads are discarded.
func (s *Session) ReadLoop() {
	defer s.Close()

	if s.conn == nil {
		return
	}
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
		return nil
	})

	for {
		s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
		if _, _, err := s.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "session", s.ID, "error", err)
			}
			return
		}
	}
}

// Close shuts the session down. Idempotent and safe from any goroutine. The
// event loop performs the root unmount when it observes the closed channel.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		close(s.done)
		if s.conn != nil {
			s.conn.Close()
		}
	})
}

// IsClosed reports whether Close has been called.
func (s *Session) IsClosed() bool {
	return s.closed.Load()
}

// Done is closed when the session shuts down.
func (s *Session) Done() <-chan struct{} {
	return s.done
}
