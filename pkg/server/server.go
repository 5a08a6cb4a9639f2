package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tether-dev/tether/pkg/bind"
	"github.com/tether-dev/tether/pkg/emitter"
	"github.com/tether-dev/tether/pkg/scope"
	"github.com/tether-dev/tether/pkg/vdom"
)

// App builds the root wrapper and its initial own props for a new session.
// The scope is already seeded with the shared store; composition points may
// set additional scope values here before the wrapper mounts.
type App func(sc *scope.Scope) (*bind.Wrapper, vdom.Props)

// Server accepts WebSocket connections and hosts one Session per client,
// all bound to the same shared store.
type Server struct {
	store    emitter.Store
	app      App
	config   Config
	upgrader websocket.Upgrader
}

// New creates a server hosting app over store.
func New(store emitter.Store, app App, opts ...Option) *Server {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &Server{
		store:  store,
		app:    app,
		config: config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
}

// Routes returns the chi router exposing the live endpoint, health check,
// and Prometheus metrics.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/live", s.handleLive)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// ListenAndServe serves the router on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.config.logger().Info("listening", "addr", addr)
	return http.ListenAndServe(addr, s.Routes())
}

// handleLive upgrades the connection and runs a session until the client
// disconnects. The session loop owns the mount/unmount window, so store
// registrations are released when the handler returns.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.config.logger().Error("websocket upgrade failed", "error", err)
		return
	}

	sess := newSession(conn, s.store, s.config)
	recordSessionOpen()
	defer recordSessionClose()

	s.config.logger().Info("session connected", "session", sess.ID)
	defer s.config.logger().Info("session closed", "session", sess.ID)

	root, props := s.app(sess.Scope())
	sess.MountRoot(root, props)

	go sess.ReadLoop()
	sess.Run()
}
