package main

import (
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"github.com/tether-dev/tether/pkg/bind"
	"github.com/tether-dev/tether/pkg/emitter"
	"github.com/tether-dev/tether/pkg/scope"
	"github.com/tether-dev/tether/pkg/server"
	"github.com/tether-dev/tether/pkg/vdom"
)

func serveCmd() *cobra.Command {
	var (
		addr     string
		logLevel string
		tick     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo counter app",
		Long: `Serve a demo application: a counter store emitting "tick" events,
with a bound component streaming live updates to every connected client.

Endpoints:
  /live     WebSocket live updates
  /healthz  health check
  /metrics  Prometheus metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(logLevel)
			slog.SetDefault(logger)

			bind.EnableMetrics(nil)
			server.EnableMetrics(nil)

			counter := newCounterStore()
			go counter.run(tick)

			srv := server.New(counter, counterApp(counter),
				server.WithLogger(logger))
			return srv.ListenAndServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().DurationVar(&tick, "tick", time.Second, "Counter tick interval")

	return cmd
}

// newLogger builds a slog text logger at the requested level.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// counterStore is an Emitter-backed store that increments a counter and
// emits "tick" on every increment.
type counterStore struct {
	*emitter.Emitter
	count atomic.Int64
}

func newCounterStore() *counterStore {
	return &counterStore{Emitter: emitter.New()}
}

// Current returns the current counter value.
func (c *counterStore) Current() int64 {
	return c.count.Load()
}

// run increments the counter forever at the given interval.
func (c *counterStore) run(interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for range t.C {
		c.count.Add(1)
		c.Emit("tick")
	}
}

// counterApp builds the per-session root wrapper bound to the counter store.
func counterApp(counter *counterStore) server.App {
	view := vdom.NamedPropsFunc("CounterView", func(props vdom.Props) *vdom.VNode {
		return vdom.Div(vdom.Props{"class": "counter"},
			vdom.Span(nil, vdom.Textf("%s: ", props["label"])),
			vdom.Span(vdom.Props{"class": "value"},
				vdom.Textf("%v", props["count"])),
		)
	})

	return func(sc *scope.Scope) (*bind.Wrapper, vdom.Props) {
		w := bind.Bind(bind.Options{
			Props: func(store emitter.Store, own vdom.Props) vdom.Props {
				return vdom.Props{"count": counter.Current()}
			},
			Listeners: func(own vdom.Props, store emitter.Store) []string {
				return []string{"tick"}
			},
		}, view)
		return w, vdom.Props{"label": "ticks"}
	}
}
