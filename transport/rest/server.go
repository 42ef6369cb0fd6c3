package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/mancala-client/internal/board"
)

const (
	shutdownTimeout = 5 * time.Second
	writeTimeout    = 5 * time.Second
)

type snapshotter interface {
	Snapshot() board.Snapshot
	OnChange(fn func())
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type debugHandler struct {
	logger *slog.Logger
	board  snapshotter

	mu          sync.Mutex
	subscribers map[chan struct{}]struct{}
}

// NewDebugHandler exposes the board state for developers: a JSON snapshot and a
// websocket stream pushing a fresh snapshot after every change.
func NewDebugHandler(logger *slog.Logger, board snapshotter) http.Handler {
	handler := &debugHandler{
		logger:      logger.With("component", "debug-http"),
		board:       board,
		subscribers: make(map[chan struct{}]struct{}),
	}
	board.OnChange(handler.publish)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/ping", pingHandler)
	r.Get("/board", handler.snapshot)
	r.Get("/board/stream", handler.stream)

	return r
}

func (that *debugHandler) snapshot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(that.board.Snapshot()); err != nil {
		that.logger.Error("failed to encode board snapshot", "error", err)
	}
}

func (that *debugHandler) stream(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "stream", "remote", r.RemoteAddr)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Time{})

	changed := that.subscribe()
	defer that.unsubscribe(changed)

	// the peer only ever closes; reading detects it
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	log.Debug("board stream opened")

	for {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err = conn.WriteJSON(that.board.Snapshot()); err != nil {
			log.Debug("board stream closed", "error", err)
			return
		}

		select {
		case <-changed:
		case <-closed:
			log.Debug("board stream closed by peer")
			return
		}
	}
}

func (that *debugHandler) subscribe() chan struct{} {
	that.mu.Lock()
	defer that.mu.Unlock()

	ch := make(chan struct{}, 1)
	that.subscribers[ch] = struct{}{}

	return ch
}

func (that *debugHandler) unsubscribe(ch chan struct{}) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.subscribers, ch)
}

// publish never blocks the board; bursts of changes collapse into one push.
func (that *debugHandler) publish() {
	that.mu.Lock()
	defer that.mu.Unlock()

	for ch := range that.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Start serves the debug handler until ctx is done.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
