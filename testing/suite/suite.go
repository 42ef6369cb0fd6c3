package suite

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Clock  *clock.Mock
	Engine *Engine
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))

	engine := newEngine()
	t.Cleanup(engine.Close)

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Clock:  clock.NewMock(),
		Engine: engine,
	}
}

// Engine is a scripted game engine. It renders the board page from its pit
// counts and answers POST requests with queued bodies, one per request.
type Engine struct {
	server *httptest.Server

	mu        sync.Mutex
	pits      []int
	stores    map[int]bool
	player    int
	responses map[string][]string
	requests  []string
}

func newEngine() *Engine {
	engine := &Engine{
		pits:      []int{4, 4, 4, 4, 4, 4, 0, 4, 4, 4, 4, 4, 4, 0},
		stores:    map[int]bool{6: true, 13: true},
		player:    1,
		responses: make(map[string][]string),
	}
	engine.server = httptest.NewServer(http.HandlerFunc(engine.serve))

	return engine
}

func (that *Engine) URL() string {
	return that.server.URL
}

func (that *Engine) Close() {
	that.server.Close()
}

// SetBoard replaces the pit counts served on the board page.
func (that *Engine) SetBoard(pits []int, player int) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.pits = append([]int(nil), pits...)
	that.player = player
}

// Respond queues a JSON body for the next POST to path.
func (that *Engine) Respond(path, body string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.responses[path] = append(that.responses[path], body)
}

// Requests returns every request seen so far as "METHOD /path?query".
func (that *Engine) Requests() []string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]string(nil), that.requests...)
}

func (that *Engine) serve(w http.ResponseWriter, r *http.Request) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.requests = append(that.requests, r.Method+" "+r.URL.RequestURI())

	if r.Method == http.MethodGet && r.URL.Path == "/" {
		w.Header().Set("Content-Type", "text/html")
		_, _ = io.WriteString(w, that.page())
		return
	}

	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	if r.URL.Path == "/restart" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	queued := that.responses[r.URL.Path]
	if len(queued) == 0 {
		http.NotFound(w, r)
		return
	}
	that.responses[r.URL.Path] = queued[1:]

	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, queued[0])
}

func (that *Engine) page() string {
	var builder strings.Builder

	builder.WriteString("<html><body>")
	fmt.Fprintf(&builder, `<h2 id="currentPlayer">Player %d's turn</h2>`, that.player)
	for index, stones := range that.pits {
		class := "pit"
		if that.stores[index] {
			class = "mancala"
		}
		fmt.Fprintf(&builder, `<div class="%s" data-index="%d" data-stones="%d"></div>`, class, index, stones)
	}
	builder.WriteString("</body></html>")

	return builder.String()
}
