package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/mancala-client/internal/apperror"
	"github.com/rocketscienceinc/mancala-client/internal/entity"
	"github.com/rocketscienceinc/mancala-client/internal/markup"
)

const (
	pathBoard   = "/"
	pathMove    = "/move"
	pathDemo    = "/demo"
	pathRestart = "/restart"

	maxBodySize = 4 << 20
)

// Client talks to the game engine over HTTP.
type Client struct {
	logger  *slog.Logger
	baseURL *url.URL
	http    *http.Client
}

func NewClient(logger *slog.Logger, baseURL string, timeout time.Duration) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid game engine url %q: %w", baseURL, err)
	}

	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid game engine url %q: scheme and host are required", baseURL)
	}

	return &Client{
		logger:  logger.With("component", "rest-client"),
		baseURL: parsed,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// Layout fetches the initial page and reads the board from its markup.
func (that *Client) Layout(ctx context.Context) (*entity.Layout, error) {
	resp, err := that.do(ctx, http.MethodGet, pathBoard, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: GET %s: status %d", apperror.ErrTransport, pathBoard, resp.StatusCode)
	}

	layout, err := markup.Parse(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read board: %w", err)
	}

	return layout, nil
}

// Move asks the engine to sow the stones of the given pit.
func (that *Client) Move(ctx context.Context, pit int) (*entity.Outcome, error) {
	query := url.Values{}
	query.Set("pit", strconv.Itoa(pit))

	return that.post(ctx, pathMove, query)
}

// Demo asks the engine to play random moves until the game is over.
func (that *Client) Demo(ctx context.Context) (*entity.Outcome, error) {
	return that.post(ctx, pathDemo, nil)
}

// Restart resets the game on the engine. The engine answers with a redirect to the board.
func (that *Client) Restart(ctx context.Context) error {
	resp, err := that.do(ctx, http.MethodPost, pathRestart, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%w: POST %s: status %d", apperror.ErrTransport, pathRestart, resp.StatusCode)
	}

	return nil
}

func (that *Client) post(ctx context.Context, path string, query url.Values) (*entity.Outcome, error) {
	log := that.logger.With("method", "post", "path", path)

	resp, err := that.do(ctx, http.MethodPost, path, query)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", apperror.ErrTransport, path, err)
	}

	outcome, err := Decode(body)
	if err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("%w: POST %s: status %d", apperror.ErrTransport, path, resp.StatusCode)
		}
		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest && !outcome.IsAppError() {
		return nil, fmt.Errorf("%w: POST %s: status %d", apperror.ErrTransport, path, resp.StatusCode)
	}

	log.Debug("received outcome", "outcome", outcome.String())

	return outcome, nil
}

func (that *Client) do(ctx context.Context, method, path string, query url.Values) (*http.Response, error) {
	target := that.baseURL.JoinPath(path)
	target.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, method, target.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := that.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", apperror.ErrTransport, method, path, err)
	}

	return resp, nil
}

type response struct {
	Moves         *[]entity.Move  `json:"moves"`
	CurrentPlayer json.RawMessage `json:"currentPlayer"`
	Error         *string         `json:"error"`
	Winner        json.RawMessage `json:"winner"`
	Pits          []int           `json:"pits"`
}

// Decode classifies an engine response body: a non-empty error wins, then moves,
// anything else is malformed. Bodies that are not JSON objects are an error.
func Decode(body []byte) (*entity.Outcome, error) {
	var resp response
	if err := json.Unmarshal(bytes.TrimSpace(body), &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrMalformedResponse, err)
	}

	outcome := &entity.Outcome{
		CurrentPlayer: decodePlayer(resp.CurrentPlayer),
		Winner:        decodeText(resp.Winner),
	}

	switch {
	case resp.Error != nil && *resp.Error != "":
		outcome.Kind = entity.OutcomeAppError
		outcome.Error = *resp.Error
	case resp.Moves != nil:
		outcome.Kind = entity.OutcomeMoves
		outcome.Batch = &entity.MoveBatch{
			ID:    uuid.NewString(),
			Moves: *resp.Moves,
			Pits:  resp.Pits,
		}
	default:
		outcome.Kind = entity.OutcomeMalformed
	}

	return outcome, nil
}

// decodePlayer accepts both a player number and a label like "Player One".
func decodePlayer(raw json.RawMessage) *int {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var number int
	if err := json.Unmarshal(raw, &number); err == nil {
		return &number
	}

	var label string
	if err := json.Unmarshal(raw, &label); err == nil {
		if player := entity.ParsePlayer(label); player != 0 {
			return &player
		}
	}

	return nil
}

func decodeText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}

	return string(raw)
}
