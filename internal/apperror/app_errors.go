package apperror

import "errors"

var (
	ErrPitNotFound       = errors.New("pit not found")
	ErrPitNotPlayable    = errors.New("pit is not playable")
	ErrTransport         = errors.New("request to game engine failed")
	ErrMalformedResponse = errors.New("malformed game engine response")
	ErrQueueFull         = errors.New("session queue is full")
	ErrInvalidMarkup     = errors.New("invalid board markup")
	ErrSessionClosed     = errors.New("session is closed")
)
