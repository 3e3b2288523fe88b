package http

import "errors"

var (
	ErrMalformedRequest  = errors.New("http: malformed request")
	ErrUnsupportedMethod = errors.New("http: unsupported method")
	ErrNotFound          = errors.New("http: not found")
	ErrInvalidBody       = errors.New("http: invalid body")
	ErrIOFailure         = errors.New("http: i/o failure")
)

// StatusForError maps a handler error onto the status of the response that reports it.
// ok is false when the connection must be aborted instead.
func StatusForError(err error) (status uint16, ok bool) {
	switch {
	case errors.Is(err, ErrIOFailure):
		return 0, false
	case errors.Is(err, ErrMalformedRequest), errors.Is(err, ErrInvalidBody):
		return StatusBadRequest, true
	case errors.Is(err, ErrNotFound):
		return StatusNotFound, true
	case errors.Is(err, ErrUnsupportedMethod):
		return StatusMethodNotAllowed, true
	}
	return 0, false
}
