package handler

import (
	"fmt"

	"github.com/freekieb7/tinyhttpd/http"
)

// Echo replies with whatever follows "/echo" in the path, so "/echo/abc" echoes "/abc"
// and "/echoabc" echoes "abc".
func Echo(ctx *http.RequestCtx) error {
	suffix := ctx.Request.Path[len(echoPrefix):]

	if _, err := ctx.Response.WithNegotiatedText(ctx.Request.Headers, suffix); err != nil {
		return fmt.Errorf("%w: compress echo body: %w", http.ErrIOFailure, err)
	}
	return nil
}
