package handler

import (
	"fmt"

	"github.com/freekieb7/tinyhttpd/http"
)

func UserAgent(ctx *http.RequestCtx) error {
	userAgent, found := ctx.Request.Headers.Get(http.HeaderUserAgent)
	if !found {
		return fmt.Errorf("%w: missing %s header", http.ErrMalformedRequest, http.HeaderUserAgent)
	}

	ctx.Response.WithText(userAgent)
	return nil
}
