package http

import (
	"context"
	"log/slog"
)

type RequestCtx struct {
	ConnID string
	Logger *slog.Logger

	Request  Request
	Response Response

	ctx context.Context
}

func (reqCtx *RequestCtx) Context() context.Context {
	if reqCtx.ctx == nil {
		return context.Background()
	}
	return reqCtx.ctx
}

func (reqCtx *RequestCtx) WithContext(ctx context.Context) {
	reqCtx.ctx = ctx
}

// Log returns the connection's logger, or the default one outside a served connection.
func (reqCtx *RequestCtx) Log() *slog.Logger {
	if reqCtx.Logger == nil {
		return slog.Default()
	}
	return reqCtx.Logger
}
