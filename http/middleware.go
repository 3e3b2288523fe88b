package http

import (
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type Middleware func(next Handler) Handler

// RecoverMiddleware turns a handler panic into an aborted connection.
func RecoverMiddleware() Middleware {
	return func(next Handler) Handler {
		return func(ctx *RequestCtx) (err error) {
			defer func() {
				if recovered := recover(); recovered != nil {
					err = fmt.Errorf("%w: handler panic: %v", ErrIOFailure, recovered)
				}
			}()

			return next(ctx)
		}
	}
}

// TelemetryMiddleware records a span, a request counter and duration/size histograms
// for every dispatched request.
func TelemetryMiddleware(tracer trace.Tracer, meter metric.Meter) (Middleware, error) {
	requestCnt, err := meter.Int64Counter("http.server.requests",
		metric.WithDescription("The number of handled requests by method and status"),
		metric.WithUnit("{request}"))
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram("http.server.duration",
		metric.WithDescription("Time spent in the handler"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	bodySize, err := meter.Int64Histogram("http.server.response.body.size",
		metric.WithDescription("Size of the response body as declared by Content-Length"),
		metric.WithUnit("By"))
	if err != nil {
		return nil, err
	}

	return func(next Handler) Handler {
		return func(ctx *RequestCtx) error {
			spanCtx, span := tracer.Start(ctx.Context(), ctx.Request.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", ctx.Request.Method),
					attribute.String("url.path", ctx.Request.Path),
					attribute.String("conn.id", ctx.ConnID),
				))
			defer span.End()

			ctx.WithContext(spanCtx)
			start := time.Now()

			err := next(ctx)

			status := ctx.Response.Status
			if err != nil {
				mapped, ok := StatusForError(err)
				if !ok {
					span.RecordError(err)
					span.SetStatus(codes.Error, "connection aborted")
				}
				status = mapped
			}

			attrs := metric.WithAttributes(
				attribute.String("http.request.method", ctx.Request.Method),
				attribute.Int("http.response.status_code", int(status)),
			)
			span.SetAttributes(attribute.Int("http.response.status_code", int(status)))
			requestCnt.Add(spanCtx, 1, attrs)
			duration.Record(spanCtx, time.Since(start).Seconds(), attrs)
			if err == nil {
				bodySize.Record(spanCtx, declaredLength(&ctx.Response), attrs)
			}

			return err
		}
	}, nil
}

// declaredLength reads Content-Length back off the response; bodiless responses
// declare nothing and count as zero.
func declaredLength(res *Response) int64 {
	value, found := res.Header(HeaderContentLength)
	if !found {
		return 0
	}
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return size
}
