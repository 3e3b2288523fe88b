package http

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

type Server struct {
	Name    string
	Handler Handler
	Logger  *slog.Logger

	// NewConnID names each accepted connection in logs and spans.
	NewConnID func() string
}

func NewServer(name string, handler Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		Name:      name,
		Handler:   handler,
		Logger:    logger,
		NewConnID: uuid.NewString,
	}
}

// Listen opens a TCP listener with address reuse enabled.
func Listen(ctx context.Context, addr string) (net.Listener, error) {
	lc := listenConfig()
	return lc.Listen(ctx, "tcp", addr)
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	listener, err := Listen(ctx, addr)
	if err != nil {
		return err
	}

	s.Logger.Info("listening", "server", s.Name, "addr", listener.Addr().String())
	return s.Serve(ctx, listener)
}

// Serve accepts connections until ctx is cancelled, starting one goroutine per
// connection. Cancellation closes the listener; open connections are left to finish.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	stop := context.AfterFunc(ctx, func() {
		listener.Close()
	})
	defer stop()

	retry := backoff.NewExponentialBackOff()
	retry.InitialInterval = 5 * time.Millisecond
	retry.MaxInterval = time.Second
	retry.MaxElapsedTime = 0
	retry.Reset()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return err
			}

			delay := retry.NextBackOff()
			s.Logger.Error("failed to accept connection", "error", err, "retry_in", delay)

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(delay):
			}
			continue
		}

		retry.Reset()
		go s.ServeConn(conn)
	}
}

// ServeConn handles exactly one request on conn and closes it. Failures stay local to
// the connection.
func (s *Server) ServeConn(conn net.Conn) {
	reqCtx := RequestCtx{
		ConnID: s.NewConnID(),
		Response: Response{
			Status:  StatusOK,
			Headers: make([]Header, 0, 4),
		},
	}

	logger := s.Logger.With("conn.id", reqCtx.ConnID)
	if addr := conn.RemoteAddr(); addr != nil {
		logger = logger.With("remote.addr", addr.String())
	}
	reqCtx.Logger = logger

	defer func() {
		if err := conn.Close(); err != nil {
			logger.Debug("closing connection error", "error", err)
		}
	}()

	logger.Debug("accepted connection")

	br := bufio.NewReaderSize(conn, DefaultReadBufferSize)
	bw := bufio.NewWriterSize(conn, DefaultWriteBufferSize)

	req, err := ReadRequest(br)
	if err == nil {
		logger.Info("request", "method", req.Method, "path", req.Path)
		reqCtx.Request = req
		err = s.Handler(&reqCtx)
	}

	defer closeStream(&reqCtx.Response, logger)

	if err != nil {
		status, ok := StatusForError(err)
		if !ok {
			logger.Error("connection aborted", "error", err)
			return
		}

		closeStream(&reqCtx.Response, logger)
		reqCtx.Response.Reset()
		reqCtx.Response.Status = status
	}

	if err := reqCtx.Response.Write(bw); err != nil {
		logger.Error("connection aborted", "error", err)
		return
	}

	logger.Info("response", "status", reqCtx.Response.Status)
}

func closeStream(res *Response, logger *slog.Logger) {
	closer, ok := res.Stream.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		logger.Error("closing stream error", "error", err)
	}
}
