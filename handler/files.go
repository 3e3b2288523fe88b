package handler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/freekieb7/tinyhttpd/filesystem"
	"github.com/freekieb7/tinyhttpd/http"
)

// Files serves GET and POST on /files/<name> against a root directory. Reads and writes
// of the same name are not synchronized with each other.
type Files struct {
	FS filesystem.Filesystem
}

// Read streams the named file back as text/plain.
func (files Files) Read(ctx *http.RequestCtx) error {
	name := ctx.Request.Path[len(filesPrefix):]

	file, size, err := files.FS.OpenFile(name)
	if err != nil {
		if errors.Is(err, filesystem.ErrFileNotFound) {
			ctx.Log().Debug("no regular file", "name", name, "path", files.FS.Resolve(name))
			return fmt.Errorf("%w: file %q", http.ErrNotFound, name)
		}
		return fmt.Errorf("%w: open %q: %w", http.ErrIOFailure, name, err)
	}

	ctx.Response.WithStream("text/plain", file, size)
	return nil
}

// Write stores exactly Content-Length bytes of the body under the given name,
// replacing any previous content. Nothing is written when the body is short.
func (files Files) Write(ctx *http.RequestCtx) error {
	name := ctx.Request.Path[len(filesPrefix):]

	contentLength, err := requestContentLength(ctx.Request.Headers)
	if err != nil {
		return err
	}

	// Sized by what arrives rather than by the declared length.
	var body bytes.Buffer
	if _, err := body.ReadFrom(io.LimitReader(ctx.Request.Body, contentLength)); err != nil {
		return fmt.Errorf("%w: read body: %w", http.ErrIOFailure, err)
	}
	if int64(body.Len()) != contentLength {
		ctx.Log().Warn("short request body, file left untouched",
			"name", name, "content_length", contentLength, "received", body.Len())
		return fmt.Errorf("%w: body shorter than %d bytes", http.ErrInvalidBody, contentLength)
	}

	if err := files.FS.WriteFile(name, body.Bytes()); err != nil {
		ctx.Log().Error("writing file failed", "name", name, "path", files.FS.Resolve(name), "error", err)
		return fmt.Errorf("%w: write %q: %w", http.ErrIOFailure, name, err)
	}

	ctx.Log().Info("stored file", "name", name, "size", body.Len())
	ctx.Response.WithStatus(http.StatusCreated)
	return nil
}

func requestContentLength(headers http.Headers) (int64, error) {
	value, found := headers.Get(http.HeaderContentLength)
	if !found {
		return 0, fmt.Errorf("%w: missing %s", http.ErrInvalidBody, http.HeaderContentLength)
	}

	contentLength, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q: %w", http.ErrInvalidBody, http.HeaderContentLength, value, err)
	}
	if contentLength <= 0 {
		return 0, fmt.Errorf("%w: %s %d", http.ErrInvalidBody, http.HeaderContentLength, contentLength)
	}

	return contentLength, nil
}
