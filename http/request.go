package http

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

type Headers map[string]string

// Get looks a header up by its exact, case-sensitive name.
func (headers Headers) Get(name string) (string, bool) {
	value, found := headers[name]
	return value, found
}

type Request struct {
	Method  string
	Path    string
	Version string
	Headers Headers

	// Body is positioned at the first byte after the header terminator.
	Body io.Reader
}

// ReadRequest reads the request line and header block from reader. The reader is left
// at the start of the body, which is never consumed here.
func ReadRequest(reader *bufio.Reader) (Request, error) {
	var req Request

	requestLine, err := readLine(reader)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return req, ErrMalformedRequest
		}
		return req, fmt.Errorf("%w: read request line: %w", ErrIOFailure, err)
	}
	if requestLine == "" {
		return req, ErrMalformedRequest
	}

	parts := strings.SplitN(requestLine, " ", 3)
	req.Method = parts[0]
	if len(parts) > 1 {
		req.Path = parts[1]
	}
	if len(parts) > 2 {
		req.Version = parts[2]
	}

	headers := make(Headers)
	for {
		line, err := readLine(reader)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return req, fmt.Errorf("%w: read header: %w", ErrIOFailure, err)
		}
		if line == "" {
			break // end of headers
		}

		name, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		headers[name] = strings.TrimSpace(value)
	}

	req.Headers = headers
	req.Body = reader
	return req, nil
}

// readLine returns the next line without its LF or CRLF terminator. A final line that
// ends at EOF without a terminator is still returned; io.EOF only means nothing was left.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			return "", err
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
