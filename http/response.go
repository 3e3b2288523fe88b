package http

import (
	"bufio"
	"errors"
	"io"
	"strconv"
)

type Response struct {
	Status  uint16
	Headers []Header
	Body    []byte

	// Stream, when set, replaces Body and is copied in StreamChunkSize pieces.
	// Exactly ContentLength bytes are sent.
	Stream        io.Reader
	ContentLength int64
}

func (res *Response) Reset() {
	res.Status = StatusOK
	res.Headers = res.Headers[:0]
	res.Body = nil
	res.Stream = nil
	res.ContentLength = 0
}

// SetHeader replaces the value of name, or appends the header keeping insertion order.
func (res *Response) SetHeader(name, value string) {
	for i := range res.Headers {
		if res.Headers[i].Name == name {
			res.Headers[i].Value = value
			return
		}
	}
	res.Headers = append(res.Headers, Header{Name: name, Value: value})
}

func (res *Response) Header(name string) (string, bool) {
	for _, header := range res.Headers {
		if header.Name == name {
			return header.Value, true
		}
	}
	return "", false
}

func (res *Response) WithStatus(status uint16) *Response {
	res.Status = status
	return res
}

func (res *Response) WithText(payload string) *Response {
	return res.WithBytes("text/plain", []byte(payload))
}

func (res *Response) WithBytes(contentType string, payload []byte) *Response {
	res.SetHeader(HeaderContentType, contentType)
	res.SetHeader(HeaderContentLength, strconv.Itoa(len(payload)))
	res.Body = payload
	return res
}

func (res *Response) WithStream(contentType string, stream io.Reader, size int64) *Response {
	res.SetHeader(HeaderContentType, contentType)
	res.SetHeader(HeaderContentLength, strconv.FormatInt(size, 10))
	res.Stream = stream
	res.ContentLength = size
	return res
}

// Write frames the response onto writer and flushes it. The header terminator is
// written even when there is no body.
func (res *Response) Write(writer *bufio.Writer) error {
	writer.Write(protocolHttp11)
	writer.WriteByte(' ')
	writer.WriteString(strconv.FormatUint(uint64(res.Status), 10))
	writer.WriteByte(' ')
	writer.WriteString(StatusText(res.Status))
	writer.Write(crlf)

	for _, header := range res.Headers {
		writer.WriteString(header.Name)
		writer.Write(headerSep)
		writer.WriteString(header.Value)
		writer.Write(crlf)
	}
	writer.Write(crlf)

	if res.Stream != nil {
		if err := writer.Flush(); err != nil {
			return err
		}
		return streamBody(writer, io.LimitReader(res.Stream, res.ContentLength))
	}

	if _, err := writer.Write(res.Body); err != nil {
		return err
	}
	return writer.Flush()
}

// streamBody copies src one chunk at a time, flushing each chunk before reading the next.
func streamBody(writer *bufio.Writer, src io.Reader) error {
	chunk := make([]byte, StreamChunkSize)
	for {
		n, err := src.Read(chunk)
		if n > 0 {
			if _, werr := writer.Write(chunk[:n]); werr != nil {
				return werr
			}
			if werr := writer.Flush(); werr != nil {
				return werr
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}
