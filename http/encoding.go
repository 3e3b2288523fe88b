package http

import (
	"bytes"
	"compress/gzip"
	"strings"
)

const EncodingGzip = "gzip"

// AcceptsGzip reports whether Accept-Encoding lists gzip as one of its comma separated
// tokens. Parameters are not understood, so "gzip;q=1" does not count.
func AcceptsGzip(headers Headers) bool {
	value, found := headers.Get(HeaderAcceptEncoding)
	if !found {
		return false
	}

	for _, token := range strings.Split(value, ",") {
		if strings.TrimSpace(token) == EncodingGzip {
			return true
		}
	}
	return false
}

// Gzip compresses payload into a single gzip member.
func Gzip(payload []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(payload); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WithNegotiatedText sets payload as a text/plain body, gzip-compressed when the request
// accepts it. Content-Length always describes the bytes actually sent.
func (res *Response) WithNegotiatedText(headers Headers, payload string) (*Response, error) {
	body := []byte(payload)

	res.SetHeader(HeaderContentType, "text/plain")
	if AcceptsGzip(headers) {
		compressed, err := Gzip(body)
		if err != nil {
			return res, err
		}
		res.SetHeader(HeaderContentEncoding, EncodingGzip)
		body = compressed
	}

	return res.WithBytes("text/plain", body), nil
}
