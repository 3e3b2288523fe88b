package http

const (
	DefaultReadBufferSize  = 4096 // 4kB
	DefaultWriteBufferSize = 4096 // 4kB

	// StreamChunkSize bounds how much of a streamed body is held in memory at once.
	StreamChunkSize = 1024
)

const (
	MethodGet  = "GET"
	MethodPost = "POST"
)

const (
	HeaderContentType     = "Content-Type"
	HeaderContentLength   = "Content-Length"
	HeaderContentEncoding = "Content-Encoding"
	HeaderAcceptEncoding  = "Accept-Encoding"
	HeaderUserAgent       = "User-Agent"
)

var (
	protocolHttp11 = []byte("HTTP/1.1")
	headerSep      = []byte(": ")
	crlf           = []byte("\r\n")
)

type Header struct {
	Name  string
	Value string
}
