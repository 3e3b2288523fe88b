package http

const (
	StatusOK      uint16 = 200
	StatusCreated uint16 = 201

	StatusBadRequest       uint16 = 400
	StatusNotFound         uint16 = 404
	StatusMethodNotAllowed uint16 = 405
)

var (
	unknownStatusCode = "Unknown Status Code"

	statusMessages = map[uint16]string{
		StatusOK:      "OK",
		StatusCreated: "Created",

		StatusBadRequest:       "Bad Request",
		StatusNotFound:         "Not Found",
		StatusMethodNotAllowed: "Method Not Allowed",
	}
)

// StatusText returns the reason phrase written after the status code.
func StatusText(status uint16) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return unknownStatusCode
}
