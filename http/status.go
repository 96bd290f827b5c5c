package http

// Status codes this server can put on the wire.
const (
	StatusOK                  uint16 = 200
	StatusCreated             uint16 = 201
	StatusBadRequest          uint16 = 400
	StatusNotFound            uint16 = 404
	StatusInternalServerError uint16 = 500
)

var unknownStatusCode = "Unknown Status Code"

var statusMessages = []string{
	StatusOK:                  "OK",
	StatusCreated:             "Created",
	StatusBadRequest:          "Bad Request",
	StatusNotFound:            "Not Found",
	StatusInternalServerError: "Internal Server Error",
}

// StatusMessage returns the reason phrase for a status code.
func StatusMessage(code uint16) string {
	if int(code) < len(statusMessages) && statusMessages[code] != "" {
		return statusMessages[code]
	}
	return unknownStatusCode
}
