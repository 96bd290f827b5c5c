package http

import (
	"strings"
	"time"
)

const (
	// Version is the only protocol accepted on the wire.
	Version = "HTTP/1.1"

	// ReadChunkSize bounds a single read while accumulating a request.
	ReadChunkSize = 32

	// DefaultReadTimeout releases a worker whose client connected but
	// never sent anything.
	DefaultReadTimeout = 5 * time.Second

	DefaultWorkerCount = 4

	// ConnQueueSize bounds accepted connections waiting for a worker.
	ConnQueueSize = 64

	DefaultAddr = "127.0.0.1:4221"
)

var (
	crlf      = []byte("\r\n")
	headerEnd = []byte("\r\n\r\n")
)

// SupportedEncodings lists the content codings the server can produce.
var SupportedEncodings = []string{"gzip"}

// EncodingSupported reports whether an Accept-Encoding value names a
// coding from SupportedEncodings. Comma separated lists match when any
// member is supported.
func EncodingSupported(value string) bool {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		for _, encoding := range SupportedEncodings {
			if part == encoding {
				return true
			}
		}
	}
	return false
}

// Handler fills in the response for a decoded request. The config is
// the connection's read-only copy of the server options.
type Handler func(req *Request, res *Response, config Config)
