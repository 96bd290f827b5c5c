package http

import (
	"bytes"
	"errors"
	"io"
	"net"
	"strings"
)

// Decode failures. Routing never errors; any of these aborts the
// connection before a response can be framed.
var (
	ErrMissingRequestLine = errors.New("http: missing request line")
	ErrMissingMethod      = errors.New("http: missing method")
	ErrUnsupportedMethod  = errors.New("http: unsupported method")
	ErrMissingTarget      = errors.New("http: missing request target")
	ErrMissingVersion     = errors.New("http: missing version")
	ErrUnsupportedVersion = errors.New("http: unsupported version")
	ErrInvalidHeader      = errors.New("http: invalid header line")
	ErrRequestTimeout     = errors.New("http: request read timed out")
)

type Method uint8

const (
	MethodGet Method = iota
	MethodPost
)

func (m Method) String() string {
	switch m {
	case MethodGet:
		return "GET"
	case MethodPost:
		return "POST"
	}
	return "UNKNOWN"
}

func parseMethod(token string) (Method, error) {
	switch token {
	case "GET":
		return MethodGet, nil
	case "POST":
		return MethodPost, nil
	}
	return 0, ErrUnsupportedMethod
}

// Request is decoded once per connection and not mutated afterwards.
// A nil Body means the request carried none; an empty body never
// occurs in decoded requests.
type Request struct {
	Method  Method
	Target  string
	Headers map[string]string
	Body    []byte
}

// HeaderValue looks a header up by name, case insensitively.
func (req *Request) HeaderValue(name string) (string, bool) {
	value, found := req.Headers[strings.ToLower(name)]
	return value, found
}

// Decode accumulates whatever the stream has to offer and parses it
// into the request. The stream is read in fixed size chunks until a
// read comes back short or the stream is closed; a timed out read
// surfaces as ErrRequestTimeout.
func (req *Request) Decode(r io.Reader) error {
	raw, err := readAvailable(r)
	if err != nil {
		return err
	}

	index := bytes.Index(raw, crlf)
	if index == -1 {
		return ErrMissingRequestLine
	}
	if err := req.parseRequestLine(string(raw[:index])); err != nil {
		return err
	}

	rest := raw[index+len(crlf):]
	req.Headers = make(map[string]string)
	for len(rest) > 0 {
		line, after, found := bytes.Cut(rest, crlf)
		if found && len(line) == 0 {
			rest = after
			break // blank line, body follows
		}
		if !found {
			line, after = rest, nil
		}
		name, value, ok := bytes.Cut(line, []byte(":"))
		if !ok {
			return ErrInvalidHeader
		}
		key := strings.ToLower(string(bytes.TrimSpace(name)))
		req.Headers[key] = string(bytes.TrimSpace(value))
		rest = after
	}

	if len(rest) > 0 {
		req.Body = rest
	}
	return nil
}

// parseRequestLine splits the request line into its three tokens,
// collapsing runs of whitespace.
func (req *Request) parseRequestLine(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return ErrMissingMethod
	}

	method, err := parseMethod(tokens[0])
	if err != nil {
		return err
	}
	if len(tokens) < 2 {
		return ErrMissingTarget
	}
	if len(tokens) < 3 {
		return ErrMissingVersion
	}
	if tokens[2] != Version {
		return ErrUnsupportedVersion
	}

	req.Method = method
	req.Target = tokens[1]
	return nil
}

// readAvailable reads fixed size chunks until a short read signals no
// more data is immediately available, or a zero read signals the
// stream closed.
func readAvailable(r io.Reader) ([]byte, error) {
	var raw []byte
	chunk := make([]byte, ReadChunkSize)
	for {
		n, err := r.Read(chunk)
		raw = append(raw, chunk[:n]...)
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				return nil, ErrRequestTimeout
			}
			if errors.Is(err, io.EOF) {
				return raw, nil
			}
			return nil, err
		}
		if n < ReadChunkSize {
			return raw, nil
		}
	}
}
