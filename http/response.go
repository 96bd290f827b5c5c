package http

import (
	"bytes"
	"strconv"
)

type Response struct {
	Status  uint16
	Headers HeaderSet
	Body    []byte
}

func NewResponse(status uint16) *Response {
	return &Response{Status: status}
}

func (res *Response) WithStatus(status uint16) *Response {
	res.Status = status
	return res
}

func (res *Response) WithText(body string) *Response {
	res.Headers.Set(ContentType("text/plain"))
	res.SetBody([]byte(body))
	return res
}

// SetBody attaches the body. It is the only place Content-Length is
// written, so framing can never disagree with the payload.
func (res *Response) SetBody(body []byte) {
	res.Body = body
	res.Headers.Set(ContentLength(len(body)))
}

// Encode serializes the status line, the ordered header block and the
// body into a single wire buffer. With zero headers and no body the
// output is just the status line followed by a blank line.
func (res *Response) Encode() []byte {
	var buf bytes.Buffer
	buf.WriteString(Version)
	buf.WriteByte(' ')
	buf.WriteString(strconv.Itoa(int(res.Status)))
	buf.WriteByte(' ')
	buf.WriteString(StatusMessage(res.Status))
	buf.Write(crlf)
	for _, header := range res.Headers.headers {
		buf.WriteString(header.Name)
		buf.WriteString(": ")
		buf.WriteString(header.Value)
		buf.Write(crlf)
	}
	buf.Write(crlf)
	buf.Write(res.Body)
	return buf.Bytes()
}
