package http

import "strings"

type MatchKind uint8

const (
	MatchExact MatchKind = iota
	MatchPrefix
)

type Route struct {
	Method  Method
	Match   MatchKind
	Path    string
	Handler Handler
}

func (route *Route) Matches(req *Request) bool {
	if route.Method != req.Method {
		return false
	}
	if route.Match == MatchPrefix {
		return strings.HasPrefix(req.Target, route.Path)
	}
	return req.Target == route.Path
}

var NotFoundHandler Handler = func(req *Request, res *Response, config Config) {
	res.WithStatus(StatusNotFound)
}
