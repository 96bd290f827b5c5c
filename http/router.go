package http

// Router matches (method, target) against an ordered rule set. Rules
// are evaluated in registration order, first match wins.
type Router struct {
	Routes []Route
}

func NewRouter() Router {
	return Router{
		Routes: make([]Route, 0),
	}
}

func (router *Router) GET(path string, handler Handler) {
	router.Handle(MethodGet, MatchExact, path, handler)
}

func (router *Router) GETPrefix(prefix string, handler Handler) {
	router.Handle(MethodGet, MatchPrefix, prefix, handler)
}

func (router *Router) POST(path string, handler Handler) {
	router.Handle(MethodPost, MatchExact, path, handler)
}

func (router *Router) POSTPrefix(prefix string, handler Handler) {
	router.Handle(MethodPost, MatchPrefix, prefix, handler)
}

func (router *Router) Handle(method Method, match MatchKind, path string, handler Handler) {
	router.Routes = append(router.Routes, Route{
		Method:  method,
		Match:   match,
		Path:    path,
		Handler: handler,
	})
}

// Dispatch maps a request to exactly one response. It never fails:
// unmatched requests fall through to NotFoundHandler.
func (router *Router) Dispatch(req *Request, config Config) *Response {
	res := NewResponse(StatusOK)

	handler := NotFoundHandler
	for _, route := range router.Routes {
		if !route.Matches(req) {
			continue
		}
		handler = route.Handler
		break
	}

	handler(req, res, config)
	return res
}
