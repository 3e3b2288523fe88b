package http

type Handler func(ctx *RequestCtx) error

type Router struct {
	Routes     []Route
	Middleware []Middleware

	// NotFound serves GET requests no route matched; MethodNotAllowed serves every other
	// unmatched method.
	NotFound         Handler
	MethodNotAllowed Handler
}

func NewRouter() Router {
	return Router{
		Routes:           make([]Route, 0),
		NotFound:         NotFoundHandler,
		MethodNotAllowed: MethodNotAllowedHandler,
	}
}

func (router *Router) GET(match Matcher, handler Handler, middleware ...Middleware) {
	router.Add(MethodGet, match, handler, middleware...)
}

func (router *Router) POST(match Matcher, handler Handler, middleware ...Middleware) {
	router.Add(MethodPost, match, handler, middleware...)
}

// Add registers a route. Routes are tried in the order they were added.
func (router *Router) Add(method string, match Matcher, handler Handler, middleware ...Middleware) {
	for _, middleware := range middleware {
		handler = middleware(handler)
	}

	router.Routes = append(router.Routes, Route{
		Method:  method,
		Match:   match,
		Handler: handler,
	})
}

// Use appends middleware wrapped around every dispatch, including the fallbacks.
func (router *Router) Use(middleware ...Middleware) {
	router.Middleware = append(router.Middleware, middleware...)
}

// Lookup returns the handler for method and path without router-wide middleware.
func (router *Router) Lookup(method, path string) Handler {
	for _, route := range router.Routes {
		if route.Method == method && route.Match(path) {
			return route.Handler
		}
	}

	if method == MethodGet {
		return router.NotFound
	}
	return router.MethodNotAllowed
}

func (router *Router) Handler() Handler {
	var handler Handler = func(ctx *RequestCtx) error {
		return router.Lookup(ctx.Request.Method, ctx.Request.Path)(ctx)
	}

	for _, middleware := range router.Middleware {
		handler = middleware(handler)
	}

	return handler
}
