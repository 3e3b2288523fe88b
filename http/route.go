package http

import "strings"

type Matcher func(path string) bool

// Exact matches path byte for byte.
func Exact(path string) Matcher {
	return func(p string) bool {
		return p == path
	}
}

// Prefix matches every path starting with prefix.
func Prefix(prefix string) Matcher {
	return func(p string) bool {
		return strings.HasPrefix(p, prefix)
	}
}

type Route struct {
	Method  string
	Match   Matcher
	Handler Handler
}

var NotFoundHandler Handler = func(ctx *RequestCtx) error {
	return ErrNotFound
}

var MethodNotAllowedHandler Handler = func(ctx *RequestCtx) error {
	return ErrUnsupportedMethod
}
