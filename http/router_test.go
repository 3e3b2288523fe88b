package http

import (
	"errors"
	"testing"

	"github.com/freekieb7/tinyhttpd/test"
)

func named(name string, hits *[]string) Handler {
	return func(ctx *RequestCtx) error {
		*hits = append(*hits, name)
		return nil
	}
}

func TestRouterDispatch(t *testing.T) {
	var hits []string

	router := NewRouter()
	router.GET(Prefix("/files/"), named("files-read", &hits))
	router.POST(Prefix("/files/"), named("files-write", &hits))
	router.GET(Exact("/user-agent"), named("user-agent", &hits))
	router.GET(Prefix("/echo"), named("echo", &hits))

	testCases := []struct {
		method string
		path   string
		want   string
		err    error
	}{
		{"GET", "/files/a.txt", "files-read", nil},
		{"POST", "/files/a.txt", "files-write", nil},
		{"GET", "/user-agent", "user-agent", nil},
		{"GET", "/user-agent/x", "", ErrNotFound},
		{"GET", "/echo", "echo", nil},
		{"GET", "/echoXYZ", "echo", nil},
		{"GET", "/echo/abc", "echo", nil},
		{"GET", "/files", "", ErrNotFound},
		{"GET", "/", "", ErrNotFound},
		{"POST", "/echo/abc", "", ErrUnsupportedMethod},
		{"POST", "/", "", ErrUnsupportedMethod},
		{"DELETE", "/echo/x", "", ErrUnsupportedMethod},
		{"PUT", "/files/a.txt", "", ErrUnsupportedMethod},
		{"get", "/echo/x", "", ErrUnsupportedMethod},
	}

	handler := router.Handler()
	for _, tc := range testCases {
		hits = hits[:0]

		ctx := RequestCtx{Request: Request{Method: tc.method, Path: tc.path}}
		err := handler(&ctx)

		if !errors.Is(err, tc.err) {
			t.Errorf("%s %s: got error %v, want %v", tc.method, tc.path, err, tc.err)
		}
		if tc.want == "" {
			test.AssertEqual(t, 0, len(hits))
			continue
		}
		if len(hits) != 1 || hits[0] != tc.want {
			t.Errorf("%s %s: got %v, want %s", tc.method, tc.path, hits, tc.want)
		}
	}
}

func TestRouterFirstMatchWins(t *testing.T) {
	var hits []string

	router := NewRouter()
	router.GET(Prefix("/a"), named("first", &hits))
	router.GET(Prefix("/ab"), named("second", &hits))

	ctx := RequestCtx{Request: Request{Method: MethodGet, Path: "/abc"}}
	if err := router.Handler()(&ctx); err != nil {
		t.Fatal(err)
	}
	test.AssertEqual(t, 1, len(hits))
	test.AssertEqual(t, "first", hits[0])
}

func TestRouterMiddlewareOrder(t *testing.T) {
	var trail []string
	mark := func(name string) Middleware {
		return func(next Handler) Handler {
			return func(ctx *RequestCtx) error {
				trail = append(trail, name)
				return next(ctx)
			}
		}
	}

	router := NewRouter()
	router.Use(mark("inner"), mark("outer"))
	router.GET(Exact("/"), func(ctx *RequestCtx) error {
		trail = append(trail, "handler")
		return nil
	}, mark("route"))

	ctx := RequestCtx{Request: Request{Method: MethodGet, Path: "/"}}
	if err := router.Handler()(&ctx); err != nil {
		t.Fatal(err)
	}

	want := []string{"outer", "inner", "route", "handler"}
	test.AssertEqual(t, len(want), len(trail))
	for i := range want {
		test.AssertEqual(t, want[i], trail[i])
	}

	// fallbacks run inside router-wide middleware as well
	trail = trail[:0]
	ctx = RequestCtx{Request: Request{Method: MethodGet, Path: "/missing"}}
	if err := router.Handler()(&ctx); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected %v, got %v", ErrNotFound, err)
	}
	test.AssertEqual(t, 2, len(trail))
}
