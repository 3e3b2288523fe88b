// Package handler holds the request handlers served by tinyhttpd and the table that
// routes requests to them.
package handler

import (
	"github.com/freekieb7/tinyhttpd/filesystem"
	"github.com/freekieb7/tinyhttpd/http"
)

const (
	filesPrefix = "/files/"
	echoPrefix  = "/echo"
)

// Routes registers every route in dispatch order. The file handlers capture fs, which
// is never modified afterwards.
func Routes(fs filesystem.Filesystem, middleware ...http.Middleware) http.Router {
	router := http.NewRouter()
	router.Use(middleware...)

	files := Files{FS: fs}

	router.GET(http.Prefix(filesPrefix), files.Read)
	router.POST(http.Prefix(filesPrefix), files.Write)
	router.GET(http.Exact("/user-agent"), UserAgent)
	router.GET(http.Prefix(echoPrefix), Echo)

	return router
}
