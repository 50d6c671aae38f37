package httpserver

import (
	"net/http"
	"time"
)

// New builds the tag service's HTTP server. Requests are small JSON bodies
// or single PNG downloads, so tight header and write timeouts are safe and
// shed stuck clients early.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 3 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
