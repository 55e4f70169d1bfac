package health

// Package health serves the liveness endpoint. It runs independently of the
// pipeline: hosting platforms poll it to keep the process alive.

import (
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// Endpoint constants
const (
	Path        = "/health"
	Body        = "Healthy"
	ContentType = "text/plain"
)

// Handler responds 200/Healthy on the health path and 404 otherwise.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(Path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", ContentType)
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, Body)
	})
	return mux
}

// Serve blocks serving the liveness endpoint on the given port. Meant to run
// on its own goroutine for the process lifetime.
func Serve(port int) error {
	addr := fmt.Sprintf(":%d", port)
	log.WithField("addr", addr).Info("Health check server listening")
	return http.ListenAndServe(addr, Handler())
}
