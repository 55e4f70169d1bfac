package workspace

// Package workspace allocates isolated scratch directories, one per request.
// A scratch directory owns every file a request produces and is removed
// unconditionally when the request reaches a terminal state.

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// ScratchPrefix names scratch directories so strays are recognizable
const ScratchPrefix = "tg_media_"

// Scratch is a request-exclusive temporary directory.
type Scratch struct {
	path string
}

// New creates a fresh scratch directory under the system temp location.
func New() (*Scratch, error) {
	dir, err := os.MkdirTemp("", ScratchPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}
	return &Scratch{path: dir}, nil
}

// Path returns the directory path.
func (s *Scratch) Path() string {
	return s.path
}

// Cleanup removes the directory and everything inside it. Safe to call more
// than once; meant to run in a defer so it covers every terminal path.
func (s *Scratch) Cleanup() {
	if s == nil || s.path == "" {
		return
	}
	if err := os.RemoveAll(s.path); err != nil {
		log.WithError(err).WithField("dir", s.path).Warn("Failed to remove scratch directory")
		return
	}
	s.path = ""
}
