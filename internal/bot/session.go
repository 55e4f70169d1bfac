package bot

import (
	"errors"
	"sync"
	"time"

	"github.com/ytget/tg-media-bot/internal/model"
)

// ErrNoPending means a menu action arrived with no URL staged for the chat.
var ErrNoPending = errors.New("no pending URL for chat")

// ErrBusy means the chat's request is already executing; menu actions are
// rejected rather than interleaved with the running chain.
var ErrBusy = errors.New("request already executing")

// Sessions maps chat IDs to their single pending Request. Each chat holds at
// most one Request; staging a new URL replaces the old one wholesale. All
// mutation goes through Sessions methods, and methods hand out copies so
// callers never share the stored value.
type Sessions struct {
	mu      sync.Mutex
	pending map[int64]*model.Request
}

// NewSessions creates an empty session map.
func NewSessions() *Sessions {
	return &Sessions{pending: make(map[int64]*model.Request)}
}

// Stage records a fresh URL for the chat, discarding any prior menu-state
// Request, and puts the chat in the main menu state. While the chat's
// Request is executing, staging is rejected with ErrBusy: the running chain
// must reach its terminal state (and its Finish) before a new URL can be
// taken, otherwise the replacement would be discarded by that Finish.
func (s *Sessions) Stage(chatID int64, url string) (model.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cur, ok := s.pending[chatID]; ok && cur.Status == model.StatusExecuting {
		return model.Request{}, ErrBusy
	}

	req := &model.Request{
		ChatID:   chatID,
		URL:      url,
		Status:   model.StatusMenuMain,
		StagedAt: time.Now(),
	}
	s.pending[chatID] = req
	return *req, nil
}

// SetMenuMessage remembers which message carries the inline keyboard so
// submenu navigation can edit it in place.
func (s *Sessions) SetMenuMessage(chatID int64, msgID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req, ok := s.pending[chatID]; ok {
		req.MenuMsgID = msgID
	}
}

// Pending returns a copy of the chat's Request, if any.
func (s *Sessions) Pending(chatID int64) (model.Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.pending[chatID]
	if !ok {
		return model.Request{}, false
	}
	return *req, true
}

// ToSubmenu moves the chat from the main menu into the quality submenu for
// the kind. Navigation is rejected while executing.
func (s *Sessions) ToSubmenu(chatID int64, kind model.MediaKind) (model.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.pending[chatID]
	if !ok {
		return model.Request{}, ErrNoPending
	}
	if req.Status == model.StatusExecuting {
		return model.Request{}, ErrBusy
	}

	req.Kind = kind
	switch kind {
	case model.KindAudio:
		req.Status = model.StatusAudioQualityMenu
	default:
		req.Status = model.StatusVideoQualityMenu
	}
	return *req, nil
}

// ToMain returns the chat to the main menu from a quality submenu. The
// chosen kind is forgotten along with the submenu.
func (s *Sessions) ToMain(chatID int64) (model.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.pending[chatID]
	if !ok {
		return model.Request{}, ErrNoPending
	}
	if req.Status == model.StatusExecuting {
		return model.Request{}, ErrBusy
	}

	req.Kind = ""
	req.Status = model.StatusMenuMain
	return *req, nil
}

// StartExecution validates the (kind, tier) pair and transitions the chat's
// Request into the executing state. From here the chain runs to a terminal
// state; further menu actions for the chat are rejected with ErrBusy.
func (s *Sessions) StartExecution(chatID int64, kind model.MediaKind, tier model.QualityTier) (model.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.pending[chatID]
	if !ok {
		return model.Request{}, ErrNoPending
	}
	if req.Status == model.StatusExecuting {
		return model.Request{}, ErrBusy
	}
	if !tier.ValidFor(kind) {
		return model.Request{}, errors.New("tier " + tier.String() + " is not valid for kind " + kind.String())
	}

	req.Kind = kind
	req.Tier = tier
	req.Status = model.StatusExecuting
	return *req, nil
}

// Finish discards the chat's Request after a terminal transition. The next
// message from the chat starts from a clean slate.
func (s *Sessions) Finish(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pending, chatID)
}
