package model

import "time"

// RequestStatus tracks where a pending request sits in the selection flow.
type RequestStatus string

const (
	// StatusMenuMain means the main action menu is shown for a staged URL
	StatusMenuMain RequestStatus = "MenuMain"

	// StatusVideoQualityMenu means the video quality submenu is shown
	StatusVideoQualityMenu RequestStatus = "VideoQualityMenu"

	// StatusAudioQualityMenu means the audio quality submenu is shown
	StatusAudioQualityMenu RequestStatus = "AudioQualityMenu"

	// StatusExecuting means the download/deliver chain is running
	StatusExecuting RequestStatus = "Executing"

	// StatusDelivered means the artifact reached the chat
	StatusDelivered RequestStatus = "Delivered"

	// StatusFailed means the request ended with a reported error
	StatusFailed RequestStatus = "Failed"
)

// String returns the string representation of RequestStatus
func (rs RequestStatus) String() string {
	return string(rs)
}

// IsMenu returns true while the request is waiting on a menu selection
func (rs RequestStatus) IsMenu() bool {
	return rs == StatusMenuMain || rs == StatusVideoQualityMenu || rs == StatusAudioQualityMenu
}

// IsTerminal returns true once the request's resources may be reclaimed
func (rs RequestStatus) IsTerminal() bool {
	return rs == StatusDelivered || rs == StatusFailed
}

// Request is the single pending unit of work for one chat. A new URL from the
// same chat replaces the previous Request wholesale.
type Request struct {
	ChatID    int64
	URL       string
	Kind      MediaKind
	Tier      QualityTier
	Status    RequestStatus
	MenuMsgID int       // message carrying the inline keyboard, edited in place
	StagedAt  time.Time // when the URL was staged
}

// Artifact is the file produced for one Request. It lives inside the
// Request's scratch directory and is never shared across chats.
type Artifact struct {
	LocalPath string
	ByteSize  int64
	Kind      MediaKind
	Title     string // human-readable title from the metadata probe
}
