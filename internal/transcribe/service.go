package transcribe

// Package transcribe routes audio artifacts to the Whisper speech-to-text
// API. Unavailability is a first-class result, not an error: a missing
// credential and a failed API call both surface as the same user-facing
// fallback, but the Result keeps the reason apart for logging and tests.

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"
)

// Reason explains why a transcription result carries no text.
type Reason string

const (
	// ReasonNone means transcription succeeded
	ReasonNone Reason = ""

	// ReasonNoCredential means no API key was configured
	ReasonNoCredential Reason = "no_credential"

	// ReasonAPIError means the API call failed or returned no text
	ReasonAPIError Reason = "api_error"
)

// Result is the outcome of one transcription call.
type Result struct {
	Text   string
	Reason Reason
}

// Available reports whether the result carries usable text.
func (r Result) Available() bool {
	return r.Reason == ReasonNone
}

// Service transcribes audio files through the Whisper API.
type Service struct {
	client *openai.Client // nil when no credential is configured
}

// NewService creates a transcription service. An empty API key yields a
// service whose every call reports ReasonNoCredential.
func NewService(apiKey string) *Service {
	if apiKey == "" {
		return &Service{}
	}
	return &Service{client: openai.NewClient(apiKey)}
}

// Transcribe uploads the file and returns its transcription text, or an
// unavailable Result. It never returns an error; callers decide wording.
func (s *Service) Transcribe(ctx context.Context, path string) Result {
	if s.client == nil {
		return Result{Reason: ReasonNoCredential}
	}

	resp, err := s.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: path,
	})
	if err != nil {
		log.WithError(err).Warn("Transcription API call failed")
		return Result{Reason: ReasonAPIError}
	}
	if resp.Text == "" {
		return Result{Reason: ReasonAPIError}
	}
	return Result{Text: resp.Text}
}
