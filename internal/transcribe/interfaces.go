package transcribe

import "context"

// Transcriber defines the interface for the transcription service.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) Result
}
