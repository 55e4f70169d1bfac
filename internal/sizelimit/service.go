package sizelimit

// Package sizelimit shrinks oversized artifacts to fit the platform upload
// ceiling. Compliant files pass through untouched; oversized ones get exactly
// one transcode attempt, with no iterative shrink-and-recheck loop.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ytget/tg-media-bot/internal/model"
)

// FFmpeg settings for the video shrink case
const (
	VideoCodec   = "libx264"
	VideoPreset  = "veryfast"
	VideoBitrate = "900k"

	// Width capped at 640px preserving aspect ratio; -2 keeps the height even
	VideoScaleFilter = "scale='min(640,iw)':-2"

	VideoAudioCodec   = "aac"
	VideoAudioBitrate = "128k"
)

// FFmpeg settings for the audio shrink case
const (
	AudioCodec   = "libmp3lame"
	AudioBitrate = "128k"
)

// Executable and output naming
const (
	FFmpegCommand  = "ffmpeg"
	ShrunkSuffix   = "_small"
	VideoOutputExt = ".mp4"
	AudioOutputExt = ".mp3"
)

// ErrTranscode means ffmpeg exited non-zero. The input is assumed valid by
// this point, so a failed transcode is fatal for the request.
var ErrTranscode = errors.New("transcode failed")

// Service conditionally re-encodes files that exceed a byte ceiling.
type Service struct {
	ffmpegPath string        // empty when no transcoder is on the host
	timeout    time.Duration // 0 disables the per-transcode deadline
}

// NewService probes the host for ffmpeg once. When the binary is missing the
// service still works; oversized files are simply returned unchanged.
func NewService(timeout time.Duration) *Service {
	path, err := exec.LookPath(FFmpegCommand)
	if err != nil {
		log.Warn("ffmpeg not found on PATH; oversized files will be sent as-is")
		path = ""
	}
	return &Service{ffmpegPath: path, timeout: timeout}
}

// Available reports whether a transcoder binary was found.
func (s *Service) Available() bool {
	return s.ffmpegPath != ""
}

// Enforce returns path unchanged when the file already fits maxBytes or when
// no transcoder is available. Otherwise it runs one kind-specific transcode
// and returns the shrunk file, falling back to the original if the subprocess
// succeeded but left no output behind.
func (s *Service) Enforce(ctx context.Context, path string, maxBytes int64, kind model.MediaKind) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat input file: %w", err)
	}
	if info.Size() <= maxBytes {
		return path, nil
	}

	if !s.Available() {
		log.WithFields(log.Fields{
			"bytes":   info.Size(),
			"ceiling": maxBytes,
		}).Warn("File oversized but no transcoder available, passing through")
		return path, nil
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	out := shrunkPath(path, kind)
	args := buildFFmpegArgs(path, out, kind)

	log.WithFields(log.Fields{
		"bytes":   info.Size(),
		"ceiling": maxBytes,
		"kind":    kind,
	}).Info("Transcoding oversized file")

	cmd := exec.CommandContext(ctx, s.ffmpegPath, args...)
	if err := cmd.Run(); err != nil {
		os.Remove(out) // drop the partial output
		return "", fmt.Errorf("%w: %v", ErrTranscode, err)
	}

	if _, err := os.Stat(out); err != nil {
		return path, nil
	}
	return out, nil
}

// buildFFmpegArgs builds the single-attempt argument list per kind.
func buildFFmpegArgs(inputPath, outputPath string, kind model.MediaKind) []string {
	if kind == model.KindVideo {
		return []string{
			"-y",
			"-i", inputPath,
			"-vf", VideoScaleFilter,
			"-c:v", VideoCodec,
			"-preset", VideoPreset,
			"-b:v", VideoBitrate,
			"-c:a", VideoAudioCodec,
			"-b:a", VideoAudioBitrate,
			outputPath,
		}
	}
	return []string{
		"-y",
		"-i", inputPath,
		"-c:a", AudioCodec,
		"-b:a", AudioBitrate,
		outputPath,
	}
}

// shrunkPath derives the output path: original stem, fixed suffix, container
// extension matching the kind.
func shrunkPath(inputPath string, kind model.MediaKind) string {
	ext := filepath.Ext(inputPath)
	stem := strings.TrimSuffix(inputPath, ext)
	if kind == model.KindVideo {
		return stem + ShrunkSuffix + VideoOutputExt
	}
	return stem + ShrunkSuffix + AudioOutputExt
}
