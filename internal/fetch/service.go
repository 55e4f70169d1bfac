package fetch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/lrstanley/go-ytdlp"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/tg-media-bot/internal/model"
)

// Output template and progress reporting
const (
	OutputExtTemplate = ".%(ext)s"
	ProgressInterval  = 500 * time.Millisecond
)

// ErrNoOutput means the download subprocess finished without leaving a file
// matching the expected base name in the scratch directory.
var ErrNoOutput = errors.New("no output file produced by download")

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// Service downloads media through yt-dlp.
type Service struct {
	timeout time.Duration // 0 disables the per-fetch deadline
}

// NewService creates a new fetch service. A zero timeout leaves downloads
// unbounded, which is the default behavior.
func NewService(timeout time.Duration) *Service {
	return &Service{timeout: timeout}
}

// Fetch probes the URL for a title, then downloads it into dir using the
// profile for (kind, tier). The produced file has a random filesystem-safe
// base name; its extension is whatever yt-dlp decided, resolved by globbing.
func (s *Service) Fetch(ctx context.Context, url string, kind model.MediaKind, tier model.QualityTier, dir string) (model.Artifact, error) {
	profile, err := ProfileFor(kind, tier)
	if err != nil {
		return model.Artifact{}, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	title, err := s.probeTitle(ctx, url)
	if err != nil {
		return model.Artifact{}, fmt.Errorf("metadata probe failed: %w", err)
	}

	base := sanitizeBaseName(uuid.NewString())
	if err := s.download(ctx, url, profile, filepath.Join(dir, base+OutputExtTemplate)); err != nil {
		return model.Artifact{}, fmt.Errorf("download failed: %w", err)
	}

	path, err := resolveOutput(dir, base, profile.PreferredExt)
	if err != nil {
		return model.Artifact{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return model.Artifact{}, fmt.Errorf("failed to stat output file: %w", err)
	}

	log.WithFields(log.Fields{
		"tier":  tier,
		"bytes": info.Size(),
		"file":  filepath.Base(path),
	}).Info("Fetch completed")

	return model.Artifact{
		LocalPath: path,
		ByteSize:  info.Size(),
		Kind:      kind,
		Title:     title,
	}, nil
}

// probeTitle runs the metadata-only phase. No payload is downloaded.
func (s *Service) probeTitle(ctx context.Context, url string) (string, error) {
	dl := ytdlp.New().
		SkipDownload().
		DumpJSON().
		NoPlaylist()

	result, err := dl.Run(ctx, url)
	if err != nil {
		return "", err
	}

	info, err := result.GetExtractedInfo()
	if err != nil || len(info) == 0 {
		// A missing title is tolerable; the status message falls back to the URL.
		return "", nil
	}
	if info[0].Title != nil {
		return *info[0].Title, nil
	}
	return "", nil
}

// download runs the payload phase with the profile's option set.
func (s *Service) download(ctx context.Context, url string, profile Profile, outputTemplate string) error {
	dl := ytdlp.New().
		Format(profile.FormatSelector).
		Output(outputTemplate).
		NoPlaylist().
		Quiet()

	if profile.ExtractAudio {
		dl = dl.
			ExtractAudio().
			AudioFormat(AudioFormat).
			AudioQuality(fmt.Sprintf("%dK", profile.AudioBitrateK))
	} else {
		dl = dl.MergeOutputFormat(VideoMergeFormat)
	}

	// Best-effort progress signal; correctness does not depend on it.
	dl.ProgressFunc(ProgressInterval, func(update ytdlp.ProgressUpdate) {
		if update.TotalBytes > 0 {
			percent := float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100
			log.WithField("percent", int(percent)).Debug("Download progress")
		}
	})

	_, err := dl.Run(ctx, url)
	return err
}

// resolveOutput finds the file the subprocess left behind. The extension is
// decided by yt-dlp at runtime, so the directory is globbed for the base
// name. The expected container for the requested kind wins a tie; otherwise
// the first match in sorted order is taken so the choice is deterministic.
func resolveOutput(dir, base, preferredExt string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, base+".*"))
	if err != nil {
		return "", fmt.Errorf("failed to glob output directory: %w", err)
	}
	if len(matches) == 0 {
		return "", ErrNoOutput
	}

	preferred := filepath.Join(dir, base+preferredExt)
	for _, m := range matches {
		if m == preferred {
			return m, nil
		}
	}

	sort.Strings(matches)
	return matches[0], nil
}

// sanitizeBaseName strips anything outside [A-Za-z0-9._-] from a base name.
func sanitizeBaseName(name string) string {
	return unsafeFilenameChars.ReplaceAllString(name, "_")
}
