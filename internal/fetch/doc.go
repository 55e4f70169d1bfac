package fetch

// Package fetch implements the download half of the pipeline on top of yt-dlp
// (via github.com/lrstanley/go-ytdlp). Each fetch runs two phases: a
// metadata-only probe for the display title, then the download itself with a
// tier-specific option profile. Playlists are disabled throughout; only the
// first referenced media item is fetched, and no retries are attempted here.
