package fetch

import (
	"fmt"

	"github.com/ytget/tg-media-bot/internal/model"
)

// Format selectors per video tier; height-capped best streams with fallbacks
const (
	VideoSelectorHD  = "bestvideo[height<=480]+bestaudio/best[height<=480]/best"
	VideoSelectorSD  = "bestvideo[height<=360]+bestaudio/best[height<=360]/best"
	VideoSelectorLow = "bestvideo[height<=240]+bestaudio/best[height<=240]/best"
)

// Format selectors per audio tier
const (
	AudioSelectorBest  = "bestaudio/best"
	AudioSelectorWorst = "worstaudio/worst"
)

// Container and codec targets
const (
	VideoMergeFormat = "mp4"
	AudioFormat      = "mp3"

	VideoExt = ".mp4"
	AudioExt = ".mp3"
)

// Audio bitrates in kbps per tier
const (
	AudioBitrateHigh   = 192
	AudioBitrateMedium = 128
	AudioBitrateLow    = 64
)

// Profile is the closed extraction option set for one (kind, tier) pair.
// Profiles are built only through ProfileFor, which rejects unknown
// combinations up front instead of letting them reach yt-dlp.
type Profile struct {
	Kind           model.MediaKind
	Tier           model.QualityTier
	FormatSelector string
	ExtractAudio   bool
	AudioBitrateK  int    // only meaningful when ExtractAudio is set
	PreferredExt   string // container expected for the kind, used as glob tie-break
}

// ProfileFor maps a kind and tier to its extraction profile. Transcription
// uses the high audio profile; any other pairing is an error.
func ProfileFor(kind model.MediaKind, tier model.QualityTier) (Profile, error) {
	if !tier.ValidFor(kind) {
		return Profile{}, fmt.Errorf("tier %s is not valid for kind %s", tier, kind)
	}

	switch tier {
	case model.TierVideoHD:
		return videoProfile(tier, VideoSelectorHD), nil
	case model.TierVideoSD:
		return videoProfile(tier, VideoSelectorSD), nil
	case model.TierVideoLow:
		return videoProfile(tier, VideoSelectorLow), nil
	case model.TierAudioHigh:
		return audioProfile(kind, tier, AudioSelectorBest, AudioBitrateHigh), nil
	case model.TierAudioMedium:
		return audioProfile(kind, tier, AudioSelectorBest, AudioBitrateMedium), nil
	case model.TierAudioLow:
		return audioProfile(kind, tier, AudioSelectorWorst, AudioBitrateLow), nil
	default:
		return Profile{}, fmt.Errorf("unknown tier %s", tier)
	}
}

func videoProfile(tier model.QualityTier, selector string) Profile {
	return Profile{
		Kind:           model.KindVideo,
		Tier:           tier,
		FormatSelector: selector,
		PreferredExt:   VideoExt,
	}
}

func audioProfile(kind model.MediaKind, tier model.QualityTier, selector string, bitrateK int) Profile {
	return Profile{
		Kind:           kind,
		Tier:           tier,
		FormatSelector: selector,
		ExtractAudio:   true,
		AudioBitrateK:  bitrateK,
		PreferredExt:   AudioExt,
	}
}
