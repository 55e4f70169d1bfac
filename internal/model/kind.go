package model

// MediaKind identifies what the user asked to receive for a URL.
type MediaKind string

const (
	// KindVideo requests a downloaded video file
	KindVideo MediaKind = "video"

	// KindAudio requests an extracted audio track
	KindAudio MediaKind = "audio"

	// KindTranscription requests a text transcription of the audio track
	KindTranscription MediaKind = "transcription"
)

// String returns the string representation of MediaKind
func (k MediaKind) String() string {
	return string(k)
}

// IsValid reports whether k is one of the known media kinds
func (k MediaKind) IsValid() bool {
	return k == KindVideo || k == KindAudio || k == KindTranscription
}

// QualityTier is a named quality profile for a media kind. A tier is only
// meaningful together with its kind; pairing is validated by ValidFor.
type QualityTier string

const (
	// TierVideoHD caps video resolution at 480p
	TierVideoHD QualityTier = "video_hd"

	// TierVideoSD caps video resolution at 360p
	TierVideoSD QualityTier = "video_sd"

	// TierVideoLow caps video resolution at 240p
	TierVideoLow QualityTier = "video_low"

	// TierAudioHigh extracts audio at 192 kbps
	TierAudioHigh QualityTier = "audio_high"

	// TierAudioMedium extracts audio at 128 kbps
	TierAudioMedium QualityTier = "audio_medium"

	// TierAudioLow extracts audio at 64 kbps from the worst source stream
	TierAudioLow QualityTier = "audio_low"
)

// String returns the string representation of QualityTier
func (t QualityTier) String() string {
	return string(t)
}

// ValidFor reports whether the tier belongs to the given kind. Transcription
// runs on the high audio tier.
func (t QualityTier) ValidFor(kind MediaKind) bool {
	switch kind {
	case KindVideo:
		return t == TierVideoHD || t == TierVideoSD || t == TierVideoLow
	case KindAudio:
		return t == TierAudioHigh || t == TierAudioMedium || t == TierAudioLow
	case KindTranscription:
		return t == TierAudioHigh
	default:
		return false
	}
}

// TiersFor returns the tiers offered in the quality menu for a kind, in
// display order. Transcription has a single fixed tier and no menu.
func TiersFor(kind MediaKind) []QualityTier {
	switch kind {
	case KindVideo:
		return []QualityTier{TierVideoHD, TierVideoSD, TierVideoLow}
	case KindAudio:
		return []QualityTier{TierAudioHigh, TierAudioMedium, TierAudioLow}
	case KindTranscription:
		return []QualityTier{TierAudioHigh}
	default:
		return nil
	}
}
