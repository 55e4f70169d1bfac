package bot

// User-facing message texts
const (
	MsgGreeting           = "Send a YouTube/Instagram/video URL."
	MsgProvideURL         = "Provide a valid media URL."
	MsgChooseAction       = "Choose an action:"
	MsgChooseVideoQuality = "Choose video quality:"
	MsgChooseAudioQuality = "Choose audio quality:"
	MsgNoPendingURL       = "No URL found, send a link first."
	MsgBusy               = "Still working on the previous request."
	MsgUseMenu            = "Pick an action from the menu."
	MsgDownloading        = "Downloading..."
	MsgTranscribing       = "Transcribing..."
	MsgTranscribeFallback = "Transcription unavailable. Set OPENAI_API_KEY."
)

// Error report formats; the underlying cause is shown to the user
const (
	MsgFetchFailedFmt     = "Download failed: %v"
	MsgTranscodeFailedFmt = "Transcode failed: %v"
	MsgDeliveryFailedFmt  = "Upload failed: %v"
)

// Button labels
const (
	BtnVideo      = "Download Video"
	BtnAudio      = "Download Audio"
	BtnTranscribe = "Transcribe Lyrics"
	BtnBack       = "« Back"

	BtnVideoHD  = "HD (480p)"
	BtnVideoSD  = "SD (360p)"
	BtnVideoLow = "Low (240p)"

	BtnAudioHigh   = "High Quality (192kbps)"
	BtnAudioMedium = "Medium Quality (128kbps)"
	BtnAudioLow    = "Low Quality (64kbps)"
)
