package diarization

// DiarizationRequest holds parameters for a diarization call.
type DiarizationRequest struct {
	// AudioPath is the path to the audio file to diarize.
	AudioPath string `json:"audio_path"`
	// NumSpeakers is the exact number of speakers (0 = auto-detect).
	NumSpeakers int `json:"num_speakers,omitempty"`
	// MinSpeakers is the minimum expected number of speakers.
	MinSpeakers int `json:"min_speakers,omitempty"`
	// MaxSpeakers is the maximum expected number of speakers.
	MaxSpeakers int `json:"max_speakers,omitempty"`
	// Language is the expected language of the audio (e.g. "en").
	Language string `json:"language,omitempty"`
}

// DiarizationResponse holds the result of a diarization call.
type DiarizationResponse struct {
	// Segments contains speaker-attributed time intervals.
	Segments []SpeakerInterval `json:"segments"`
	// NumSpeakers is the number of speakers detected.
	NumSpeakers int `json:"num_speakers"`
}

// SpeakerInterval is one speaker-attributed time range, absolute seconds.
// It is read-only input to alignment; speakers are attached to transcript
// segments, the intervals themselves are never rewritten.
type SpeakerInterval struct {
	// Speaker is the raw label assigned by the model (e.g. "SPEAKER_00").
	Speaker string `json:"speaker"`
	// Start is the interval start time in seconds.
	Start float64 `json:"start"`
	// End is the interval end time in seconds.
	End float64 `json:"end"`
}
