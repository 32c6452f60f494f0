package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Pipeline stage errors
const (
	// ErrCodePlanning indicates degenerate planner input (zero duration or size).
	ErrCodePlanning ErrorCode = "PLANNING_ERROR"
	// ErrCodeExtraction indicates an undecodable source or disk failure. Fatal.
	ErrCodeExtraction ErrorCode = "EXTRACTION_ERROR"
	// ErrCodeTranscriptionChunk indicates a single chunk failed to transcribe.
	// Recorded and skipped; the run continues.
	ErrCodeTranscriptionChunk ErrorCode = "TRANSCRIPTION_CHUNK_ERROR"
	// ErrCodeTranscriptionTotal indicates every chunk failed. Fatal.
	ErrCodeTranscriptionTotal ErrorCode = "TRANSCRIPTION_TOTAL_FAILURE"
	// ErrCodeDiarization indicates a diarization model failure. The run
	// degrades to an unlabeled transcript instead of failing.
	ErrCodeDiarization ErrorCode = "DIARIZATION_ERROR"
)

// Connection/availability errors (retryable)
const (
	// ErrCodeConnectionFailed indicates a failed connection to a provider.
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"
	// ErrCodeTimeout indicates a provider request timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeProviderUnavailable indicates no configured provider is reachable.
	ErrCodeProviderUnavailable ErrorCode = "PROVIDER_UNAVAILABLE"
)

// Input/configuration errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeConfiguration indicates missing or invalid configuration,
	// including absent model-access credentials.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
	// ErrCodeNotFound indicates a missing file or chunk family.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeConnectionFailed:    true,
	ErrCodeTimeout:             true,
	ErrCodeProviderUnavailable: true,
	ErrCodeTranscriptionChunk:  true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
