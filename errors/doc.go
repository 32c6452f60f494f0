// Package errors provides unified error handling for the transcription
// pipeline. It implements structured error types with machine-readable codes,
// the stage that failed, and retryable detection, so callers can distinguish
// fatal failures (extraction, total transcription failure) from recoverable
// per-chunk ones.
package errors
