package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
)

// Pipeline stage names used in error reporting.
const (
	StagePlanning      = "planning"
	StageExtraction    = "extraction"
	StageTranscription = "transcription"
	StageAssembly      = "assembly"
	StageDiarization   = "diarization"
	StageConfiguration = "configuration"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Stage names the pipeline stage that failed.
	Stage string `json:"stage"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s [%s]: %s (cause: %v)", e.Code, e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s [%s]: %s", e.Code, e.Stage, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, stage, message string) *AppError {
	return &AppError{
		Code:      code,
		Stage:     stage,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// AsAppError extracts an *AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var ae *AppError
	ok := stderrors.As(err, &ae)
	return ae, ok
}

// HasCode reports whether err carries the given error code.
func HasCode(err error, code ErrorCode) bool {
	if ae, ok := AsAppError(err); ok {
		return ae.Code == code
	}
	return false
}

// IsFatal reports whether err should abort the run. Per-chunk transcription
// errors and diarization errors degrade the output instead.
func IsFatal(err error) bool {
	ae, ok := AsAppError(err)
	if !ok {
		return true
	}
	switch ae.Code {
	case ErrCodeTranscriptionChunk, ErrCodeDiarization:
		return false
	}
	return true
}

// --- Common Error Constructors ---

// Planning creates a new AppError for degenerate chunk-planner input.
func Planning(reason string) *AppError {
	return &AppError{
		Code: ErrCodePlanning, Stage: StagePlanning,
		Message: reason, Retryable: false,
	}
}

// Extraction creates a new AppError for a fatal media extraction failure.
func Extraction(path string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeExtraction, Stage: StageExtraction,
		Message: fmt.Sprintf("failed to extract audio from %s", path),
		Details: map[string]any{"path": path},
		Cause:   cause, Retryable: false,
	}
}

// TranscriptionChunk creates a new AppError for a single failed chunk.
// The run records it and continues with the remaining chunks.
func TranscriptionChunk(index int, cause error) *AppError {
	return &AppError{
		Code: ErrCodeTranscriptionChunk, Stage: StageTranscription,
		Message:   fmt.Sprintf("chunk %d failed to transcribe", index),
		Details:   map[string]any{"chunk": index},
		Cause:     cause,
		Retryable: true,
	}
}

// TranscriptionTotal creates a new AppError for a run where every chunk failed.
func TranscriptionTotal(total int) *AppError {
	return &AppError{
		Code: ErrCodeTranscriptionTotal, Stage: StageTranscription,
		Message:   fmt.Sprintf("all %d chunks failed to transcribe", total),
		Details:   map[string]any{"chunks": total},
		Retryable: false,
	}
}

// Diarization creates a new AppError for a diarization model failure.
// Transcription is primary; diarization failures degrade to an unlabeled
// transcript instead of failing the run.
func Diarization(cause error) *AppError {
	return &AppError{
		Code: ErrCodeDiarization, Stage: StageDiarization,
		Message: "speaker diarization failed; transcript left unlabeled",
		Cause:   cause, Retryable: false,
	}
}

// Configuration creates a new AppError for missing or invalid configuration.
func Configuration(reason string) *AppError {
	return &AppError{
		Code: ErrCodeConfiguration, Stage: StageConfiguration,
		Message: reason, Retryable: false,
	}
}

// MissingCredentials creates a configuration error for an absent credential.
// Credentials are checked at construction time, not at inference time.
func MissingCredentials(provider, envVar string) *AppError {
	return &AppError{
		Code: ErrCodeConfiguration, Stage: StageConfiguration,
		Message: fmt.Sprintf("%s requires credentials; set %s", provider, envVar),
		Details: map[string]any{"provider": provider, "env": envVar},
	}
}

// InvalidInput creates a new AppError for invalid caller input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Stage: StageConfiguration,
		Message: fmt.Sprintf("invalid input: %s", reason),
		Details: details, Retryable: false,
	}
}

// NotFound creates a new AppError for a missing file or chunk family.
func NotFound(stage, path string) *AppError {
	return &AppError{
		Code: ErrCodeNotFound, Stage: stage,
		Message: fmt.Sprintf("%s not found", path),
		Details: map[string]any{"path": path},
	}
}

// Transport classifies a failed provider request. Exceeded deadlines and
// client timeouts map to ErrCodeTimeout, everything else to
// ErrCodeConnectionFailed, so callers can tell a dead sidecar from a
// response it rejected.
func Transport(stage, provider string, cause error) *AppError {
	var ne net.Error
	if stderrors.Is(cause, context.DeadlineExceeded) || (stderrors.As(cause, &ne) && ne.Timeout()) {
		return Timeout(stage, provider+" request").WithCause(cause)
	}
	return ConnectionFailed(stage, provider, cause)
}

// ConnectionFailed creates a new AppError for a failed provider connection.
func ConnectionFailed(stage, provider string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeConnectionFailed, Stage: stage,
		Message:   fmt.Sprintf("unable to connect to %s", provider),
		Details:   map[string]any{"provider": provider},
		Cause:     cause,
		Retryable: true,
	}
}

// Timeout creates a new AppError for a provider request that timed out.
func Timeout(stage, operation string) *AppError {
	return &AppError{
		Code: ErrCodeTimeout, Stage: stage,
		Message:   fmt.Sprintf("%s took too long", operation),
		Details:   map[string]any{"operation": operation},
		Retryable: true,
	}
}

// ProviderUnavailable creates a new AppError for a provider that failed its
// availability preflight.
func ProviderUnavailable(stage, provider string) *AppError {
	return &AppError{
		Code: ErrCodeProviderUnavailable, Stage: stage,
		Message:   fmt.Sprintf("%s provider is not reachable", provider),
		Details:   map[string]any{"provider": provider},
		Retryable: true,
	}
}
