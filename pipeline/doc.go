// Package pipeline orchestrates a full transcription run: probe, plan,
// extract or resume chunks, transcribe, reassemble, and optionally
// speaker-label the result.
//
// A run is single-threaded and strictly sequential per file. That is
// deliberate: a chunk's absolute offset is only valid once every prior
// chunk's duration is fixed, and the handful of chunks per file makes
// parallel dispatch not worth out-of-order completion handling. Callers
// wanting cancellation stop between chunks via the context.
package pipeline
