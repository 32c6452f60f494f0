// Package transcription defines the provider interface and common types
// for interacting with speech-to-text backends, and the dispatcher that
// feeds chunk files through a backend one at a time.
//
// Collaborator responses arrive either as typed structs or as generic JSON
// mappings; Normalize folds both into one internal shape at this boundary,
// and no backend-specific shape leaks past it.
//
// # Backends
//
//   - transcription/whisper: faster-whisper HTTP sidecar
//   - transcription/openai: OpenAI Whisper API
package transcription
