// Package provider defines the base provider abstraction shared by the
// transcription and diarization backends: a minimal Provider interface, a
// Factory for building providers from generic config maps, and a Registry for
// runtime-selectable backends.
//
// # Usage
//
//	reg := provider.NewRegistry[transcription.Provider]()
//	reg.RegisterFactory("whisper", whisper.Factory())
//	p, err := reg.Create("whisper", map[string]any{"url": "http://localhost:8387"})
package provider
