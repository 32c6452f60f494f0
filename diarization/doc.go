// Package diarization defines the provider interface for speaker diarization
// backends and the alignment pass that attributes transcript segments to
// speakers.
//
// Diarization is additive: a provider or alignment failure leaves the
// transcript unlabeled, it never fails the run.
//
// # Backends
//
//   - diarization/pyannote: Pyannote-based speaker diarization sidecar
//
// # Usage
//
//	reg := diarization.NewRegistry()
//	reg.RegisterFactory("pyannote", pyannote.Factory())
//	p, _ := reg.Create("pyannote", nil)
//	resp, err := p.Diarize(ctx, req)
//	diarization.Align(segments, resp.Segments)
package diarization
