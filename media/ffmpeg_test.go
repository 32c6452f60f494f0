package media

import (
	"encoding/json"
	"testing"
)

func TestFormatSeconds(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.000"},
		{240, "240.000"},
		{90.5, "90.500"},
		{3661.125, "3661.125"},
	}
	for _, tc := range cases {
		if got := formatSeconds(tc.in); got != tc.want {
			t.Errorf("formatSeconds(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestProbeOutputParsing(t *testing.T) {
	raw := `{"format": {"filename": "a.mp3", "duration": "600.123000", "size": "52428800"}}`
	var out probeOutput
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Format.Duration != "600.123000" {
		t.Errorf("duration = %q", out.Format.Duration)
	}
	if out.Format.Size != "52428800" {
		t.Errorf("size = %q", out.Format.Size)
	}
}

func TestNewFFmpegDefaults(t *testing.T) {
	f := NewFFmpeg()
	if f.FFmpegBinary != "ffmpeg" || f.FFprobeBinary != "ffprobe" {
		t.Fatalf("unexpected defaults: %+v", f)
	}
}
