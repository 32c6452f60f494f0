package openai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/kbukum/scribe/errors"
	"github.com/kbukum/scribe/transcription"
)

func writeAudioFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meeting.mp3")
	if err := os.WriteFile(path, []byte("fake-mp3-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewProviderMissingCredentials(t *testing.T) {
	t.Setenv(APIKeyEnv, "")

	_, err := NewProvider(Config{})
	if err == nil {
		t.Fatal("expected error without an api key")
	}
	if !errors.HasCode(err, errors.ErrCodeConfiguration) {
		t.Fatalf("expected CONFIGURATION_ERROR, got %v", err)
	}
}

func TestNewProviderKeyFromEnv(t *testing.T) {
	t.Setenv(APIKeyEnv, "sk-test")

	p, err := NewProvider(Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.IsAvailable(context.Background()) {
		t.Error("credentialed provider should be available")
	}
}

func TestTranscribeConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	p, err := NewProvider(Config{APIKey: "sk-test", BaseURL: baseURL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = p.Transcribe(context.Background(), transcription.TranscriptionRequest{AudioPath: writeAudioFixture(t)})
	if err == nil {
		t.Fatal("expected error against a closed server")
	}
	if !errors.HasCode(err, errors.ErrCodeConnectionFailed) {
		t.Fatalf("expected CONNECTION_FAILED, got %v", err)
	}
}
