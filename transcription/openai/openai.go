// Package openai implements transcription.Provider against the OpenAI
// Whisper API. Verbose-JSON output is requested so segment timings survive.
package openai

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"os"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/kbukum/scribe/errors"
	"github.com/kbukum/scribe/provider"
	"github.com/kbukum/scribe/transcription"
)

const (
	// ProviderName is the registered name for the OpenAI provider.
	ProviderName = "openai"

	// APIKeyEnv is the environment variable holding the API key.
	APIKeyEnv = "OPENAI_API_KEY"

	defaultModel = goopenai.Whisper1
)

// Config holds configuration for the OpenAI transcription provider.
type Config struct {
	APIKey   string `json:"api_key" yaml:"api_key" mapstructure:"api_key"`
	Model    string `json:"model" yaml:"model" mapstructure:"model"`
	Language string `json:"language,omitempty" yaml:"language" mapstructure:"language"`
	BaseURL  string `json:"base_url,omitempty" yaml:"base_url" mapstructure:"base_url"`
}

// Provider implements transcription.Provider using the OpenAI API.
type Provider struct {
	cfg    Config
	client *goopenai.Client
}

// NewProvider creates a new OpenAI transcription provider. A missing API key
// is a configuration error at construction time, not a runtime one.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv(APIKeyEnv)
	}
	if cfg.APIKey == "" {
		return nil, errors.MissingCredentials(ProviderName, APIKeyEnv)
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}

	clientCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &Provider{
		cfg:    cfg,
		client: goopenai.NewClientWithConfig(clientCfg),
	}, nil
}

// Factory returns a provider.Factory that creates OpenAI Provider instances
// from a generic config map.
func Factory() provider.Factory[transcription.Provider] {
	return func(cfg map[string]any) (transcription.Provider, error) {
		oc := Config{}
		if v, ok := cfg["api_key"].(string); ok {
			oc.APIKey = v
		}
		if v, ok := cfg["model"].(string); ok {
			oc.Model = v
		}
		if v, ok := cfg["language"].(string); ok {
			oc.Language = v
		}
		if v, ok := cfg["base_url"].(string); ok {
			oc.BaseURL = v
		}
		return NewProvider(oc)
	}
}

// Name returns the provider name.
func (p *Provider) Name() string { return ProviderName }

// IsAvailable reports whether the provider is configured. The API has no
// cheap health endpoint, so availability means a credentialed client.
func (p *Provider) IsAvailable(_ context.Context) bool {
	return p.client != nil
}

// Transcribe sends an audio file to the OpenAI API and returns the
// transcription with segment timings.
func (p *Provider) Transcribe(ctx context.Context, req transcription.TranscriptionRequest) (*transcription.TranscriptionResponse, error) {
	model := p.cfg.Model
	if req.Model != "" {
		model = req.Model
	}
	lang := p.cfg.Language
	if req.Language != "" {
		lang = req.Language
	}

	resp, err := p.client.CreateTranscription(ctx, goopenai.AudioRequest{
		Model:    model,
		FilePath: req.AudioPath,
		Language: lang,
		Format:   goopenai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		var urlErr *url.Error
		if stderrors.As(err, &urlErr) {
			return nil, errors.Transport(errors.StageTranscription, ProviderName, err)
		}
		return nil, fmt.Errorf("openai transcription: %w", err)
	}

	out := &transcription.TranscriptionResponse{
		Text:     resp.Text,
		Duration: resp.Duration,
		Language: resp.Language,
	}
	for _, seg := range resp.Segments {
		out.Segments = append(out.Segments, transcription.Segment{
			Start: seg.Start,
			End:   seg.End,
			Text:  seg.Text,
		})
	}
	return transcription.Normalize(out)
}
