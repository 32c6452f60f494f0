package config

import (
	"time"

	"github.com/kbukum/scribe/chunk"
	"github.com/kbukum/scribe/errors"
	"github.com/kbukum/scribe/logger"
	"github.com/kbukum/scribe/validation"
)

// Config is scribe's top-level configuration.
type Config struct {
	Logging       logger.Config       `yaml:"logging" mapstructure:"logging"`
	Media         MediaConfig         `yaml:"media" mapstructure:"media"`
	Chunking      ChunkingConfig      `yaml:"chunking" mapstructure:"chunking"`
	Transcription TranscriptionConfig `yaml:"transcription" mapstructure:"transcription"`
	Diarization   DiarizationConfig   `yaml:"diarization" mapstructure:"diarization"`
	Output        OutputConfig        `yaml:"output" mapstructure:"output"`
}

// MediaConfig names the external media toolkit binaries.
type MediaConfig struct {
	FFmpegBinary  string `yaml:"ffmpeg_binary" mapstructure:"ffmpeg_binary"`
	FFprobeBinary string `yaml:"ffprobe_binary" mapstructure:"ffprobe_binary"`
}

// ChunkingConfig controls how large sources are split.
type ChunkingConfig struct {
	// SizeLimitMB is the per-request upload limit imposed by the
	// transcription service.
	SizeLimitMB float64 `yaml:"size_limit_mb" mapstructure:"size_limit_mb" validate:"gt=0"`
	// SafetyMargin shrinks planned chunk sizes below the limit to absorb
	// bytes-per-second estimation error.
	SafetyMargin float64 `yaml:"safety_margin" mapstructure:"safety_margin" validate:"gt=0,lte=1"`
	// Dir is where chunk files are written. Empty means next to the source.
	Dir string `yaml:"dir" mapstructure:"dir"`
	// KeepChunks leaves chunk files on disk after a successful run.
	KeepChunks bool `yaml:"keep_chunks" mapstructure:"keep_chunks"`
}

// TranscriptionConfig selects and configures the transcription backend.
type TranscriptionConfig struct {
	Provider string        `yaml:"provider" mapstructure:"provider" validate:"oneof=whisper openai"`
	Language string        `yaml:"language" mapstructure:"language"`
	Model    string        `yaml:"model" mapstructure:"model"`
	URL      string        `yaml:"url" mapstructure:"url"`
	APIKey   string        `yaml:"api_key" mapstructure:"api_key"`
	Timeout  time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// DiarizationConfig selects and configures the diarization backend.
type DiarizationConfig struct {
	Enabled     bool          `yaml:"enabled" mapstructure:"enabled"`
	Provider    string        `yaml:"provider" mapstructure:"provider" validate:"oneof=pyannote"`
	URL         string        `yaml:"url" mapstructure:"url"`
	Timeout     time.Duration `yaml:"timeout" mapstructure:"timeout"`
	NumSpeakers int           `yaml:"num_speakers" mapstructure:"num_speakers" validate:"gte=0"`
	MinSpeakers int           `yaml:"min_speakers" mapstructure:"min_speakers" validate:"gte=0"`
	MaxSpeakers int           `yaml:"max_speakers" mapstructure:"max_speakers" validate:"gte=0"`
}

// OutputConfig controls transcript rendering.
type OutputConfig struct {
	// Format is "text" or "srt".
	Format string `yaml:"format" mapstructure:"format" validate:"oneof=text srt"`
	// Dir is where transcripts are written. Empty means next to the source.
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// SizeLimitBytes returns the chunking size limit in bytes.
func (c ChunkingConfig) SizeLimitBytes() int64 {
	return int64(c.SizeLimitMB * 1024 * 1024)
}

// ApplyDefaults fills unset fields with working defaults.
func (c *Config) ApplyDefaults() {
	c.Logging.ApplyDefaults()
	if c.Media.FFmpegBinary == "" {
		c.Media.FFmpegBinary = "ffmpeg"
	}
	if c.Media.FFprobeBinary == "" {
		c.Media.FFprobeBinary = "ffprobe"
	}
	if c.Chunking.SizeLimitMB == 0 {
		c.Chunking.SizeLimitMB = 25
	}
	if c.Chunking.SafetyMargin == 0 {
		c.Chunking.SafetyMargin = chunk.DefaultSafetyMargin
	}
	if c.Transcription.Provider == "" {
		c.Transcription.Provider = "whisper"
	}
	if c.Diarization.Provider == "" {
		c.Diarization.Provider = "pyannote"
	}
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
}

// Validate checks the configuration, returning a configuration error naming
// the offending fields.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return errors.Configuration(err.Error())
	}
	if err := validation.Validate(c); err != nil {
		return err
	}
	if c.Diarization.MinSpeakers > 0 && c.Diarization.MaxSpeakers > 0 &&
		c.Diarization.MinSpeakers > c.Diarization.MaxSpeakers {
		return errors.Configuration("diarization.min_speakers exceeds diarization.max_speakers")
	}
	return nil
}
