package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbukum/scribe/config"
	"github.com/kbukum/scribe/diarization"
	"github.com/kbukum/scribe/errors"
	"github.com/kbukum/scribe/diarization/pyannote"
	"github.com/kbukum/scribe/format"
	"github.com/kbukum/scribe/logger"
	"github.com/kbukum/scribe/media"
	"github.com/kbukum/scribe/pipeline"
	"github.com/kbukum/scribe/transcription"
	"github.com/kbukum/scribe/transcription/openai"
	"github.com/kbukum/scribe/transcription/whisper"
	"github.com/kbukum/scribe/util"
)

type transcribeFlags struct {
	resume     bool
	force      bool
	keepChunks bool
	diarize    bool
	noDiarize  bool
	language   string
	model      string
	outFormat  string
	outPath    string
	chunkDir   string
	sizeLimit  string
}

func newTranscribeCommand(root *rootFlags) *cobra.Command {
	flags := &transcribeFlags{}
	cmd := &cobra.Command{
		Use:   "transcribe <source>",
		Short: "Transcribe an audio or video file",
		Long: `Transcribe a recording, splitting it into chunks when it exceeds the
transcription service's upload limit. Chunks are transcribed in order and
reassembled into one transcript with absolute timestamps.

An interrupted run leaves its chunk files behind; --resume picks them up
instead of cutting again.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranscribe(root, flags, args[0])
		},
	}

	cmd.Flags().BoolVar(&flags.resume, "resume", false, "reuse chunk files from an earlier run")
	cmd.Flags().BoolVar(&flags.force, "force", false, "re-extract chunks even if files exist")
	cmd.Flags().BoolVar(&flags.keepChunks, "keep-chunks", false, "leave chunk files on disk")
	cmd.Flags().BoolVar(&flags.diarize, "diarize", false, "enable speaker labeling")
	cmd.Flags().BoolVar(&flags.noDiarize, "no-diarize", false, "disable speaker labeling")
	cmd.Flags().StringVar(&flags.language, "language", "", "audio language hint (e.g. en)")
	cmd.Flags().StringVar(&flags.model, "model", "", "transcription model override")
	cmd.Flags().StringVar(&flags.outFormat, "format", "", "output format: text | srt")
	cmd.Flags().StringVarP(&flags.outPath, "output", "o", "", "output file ('-' for stdout)")
	cmd.Flags().StringVar(&flags.chunkDir, "chunk-dir", "", "directory for chunk files")
	cmd.Flags().StringVar(&flags.sizeLimit, "size-limit", "", "per-request upload limit (e.g. 25MB)")

	return cmd
}

func runTranscribe(root *rootFlags, flags *transcribeFlags, source string) error {
	cfg, log, err := loadConfig(root)
	if err != nil {
		return err
	}

	ctx := cmdContext()
	toolkit := newToolkit(cfg)
	transcriber, err := newTranscriber(cfg, log)
	if err != nil {
		return err
	}
	if !transcriber.IsAvailable(ctx) {
		return errors.ProviderUnavailable(errors.StageTranscription, transcriber.Name())
	}

	diarize := cfg.Diarization.Enabled
	if flags.diarize {
		diarize = true
	}
	if flags.noDiarize {
		diarize = false
	}
	var diarizer diarization.Provider
	if diarize {
		diarizer, err = newDiarizer(cfg)
		if err != nil {
			return err
		}
	}

	language := util.Coalesce(flags.language, cfg.Transcription.Language)
	model := util.Coalesce(flags.model, cfg.Transcription.Model)
	sizeLimit := util.ParseSize(flags.sizeLimit, cfg.Chunking.SizeLimitBytes())

	runner := &pipeline.Runner{
		Media:       toolkit,
		Transcriber: transcriber,
		Diarizer:    diarizer,
		Log:         log,
	}
	summary, err := runner.Run(ctx, pipeline.Options{
		Source:       source,
		SizeLimit:    sizeLimit,
		SafetyMargin: cfg.Chunking.SafetyMargin,
		ChunkDir:     util.Coalesce(flags.chunkDir, cfg.Chunking.Dir),
		Resume:       flags.resume,
		Force:        flags.force,
		KeepChunks:   flags.keepChunks || cfg.Chunking.KeepChunks,
		Language:     language,
		Model:        model,
		Diarize:      diarize,
		DiarizationRequest: diarization.DiarizationRequest{
			NumSpeakers: cfg.Diarization.NumSpeakers,
			MinSpeakers: cfg.Diarization.MinSpeakers,
			MaxSpeakers: cfg.Diarization.MaxSpeakers,
			Language:    language,
		},
	})
	if err != nil {
		return err
	}

	outFormat := util.Coalesce(flags.outFormat, cfg.Output.Format)
	var rendered string
	switch outFormat {
	case "srt":
		rendered = format.RenderSRT(summary.Segments)
	default:
		rendered = format.Render(summary.Segments)
	}

	outPath := flags.outPath
	if outPath == "" {
		outPath = defaultOutputPath(source, cfg.Output.Dir, outFormat)
	}
	if outPath == "-" {
		fmt.Print(rendered)
	} else {
		if err := os.WriteFile(outPath, []byte(rendered), 0o644); err != nil {
			return fmt.Errorf("write transcript: %w", err)
		}
		fmt.Printf("transcript written to %s\n", outPath)
	}

	if summary.DiarizationErr != nil {
		fmt.Fprintln(os.Stderr, "speaker labeling unavailable:", summary.DiarizationErr)
	}
	if msg := summary.FailureSummary(); msg != "" {
		return &partialFailureError{message: msg}
	}
	return nil
}

func newToolkit(cfg *config.Config) media.Toolkit {
	return &media.FFmpeg{
		FFmpegBinary:  cfg.Media.FFmpegBinary,
		FFprobeBinary: cfg.Media.FFprobeBinary,
	}
}

func newTranscriber(cfg *config.Config, log *logger.Logger) (transcription.Provider, error) {
	if cfg.Transcription.APIKey != "" {
		log.Debug("using configured api key", logger.Fields(
			logger.FieldProvider, cfg.Transcription.Provider,
			"api_key", util.MaskSecret(cfg.Transcription.APIKey, 5),
		))
	}
	reg := transcription.NewRegistry()
	reg.RegisterFactory(whisper.ProviderName, whisper.Factory())
	reg.RegisterFactory(openai.ProviderName, openai.Factory())
	return reg.Create(cfg.Transcription.Provider, map[string]any{
		"url":      cfg.Transcription.URL,
		"model":    cfg.Transcription.Model,
		"language": cfg.Transcription.Language,
		"timeout":  cfg.Transcription.Timeout,
		"api_key":  cfg.Transcription.APIKey,
	})
}

func newDiarizer(cfg *config.Config) (diarization.Provider, error) {
	reg := diarization.NewRegistry()
	reg.RegisterFactory(pyannote.ProviderName, pyannote.Factory())
	return reg.Create(cfg.Diarization.Provider, map[string]any{
		"url":     cfg.Diarization.URL,
		"timeout": cfg.Diarization.Timeout,
	})
}

func defaultOutputPath(source, dir, outFormat string) string {
	stem := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	ext := ".txt"
	if outFormat == "srt" {
		ext = ".srt"
	}
	if dir == "" {
		dir = filepath.Dir(source)
	}
	return filepath.Join(dir, stem+ext)
}

