package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kbukum/scribe/config"
	"github.com/kbukum/scribe/logger"
	"github.com/kbukum/scribe/version"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configFile string
	envFile    string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "scribe",
		Short: "Batch speech-to-text with chunking, resumption and speaker labels",
		Long: `Scribe transcribes long recordings through size-limited transcription
services. Sources too large for one request are cut into minute-aligned
chunks, transcribed sequentially, and reassembled into a single transcript
in the recording's own time domain. Speaker diarization, when enabled,
annotates the result without ever failing it.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "path to scribe.yml")
	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "path to .env file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")

	cmd.AddCommand(newTranscribeCommand(flags))
	cmd.AddCommand(newPlanCommand(flags))
	cmd.AddCommand(newSpeakersCommand(flags))

	return cmd
}

// loadConfig loads configuration honoring the root flags and installs the
// global logger.
func loadConfig(flags *rootFlags) (*config.Config, *logger.Logger, error) {
	var opts []config.LoaderOption
	if flags.configFile != "" {
		opts = append(opts, config.WithConfigFile(flags.configFile))
	}
	if flags.envFile != "" {
		opts = append(opts, config.WithEnvFile(flags.envFile))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return nil, nil, err
	}
	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
	}

	log := logger.New(&cfg.Logging, "scribe")
	logger.SetGlobalLogger(log)
	return cfg, log, nil
}

// cmdContext returns a context cancelled on SIGINT or SIGTERM so a run stops
// between chunks instead of being killed mid-write.
func cmdContext() context.Context {
	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	return ctx
}

func execute() error {
	return newRootCommand().Execute()
}
