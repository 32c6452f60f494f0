package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbukum/scribe/diarization"
	"github.com/kbukum/scribe/format"
	"github.com/kbukum/scribe/transcript"
)

func newSpeakersCommand(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "speakers",
		Short: "Review and relabel speakers in an emitted transcript",
	}
	cmd.AddCommand(newSpeakersListCommand(root))
	cmd.AddCommand(newSpeakersApplyCommand(root))
	return cmd
}

func newSpeakersListCommand(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list <transcript>",
		Short: "List speaker labels present in a transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			segments, err := readTranscript(args[0])
			if err != nil {
				return err
			}
			speakers := transcript.Speakers(segments)
			if len(speakers) == 0 {
				fmt.Println("no speaker labels")
				return nil
			}
			for _, s := range speakers {
				fmt.Println(s)
			}
			return nil
		},
	}
}

func newSpeakersApplyCommand(root *rootFlags) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "apply <transcript> <command>...",
		Short: "Apply rename/merge commands to a transcript",
		Long: `Rewrite speaker labels in a previously emitted transcript without
recomputing transcription or diarization.

Commands:
  "rename OLD NEW"
  "merge A B ... into TARGET"

Applying the same command twice is a no-op, so edits are safe to re-run.

Example:
  scribe speakers apply meeting.txt "rename SPEAKER_00 Alice" "merge SPEAKER_01 SPEAKER_02 into Bob"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpeakersApply(args[0], args[1:], outPath)
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default: rewrite in place, '-' for stdout)")
	return cmd
}

func runSpeakersApply(path string, commandLines []string, outPath string) error {
	segments, err := readTranscript(path)
	if err != nil {
		return err
	}

	m := diarization.SpeakerMap{}
	for _, line := range commandLines {
		cmd, err := diarization.ParseCommand(line)
		if err != nil {
			return err
		}
		m, err = diarization.ApplyCommand(m, cmd)
		if err != nil {
			return err
		}
	}
	m.Apply(segments)

	rendered := format.Render(segments)
	if outPath == "-" {
		fmt.Print(rendered)
		return nil
	}
	if outPath == "" {
		outPath = path
	}
	if err := os.WriteFile(outPath, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	fmt.Printf("transcript written to %s\n", outPath)
	return nil
}

func readTranscript(path string) ([]transcript.Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()
	return format.Parse(f)
}
