package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/scribe/chunk"
	"github.com/kbukum/scribe/format"
)

func newPlanCommand(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan <source>",
		Short: "Show the chunk plan for a file without extracting anything",
		Long: `Probe a recording and print the chunks a transcription run would cut,
with their start offsets and durations. Nothing is written to disk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(root, args[0])
		},
	}
	return cmd
}

func runPlan(root *rootFlags, source string) error {
	cfg, _, err := loadConfig(root)
	if err != nil {
		return err
	}

	toolkit := newToolkit(cfg)
	src, err := toolkit.Probe(cmdContext(), source)
	if err != nil {
		return err
	}

	plan, err := chunk.PlanChunks(src.Size, src.Duration, cfg.Chunking.SizeLimitBytes(), cfg.Chunking.SafetyMargin)
	if err != nil {
		return err
	}

	fmt.Printf("source:   %s\n", src.Path)
	fmt.Printf("size:     %.1f MB\n", float64(src.Size)/(1024*1024))
	fmt.Printf("duration: %s\n", format.Timestamp(src.Duration))
	if plan.SingleChunk() {
		fmt.Println("fits under the size limit, no chunking needed")
		return nil
	}
	fmt.Printf("chunks:   %d x up to %s\n", len(plan.Specs), format.Timestamp(plan.ChunkDuration))
	if plan.FlooredToMinimum {
		fmt.Println("warning:  chunk duration floored to one minute, chunks may exceed the size limit")
	}
	for _, spec := range plan.Specs {
		fmt.Printf("  %s  %s - %s  (%.0fs)\n",
			chunk.Path(source, spec.Index, ""),
			format.Timestamp(spec.StartOffset),
			format.Timestamp(spec.StartOffset+spec.Duration),
			spec.Duration,
		)
	}
	return nil
}
