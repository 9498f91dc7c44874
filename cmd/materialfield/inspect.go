package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/materialfield/internal/engine"
	"github.com/alexisbeaulieu97/materialfield/internal/logger"
	"github.com/alexisbeaulieu97/materialfield/internal/measure"
	"github.com/alexisbeaulieu97/materialfield/internal/tui"
	"github.com/alexisbeaulieu97/materialfield/internal/tween"
	"github.com/alexisbeaulieu97/materialfield/pkg/diff"
)

const (
	defaultInspectWidth = 320
	maxFrames           = 1000
)

type inspectOptions struct {
	width      int
	height     int
	advance    int
	lineHeight float64
	cells      bool
	trace      bool
	unified    bool
	frame      time.Duration
}

func newInspectCmd(flags *rootFlags) *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <field.yaml>",
		Short: "Print the settled snapshot of a field as YAML",
		Long: `Build the field described by the document, apply its initial state,
run every animation to completion and print the frame the renderer would draw.
With --trace, print how the snapshot changes from frame to frame instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closeLog, err := flags.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()
			return runInspect(cmd.OutOrStdout(), args[0], opts, log)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 0, "Field width (default from the document, else 320)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Field height (default from the document, else fitted to the padding)")
	cmd.Flags().IntVar(&opts.advance, "advance", 7, "Width of one character for measurement")
	cmd.Flags().Float64Var(&opts.lineHeight, "line-height", 16, "Height of one line of bottom text")
	cmd.Flags().BoolVar(&opts.cells, "cells", false, "Measure in terminal cells, as the demo does")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "Print the per-frame snapshot diffs")
	cmd.Flags().BoolVar(&opts.unified, "unified", false, "With --trace, print full unified diffs instead of the changed lines")
	cmd.Flags().DurationVar(&opts.frame, "frame", 16*time.Millisecond, "Frame interval used to run animations")

	return cmd
}

func runInspect(out io.Writer, path string, opts *inspectOptions, log *logger.Logger) error {
	field, err := loadField(path)
	if err != nil {
		return newCommandError("inspect", "loading "+path, err, "Fix the field document and try again.")
	}
	if opts.frame <= 0 {
		return newCommandError("inspect", "checking flags", fmt.Errorf("frame interval must be positive, got %s", opts.frame), "Pass a positive --frame such as 16ms.")
	}

	cfg := field.cfg
	var measurer measure.Measurer = measure.Monospace{Advance: opts.advance, Height: opts.lineHeight}
	if opts.cells {
		cfg = tui.CellConfig(cfg)
		measurer = measure.Terminal{}
	}

	scheduler := tween.NewScheduler()
	e := engine.New(cfg,
		engine.WithDriver(scheduler),
		engine.WithMeasurer(measurer),
		engine.WithLogger(log.ForField(field.doc.Name)),
		engine.WithHelperText(field.doc.Field.HelperText),
	)
	for _, v := range field.validators {
		e.AddValidator(v)
	}
	e.SetIconLeft(field.left)
	e.SetIconRight(field.right)
	e.SetClearButtonIcon(field.clear)

	width := firstPositive(opts.width, field.doc.Field.Width, defaultInspectWidth)
	height := firstPositive(opts.height, field.doc.Field.Height)
	e.SetSize(width, max(height, fittedHeight(e, measurer)))
	e.Attach()

	e.SetInitialText(field.doc.Field.Text)
	if field.doc.Field.Focused {
		e.SetFocus(true)
	}
	if field.doc.Field.Disabled {
		e.SetEnabled(false)
	}
	e.SetError(field.doc.Field.Error)

	if opts.trace {
		if err := traceFrames(out, e, scheduler, opts, height, measurer); err != nil {
			return err
		}
	} else {
		frames := scheduler.Settle(opts.frame, maxFrames)
		if height == 0 {
			e.SetSize(width, fittedHeight(e, measurer))
		}
		log.WithFields(map[string]any{"frames": frames}).Debug("animations settled")
	}

	data, err := yaml.Marshal(e.Snapshot())
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = out.Write(data)
	return err
}

// traceFrames writes what changed in every frame against the previous one,
// then the separator before the final snapshot.
func traceFrames(out io.Writer, e *engine.Engine, scheduler *tween.Scheduler, opts *inspectOptions, height int, measurer measure.Measurer) error {
	prev, err := yaml.Marshal(e.Snapshot())
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	for i := 1; scheduler.Active() && i <= maxFrames; i++ {
		scheduler.Advance(opts.frame)
		if height == 0 {
			e.SetSize(e.State().Width, fittedHeight(e, measurer))
		}
		cur, err := yaml.Marshal(e.Snapshot())
		if err != nil {
			return fmt.Errorf("encode snapshot: %w", err)
		}
		if opts.unified {
			if changes := diff.GenerateUnifiedDiff(prev, cur, fmt.Sprintf("frame %d", i-1), fmt.Sprintf("frame %d", i)); changes != "" {
				fmt.Fprintf(out, "%s\n", changes)
			}
		} else if lines := diff.ChangedLines(prev, cur); len(lines) > 0 {
			fmt.Fprintf(out, "# frame %d\n", i)
			for _, line := range lines {
				fmt.Fprintln(out, line)
			}
		}
		prev = cur
	}
	fmt.Fprintln(out, "---")
	return nil
}

// fittedHeight is the height that leaves exactly one line for the text.
func fittedHeight(e *engine.Engine, m measure.Measurer) int {
	applied := e.AppliedPadding()
	return applied.Top + applied.Bottom + int(m.LineHeight(e.Config().BottomTextSize)+0.5)
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
