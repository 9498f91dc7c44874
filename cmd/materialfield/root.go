package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/materialfield/internal/logger"
)

type rootFlags struct {
	logLevel string
	logJSON  bool
	logFile  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "materialfield",
		Short:         "Floating label, validation and counter decorations for a text field",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.logJSON, "log-json", false, "Write logs as JSON")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Append logs to this file instead of stderr")

	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newInspectCmd(flags))
	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger builds the command's logger. The returned closer releases the log
// file, if any.
func (f *rootFlags) newLogger(fallback io.Writer) (*logger.Logger, func() error, error) {
	writer := fallback
	closer := func() error { return nil }
	if f.logFile != "" {
		file, err := os.OpenFile(f.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		writer = file
		closer = file.Close
	}
	if writer == nil {
		return logger.Nop(), closer, nil
	}

	log, err := logger.New(logger.Options{Level: f.logLevel, HumanReadable: !f.logJSON, Writer: writer})
	if err != nil {
		_ = closer()
		return nil, nil, err
	}
	return log, closer, nil
}
