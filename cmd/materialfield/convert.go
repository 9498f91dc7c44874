package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/materialfield/internal/config"
)

type convertOptions struct {
	output string
	format string
}

func newConvertCmd() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <field.yaml|field.toml>",
		Short: "Validate a field document and rewrite it as YAML or TOML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := config.ParseFile(args[0])
			if err != nil {
				return newCommandError("convert", "loading "+args[0], err, "Fix the field document and try again.")
			}

			format, err := opts.targetFormat(args[0])
			if err != nil {
				return err
			}
			data, err := config.Encode(doc, format)
			if err != nil {
				return fmt.Errorf("encode %s: %w", format, err)
			}

			if opts.output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(opts.output, data, 0o644); err != nil {
				return newCommandError("convert", "writing "+opts.output, err, "Check the output directory exists and is writable.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().StringVar(&opts.format, "to", "", "Output format: yaml or toml (default from --output, else the other format)")

	return cmd
}

// targetFormat picks --to, then the output extension, then whichever format
// the input is not in.
func (o *convertOptions) targetFormat(input string) (config.Format, error) {
	switch o.format {
	case string(config.FormatYAML):
		return config.FormatYAML, nil
	case string(config.FormatTOML):
		return config.FormatTOML, nil
	case "":
	default:
		return "", fmt.Errorf("unknown format %q, want yaml or toml", o.format)
	}
	if o.output != "" {
		return config.FormatFor(o.output), nil
	}
	if config.FormatFor(input) == config.FormatTOML {
		return config.FormatYAML, nil
	}
	return config.FormatTOML, nil
}
