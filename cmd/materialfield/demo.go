package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/materialfield/internal/tui"
)

func newDemoCmd(flags *rootFlags) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "demo <field.yaml>",
		Short: "Edit a field interactively in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return newCommandError("start demo", "checking the terminal", errors.New("stdout is not a terminal"), "Run the demo from an interactive terminal, or use 'materialfield inspect'.")
			}

			field, err := loadField(args[0])
			if err != nil {
				return newCommandError("start demo", "loading "+args[0], err, "Fix the field document and try again.")
			}

			// Logs would scribble over the UI, so they only go to --log-file.
			log, closeLog, err := flags.newLogger(nil)
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			if width <= 0 {
				width = field.doc.Field.Width
			}
			model := tui.NewModel(tui.Options{
				Title:       field.doc.Name,
				Config:      field.cfg,
				Validators:  field.validators,
				LeftIcon:    field.left,
				RightIcon:   field.right,
				ClearIcon:   field.clear,
				HelperText:  field.doc.Field.HelperText,
				InitialText: field.doc.Field.Text,
				Error:       field.doc.Field.Error,
				Focused:     field.doc.Field.Focused,
				Disabled:    field.doc.Field.Disabled,
				Width:       width,
				Logger:      log.ForField(field.doc.Name),
			})

			log.WithFields(map[string]any{"document": args[0]}).Info("demo started")
			_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
			return err
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "Field width in cells (default from the document, else 48)")

	return cmd
}
