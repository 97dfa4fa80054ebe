package config

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/konceptosociala/hexcrypt/pkg/app"
	"github.com/konceptosociala/hexcrypt/pkg/config"
	"github.com/konceptosociala/hexcrypt/pkg/hexcrypt"
)

// NewCommand returns the "hexcrypt config" command with subcommands.
func NewCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Handle hexcrypt configuration",
	}

	cmd.AddCommand(
		newGetFormatCommand(a),
		newSetFormatCommand(a),
		newSelectFormatCommand(a),
		newGetPresetsCommand(a),
		newAddPresetCommand(a),
		newRemovePresetCommand(a),
	)

	return cmd
}

func newGetFormatCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "get-format",
		Short: "Displays the default output image format",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.OutWriter, a.Cfg.Format())
		},
	}
}

func newSetFormatCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:       "set-format [FORMAT]",
		Short:     "Sets the default output image format in the configuration",
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.ValidFormats,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := args[0]
			if err := a.Cfg.SetOutputFormat(format); err != nil {
				return err
			}
			fmt.Fprintf(a.OutWriter, "Switched to format \"%v\".\n", format)
			return nil
		},
	}
}

func newSelectFormatCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "select-format",
		Short: "Interactively select the default output image format",
		RunE: func(cmd *cobra.Command, args []string) error {
			pos := 0
			for k, format := range config.ValidFormats {
				if format == a.Cfg.Format() {
					pos = k
				}
			}

			searcher := func(input string, index int) bool {
				format := config.ValidFormats[index]
				input = strings.TrimSpace(strings.ToLower(input))
				return strings.Contains(format, input)
			}

			p := promptui.Select{
				Label:     "Select format",
				Items:     config.ValidFormats,
				Searcher:  searcher,
				Size:      len(config.ValidFormats),
				CursorPos: pos,
			}

			_, selected, err := p.Run()
			if err != nil {
				// User cancelled (e.g. Ctrl-C). Not an error.
				return nil
			}

			if err := a.Cfg.SetOutputFormat(selected); err != nil {
				return err
			}
			fmt.Fprintf(a.OutWriter, "Switched to format \"%v\".\n", selected)
			return nil
		},
	}
}

func newGetPresetsCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get-presets",
		Short: "Display size presets in the configuration file",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if !a.NoHeaderFlag {
				fmt.Fprintln(a.OutWriter, "NAME\tSIZE")
			}
			for _, preset := range a.Cfg.Presets {
				fmt.Fprintf(a.OutWriter, "%s\t%s\n", preset.Name, preset.Size)
			}
		},
	}
	a.AddNoHeadersFlag(cmd)
	return cmd
}

func newAddPresetCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:     "add-preset [NAME] [SIZE]",
		Example: "hexcrypt config add-preset icon 32x32",
		Short:   "Add size preset",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, size := args[0], args[1]
			if a.Cfg.HasPreset(name) {
				return fmt.Errorf("could not add preset: preset with name '%v' exists already", name)
			}
			if _, err := hexcrypt.ParseSize(size); err != nil {
				return err
			}

			a.Cfg.Presets = append(a.Cfg.Presets, &config.Preset{
				Name: name,
				Size: size,
			})
			if err := a.Cfg.Write(); err != nil {
				return fmt.Errorf("unable to write config: %w", err)
			}
			fmt.Fprintln(a.OutWriter, "Added preset.")
			return nil
		},
	}
}

func newRemovePresetCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:               "remove-preset [NAME]",
		Short:             "remove preset",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.ValidPresetArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			pos := -1
			for i, preset := range a.Cfg.Presets {
				if preset.Name == name {
					pos = i
					break
				}
			}

			if pos == -1 {
				return fmt.Errorf("could not delete preset: preset with name '%v' does not exist", name)
			}

			a.Cfg.Presets = append(a.Cfg.Presets[:pos], a.Cfg.Presets[pos+1:]...)

			if err := a.Cfg.Write(); err != nil {
				return fmt.Errorf("unable to write config: %w", err)
			}
			fmt.Fprintln(a.OutWriter, "Removed preset.")
			return nil
		},
	}
}
