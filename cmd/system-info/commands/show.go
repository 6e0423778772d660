package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GPUOpen-Tools/system-info-utils/sysinfo"
)

func installShowCmd(app *App) {
	showCmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Decode a system info document and print the typed record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			info, ok := sysinfo.Decode(text)
			if !ok {
				return fmt.Errorf("%s does not contain decodable system info", args[0])
			}

			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("could not render system info: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	app.cmd.AddCommand(showCmd)
}

func installNormalizeCmd(app *App) {
	normalizeCmd := &cobra.Command{
		Use:   "normalize FILE",
		Short: "Unwrap a system info document's envelope and print the payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			payload := sysinfo.Normalize(text)
			if payload == "" {
				return fmt.Errorf("%s is not a valid system info document", args[0])
			}

			fmt.Fprintln(cmd.OutOrStdout(), payload)
			return nil
		},
	}

	app.cmd.AddCommand(normalizeCmd)
}
