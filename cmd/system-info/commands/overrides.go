package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GPUOpen-Tools/system-info-utils/driveroverrides"
)

func installOverridesCmd(app *App) {
	chunkVersion := driveroverrides.ChunkVersionMax

	overridesCmd := &cobra.Command{
		Use:   "overrides FILE",
		Short: "Filter a driver overrides document down to user modified settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			filtered, ok := driveroverrides.Decode(text, chunkVersion)
			if !ok {
				return fmt.Errorf("%s does not contain decodable driver overrides for chunk version %d", args[0], chunkVersion)
			}

			fmt.Fprintln(cmd.OutOrStdout(), filtered)
			return nil
		},
	}

	overridesCmd.Flags().Uint32Var(&chunkVersion, "chunk-version", chunkVersion, "declared chunk version of the document")

	app.cmd.AddCommand(overridesCmd)
}
