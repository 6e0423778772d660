// Package commands implements the system-info inspection commands.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tidwall/jsonc"
	"github.com/ubuntu/decorate"

	"github.com/GPUOpen-Tools/system-info-utils/common/cli"
	"github.com/GPUOpen-Tools/system-info-utils/internal/constants"
)

// App represents the application.
type App struct {
	cmd   *cobra.Command
	viper *viper.Viper

	config appConfig
}

// appConfig holds the configuration for the application.
type appConfig struct {
	Verbosity int
	JSONLogs  bool
}

// New registers the commands and returns a new App.
func New() (*App, error) {
	a := App{}

	a.cmd = &cobra.Command{
		Use:   constants.CmdName + " COMMAND",
		Short: "Inspect captured system info and driver overrides documents",
		Long: `Inspect captured system info and driver overrides documents.

Decodes the versioned system info JSON produced by capture tooling into
its typed record, unwraps document envelopes, and filters driver
overrides documents down to user modified settings.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Command parsing has been successful. Returns to not print usage anymore.
			a.cmd.SilenceUsage = true

			cli.SetSlog(a.config.Verbosity, a.config.JSONLogs)
			if err := cli.InitViperConfig(constants.CmdName, a.cmd, a.viper); err != nil {
				return err
			}
			if err := a.viper.Unmarshal(&a.config); err != nil {
				return fmt.Errorf("unable to strictly decode configuration into struct: %w", err)
			}

			cli.SetSlog(a.config.Verbosity, a.config.JSONLogs)
			return nil
		},
	}
	a.viper = viper.New()
	a.cmd.CompletionOptions.HiddenDefaultCmd = true

	a.cmd.PersistentFlags().CountVarP(&a.config.Verbosity, "verbose", "v", "issue INFO (-v), DEBUG (-vv)")
	a.cmd.PersistentFlags().BoolVar(&a.config.JSONLogs, "json-logs", false, "emit logs as JSON")
	cli.InstallConfigFlag(a.cmd)

	if err := a.viper.BindPFlags(a.cmd.PersistentFlags()); err != nil {
		return nil, err
	}

	installShowCmd(&a)
	installNormalizeCmd(&a)
	installOverridesCmd(&a)
	a.installVersion()

	return &a, nil
}

// Run executes the command and associated process, returning an error if any.
func (a *App) Run() error {
	return a.cmd.Execute()
}

// UsageError returns if the error is a command parsing or usage error.
func (a App) UsageError() bool {
	return !a.cmd.SilenceUsage
}

// RootCmd returns a copy of the root command.
func (a App) RootCmd() cobra.Command {
	return *a.cmd
}

// loadDocument reads a JSON document from disk. Captures get hand
// annotated during triage, so commented JSON is accepted.
func loadDocument(path string) (text string, err error) {
	defer decorate.OnError(&err, "could not load document %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(jsonc.ToJSON(data)), nil
}
