package commands

import "io"

// SetArgs sets the arguments of the root command, for tests.
func (a *App) SetArgs(args ...string) {
	a.cmd.SetArgs(args)
}

// SetOut redirects the root command's output, for tests.
func (a *App) SetOut(w io.Writer) {
	a.cmd.SetOut(w)
}
