// Package main is the entry point for the system-info inspection tool.
package main

import (
	"log/slog"
	"os"

	"github.com/GPUOpen-Tools/system-info-utils/cmd/system-info/commands"
)

func main() {
	a, err := commands.New()
	if err != nil {
		os.Exit(1)
	}

	os.Exit(run(a))
}

type app interface {
	Run() error
	UsageError() bool
}

func run(a app) int {
	if err := a.Run(); err != nil {
		slog.Error(err.Error())

		if a.UsageError() {
			return 2
		}
		return 1
	}

	return 0
}
