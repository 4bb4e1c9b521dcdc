package main

import (
	"os"

	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/cmd/sensor-extractor/commands"
	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/ui"
)

func main() {
	if err := commands.Execute(); err != nil {
		ui.NewConsole().Error("%v", err)
		os.Exit(1)
	}
}
