package main

import (
	"os"

	"github.com/IsraelAraujo70/acpcore/internal/cliapp"
)

var version = "dev"

func main() {
	root := cliapp.NewRootCmd(version)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
