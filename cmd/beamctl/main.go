package main

import (
	"os"

	"github.com/beamctl/beamctl/cmd/beamctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
