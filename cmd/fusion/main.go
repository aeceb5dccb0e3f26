package main

import (
	"os"

	"github.com/fusionkit/fusion-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
