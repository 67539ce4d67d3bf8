package main

import (
	"os"

	"github.com/lmoreno/pitagoras/cmd/pitagoras/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
