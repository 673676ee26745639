package main

import (
	"os"

	"github.com/Ali1tnk/DAT-evaluation/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
