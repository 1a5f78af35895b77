package main

import (
	"os"

	"github.com/depthful/locaudit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
