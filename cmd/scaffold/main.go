package main

import (
	"os"

	"github.com/buildforge/scaffold/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
