package main

import (
	"os"

	"github.com/jakoblorz/lion/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
