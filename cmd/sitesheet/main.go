package main

import (
	"os"

	"github.com/aufield/sitesheet/internal/infrastructure/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
