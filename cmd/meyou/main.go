package main

import (
	"os"

	"github.com/JDCAG/me-and-you/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
