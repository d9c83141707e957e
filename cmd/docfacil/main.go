package main

import (
	"os"

	"github.com/DocFacilBR/doc-scheduler/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
