// Package main is the entry point for the storage-cost CLI.
package main

import (
	"os"

	"storage-cost/cmd/cli/cmd"
	"storage-cost/internal/logging"
)

func main() {
	err := cmd.Execute()
	logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}
