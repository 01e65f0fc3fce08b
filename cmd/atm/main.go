package main

import (
	"os"

	"github.com/vivebank/atm/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
