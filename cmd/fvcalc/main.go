package main

import (
	"os"

	"github.com/msto63/fvcalc/cmd/fvcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
