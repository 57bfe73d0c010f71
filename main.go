package main

import (
	"os"

	"github.com/arashek/ade/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
