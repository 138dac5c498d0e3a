package main

import (
	"os"

	"github.com/t14raptor/jsparse/cmd/jsparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
