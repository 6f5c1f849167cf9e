package main

import (
	"os"

	"github.com/tuanvm/physitutor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
