package main

import (
	"os"

	"github.com/avelk/marketmath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
