package main

import (
	"os"

	"github.com/ziadkadry99/on-the-issues/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
