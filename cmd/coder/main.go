package main

import (
	"fmt"
	"os"

	"genderdecoder/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "coder: %v\n", err)
		os.Exit(1)
	}
}
