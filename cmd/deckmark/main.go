package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	defer zap.L().Sync() //nolint:errcheck
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "deckmark:", err)
		os.Exit(1)
	}
}
