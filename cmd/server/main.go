// Package main is the entry point for the breeding worker
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "creature-api",
	Short: "Creature genetics and breeding service",
	Long:  `creature-api runs the genetic inheritance engine and the breeding worker that plays queued breeding requests to completion.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
