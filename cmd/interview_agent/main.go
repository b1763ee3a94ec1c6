// Package main provides the entry point for the HR interview assistant.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "interview_agent",
	Short: "HR interview assistant",
	Long:  "HR interview assistant generates tailored interview questions, analyzes responses, and synthesizes HR recommendations, served over a REST API or run directly from the CLI.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
