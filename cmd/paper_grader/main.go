// Package main provides the entry point for the AI paper grader CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "paper_grader",
	Short: "AI-assisted paper grader",
	Long:  "Paper Grader combines objective text metrics with a rubric-driven model evaluation to grade a student paper and print a report.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
