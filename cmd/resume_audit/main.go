// Package main provides the entry point for the resume audit CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_audit",
	Short: "Resume claim verification and scoring pipeline",
	Long:  "Resume Auditor cross-checks extracted resume claims against external evidence sources and produces trust, ATS, and red-flag reports.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
