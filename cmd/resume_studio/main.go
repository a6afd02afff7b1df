// Package main provides the entry point for the Resume Studio CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_studio",
	Short: "Resume Studio CLI",
	Long:  "Resume Studio builds, previews, and exports resumes and cover letters from a local profile store, with AI-assisted drafting and a job application tracker.",
}

var (
	rootProfileDir string
	rootProfile    string
	rootVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootProfileDir, "dir", "", "Profile data directory (defaults to $RESUME_STUDIO_HOME or ~/.resume-studio)")
	rootCmd.PersistentFlags().StringVar(&rootProfile, "profile", "default", "Profile namespace")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
