package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a live preview of the resume",
	Long:  "Serve the rendered resume over HTTP. Open browser tabs reload automatically when another process edits the profile. Stop with Ctrl+C.",
	RunE:  runServe,
}

var servePort int

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close() //nolint:errcheck

	fmt.Fprintf(os.Stdout, "Preview at http://localhost:%d (profile %q)\n", servePort, rootProfile)

	srv := server.New(server.Config{
		Port:      servePort,
		Store:     s,
		Namespace: rootProfile,
	})
	return srv.Start()
}
