package main

import (
	"fmt"
	"time"

	"github.com/jonathan/resume-match/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for parsing resumes, matching them against job descriptions, and managing editing sessions.`,
	RunE:  runServe,
}

var (
	servePort       int
	serveSessionTTL time.Duration
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().DurationVar(&serveSessionTTL, "session-ttl", 24*time.Hour, "Idle lifetime of editing sessions")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	if servePort <= 0 || servePort > 65535 {
		return fmt.Errorf("invalid port: %d", servePort)
	}

	srv := server.New(server.Config{
		Port:       servePort,
		SessionTTL: serveSessionTTL,
	})

	return srv.Start()
}
