package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-schema/internal/schemas"
	"github.com/jonathan/resume-schema/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for validating and transforming resume documents.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	port := servePort
	if cfg.Port != 0 && servePort == 8080 {
		port = cfg.Port
	}

	schemaPath := cfg.Schema
	if schemaPath == "" {
		schemaPath = schemas.ResolveSchemaPath(schemas.ResumeSchemaFile)
	}

	srv, err := server.New(server.Config{
		Port:       port,
		SchemaPath: schemaPath,
		Locale:     cfg.Locale,
	})
	if err != nil {
		return err
	}

	return srv.Start()
}
