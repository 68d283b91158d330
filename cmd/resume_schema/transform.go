package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-schema/internal/ingestion"
	"github.com/jonathan/resume-schema/internal/sections"
	"github.com/jonathan/resume-schema/internal/transform"
)

var transformLocale string

var transformCmd = &cobra.Command{
	Use:   "transform FILE",
	Short: "Populate computed rendering fields",
	Long:  `Validate a resume document and, when valid, populate every computed sub-object (date ranges, joined keyword lists, option labels). The transformed document is written to stdout as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTransform,
}

func init() {
	transformCmd.Flags().StringVar(&transformLocale, "locale", "", "Locale for computed labels (overrides layout.localeLanguage)")
	rootCmd.AddCommand(transformCmd)
}

func runTransform(_ *cobra.Command, args []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}

	locale := transformLocale
	if locale == "" {
		locale = cfg.Locale
	}

	resume, err := ingestion.LoadResume(args[0])
	if err != nil {
		return err
	}

	if violations := sections.ValidateResume(resume); !violations.OK() {
		return violations
	}

	transform.Populate(resume, locale)

	out, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode transformed resume: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
