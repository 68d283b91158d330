package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-schema/internal/ingestion"
	"github.com/jonathan/resume-schema/internal/observability"
	"github.com/jonathan/resume-schema/internal/schemas"
	"github.com/jonathan/resume-schema/internal/sections"
	"github.com/jonathan/resume-schema/internal/types"
)

var (
	validateJSONSchema bool
	validateVerbose    bool
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Validate resume documents",
	Long:  `Validate one or more resume documents (JSON or YAML) against the content schema. All field violations are reported; the command fails if any document is invalid.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSONSchema, "json-schema", false, "Also check documents against schemas/resume.schema.json")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Print detailed validation reports")
	rootCmd.AddCommand(validateCmd)
}

// fileResult holds the outcome for one input file. Decode failures land in
// err; schema violations land in violations.
type fileResult struct {
	path       string
	resume     *types.Resume
	violations *types.Violations
	schemaErr  error
	err        error
}

func runValidate(_ *cobra.Command, args []string) error {
	cfg, err := loadCLIConfig()
	if err != nil {
		return err
	}
	verbose := validateVerbose || cfg.Verbose

	schemaPath := ""
	if validateJSONSchema {
		schemaPath = cfg.Schema
		if schemaPath == "" {
			schemaPath = schemas.ResolveSchemaPath(schemas.ResumeSchemaFile)
		}
		if schemaPath == "" {
			return fmt.Errorf("--json-schema requested but %s not found", schemas.ResumeSchemaFile)
		}
	}

	// Validation is pure and shares no state, so files fan out freely.
	results := make([]fileResult, len(args))
	var g errgroup.Group
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			results[i] = validateFile(path, schemaPath)
			return nil
		})
	}
	_ = g.Wait()

	printer := observability.NewPrinter(os.Stdout)
	failed := 0
	for _, res := range results {
		if res.err != nil {
			failed++
			fmt.Printf("✗ %s: %v\n", res.path, res.err)
			continue
		}

		if verbose {
			printer.PrintResumeSummary(res.path, res.resume)
			printer.PrintViolations(res.violations)
		}

		switch {
		case !res.violations.OK():
			failed++
			fmt.Printf("✗ %s: %d violations\n", res.path, len(res.violations.Violations))
			if !verbose {
				for _, v := range res.violations.Violations {
					fmt.Printf("    %s\n", v.String())
				}
			}
		case res.schemaErr != nil:
			failed++
			fmt.Printf("✗ %s (json-schema): %v\n", res.path, res.schemaErr)
		default:
			fmt.Printf("✓ %s\n", res.path)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed validation", failed, len(args))
	}
	return nil
}

func validateFile(path, schemaPath string) fileResult {
	res := fileResult{path: path}

	res.resume, res.err = ingestion.LoadResume(path)
	if res.err != nil {
		return res
	}

	res.violations = sections.ValidateResume(res.resume)

	if schemaPath != "" {
		res.schemaErr = schemas.ValidateDocument(schemaPath, res.resume)
	}

	return res
}
