package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spacesedan/researchflow/config"
	"github.com/spacesedan/researchflow/internal/app"
	"github.com/spacesedan/researchflow/internal/models"
	"github.com/spacesedan/researchflow/internal/render"
	"github.com/spf13/cobra"
)

const (
	FORMAT_MARKDOWN = "markdown"
	FORMAT_JSON     = "json"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "research",
		Short:        "Search, gather news and generate content ideas for keywords",
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var (
		keywords []string
		limit    int
		format   string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one research pass and print the report",
		Example: `  research run -k "electric vehicles" -k "solid state batteries" --limit 3
  research run -k "AI in healthcare" --format json -o report.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			keywords = append(keywords, args...)
			if err := validateFormat(format); err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			a, err := app.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			report, err := a.Research.Run(cmd.Context(), keywords, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("open output: %w", err)
				}
				defer f.Close()
				out = f
			}
			return writeReport(out, report, format)
		},
	}

	cmd.Flags().StringArrayVarP(&keywords, "keyword", "k", nil, "keyword to research (repeatable)")
	cmd.Flags().IntVar(&limit, "limit", config.DEFAULT_LIMIT, fmt.Sprintf("maximum results per keyword (%d-%d)", config.MIN_LIMIT, config.MAX_LIMIT))
	cmd.Flags().StringVar(&format, "format", FORMAT_MARKDOWN, "output format: markdown or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the report to a file instead of stdout")
	return cmd
}

func validateFormat(format string) error {
	switch strings.ToLower(format) {
	case FORMAT_MARKDOWN, FORMAT_JSON:
		return nil
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, FORMAT_MARKDOWN, FORMAT_JSON)
	}
}

func writeReport(w io.Writer, report models.ResearchReport, format string) error {
	if strings.ToLower(format) == FORMAT_JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	_, err := io.WriteString(w, render.Markdown(report))
	return err
}
