package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/lingvodoc-backend/internal/app"
	"github.com/heartmarshall/lingvodoc-backend/internal/config"
	"github.com/heartmarshall/lingvodoc-backend/internal/domain"
	"github.com/heartmarshall/lingvodoc-backend/internal/service/cognates"
)

type options struct {
	configPath    string
	onlyInTOC     bool
	languageGroup string
	language      string
	offset        int
	limit         int
	perspective   string
	debug         bool
	output        string
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "list-cognates",
		Short: "Build a cognate report",
		Long: `list-cognates walks the language tree from the selected roots, keeps
perspectives that have transcription and translation fields, and writes
their published entries with cognate groups as one JSON document.

Without --language-group or --language the walk starts at every root language.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := opts.input(cmd)
			if err != nil {
				return err
			}
			return run(cmd.Context(), opts, in)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML); defaults to CONFIG_PATH")
	f.BoolVar(&opts.onlyInTOC, "only-in-toc", false, "Keep only languages marked for the table of contents")
	f.StringVar(&opts.languageGroup, "language-group", "", "Start from the children of the languages with this title")
	f.StringVar(&opts.language, "language", "", "Start from the languages with this title")
	f.IntVar(&opts.offset, "offset", 0, "Perspectives to skip")
	f.IntVar(&opts.limit, "limit", 0, "Perspectives to include (0 = configured default)")
	f.StringVar(&opts.perspective, "perspective", "", "Restrict the report to one perspective, as client_id,object_id")
	f.BoolVar(&opts.debug, "debug", false, "Log every block and entry")
	f.StringVarP(&opts.output, "output", "o", "-", "Output file ('-' for stdout)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
		},
	})

	return cmd
}

// input converts the flags into a report request. Empty string flags that
// were not given stay unset.
func (o options) input(cmd *cobra.Command) (cognates.ListInput, error) {
	in := cognates.ListInput{
		OnlyInTOC: o.onlyInTOC,
		Offset:    o.offset,
		Limit:     o.limit,
		Debug:     o.debug,
	}

	flags := cmd.Flags()
	if flags.Changed("language-group") {
		in.LanguageGroup = &o.languageGroup
	}
	if flags.Changed("language") {
		in.LanguageTitle = &o.language
	}
	if flags.Changed("perspective") {
		id, err := domain.ParseCompositeID(o.perspective)
		if err != nil {
			return cognates.ListInput{}, fmt.Errorf("--perspective: %w", err)
		}
		in.PerspectiveID = &id
	}

	return in, in.Validate()
}

func run(ctx context.Context, opts options, in cognates.ListInput) error {
	cfg, err := config.LoadFrom(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.debug {
		cfg.Log.Level = "debug"
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	components, err := app.NewComponents(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer components.Close()

	report, err := components.Service.ListCognates(ctx, in)
	if err != nil {
		return err
	}

	if err := writeReport(opts.output, report.JSON); err != nil {
		return err
	}

	logger.Info("languages", slog.Any("titles", report.Languages))
	logger.Info("report written",
		slog.String("output", opts.output),
		slog.Int("perspectives", report.Stats.PerspectivesEmitted),
		slog.Int("entries", report.Stats.Entries),
		slog.Duration("elapsed", report.Stats.Elapsed),
	)
	return nil
}

func writeReport(path string, data []byte) (err error) {
	var w io.Writer = os.Stdout
	if path != "-" && path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close output: %w", cerr)
			}
		}()
		w = f
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	_, err = io.WriteString(w, "\n")
	return err
}
