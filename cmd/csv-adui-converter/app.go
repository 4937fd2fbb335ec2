package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"csv-adui-converter/internal/config"
	"csv-adui-converter/internal/convert"
	"csv-adui-converter/internal/logger"
	"csv-adui-converter/internal/match"
	"csv-adui-converter/internal/output"
	"csv-adui-converter/internal/report"
	"csv-adui-converter/internal/source"
	"csv-adui-converter/internal/verify"
)

const (
	appName = "csv-adui-converter"
	Version = "1.1.0"
)

var errCheckFailed = errors.New("document check failed")

// app carries the process dependencies so tests can swap them.
type app struct {
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer
	now    func() time.Time

	// loader is built from fs when nil.
	loader *config.Loader
}

type flags struct {
	title      string
	output     string
	format     string
	configPath string
	logLevel   string
	logJSON    bool
	quiet      bool
}

func (a *app) rootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   appName + " <file.csv>",
		Short: "Convert a CSV form definition to an ADUI document",
		Long:  longHelp(),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConvert(cmd, args[0], f)
		},
	}

	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "Config file path (YAML)")
	pf.StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.BoolVar(&f.logJSON, "log-json", false, "Write logs as JSON")

	cmd.Flags().StringVar(&f.title, "title", "", "Form title (default: derived from the file name)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output path (default: <name><suffix>.<format>)")
	cmd.Flags().StringVar(&f.format, "format", "json", "Output format (json, yaml)")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "Do not print the summary")

	cmd.AddCommand(a.checkCmd(&f), a.versionCmd())

	return cmd
}

func longHelp() string {
	return fmt.Sprintf(`Reads a CSV file with %s, %s, %s and %s columns and writes
an ADUI form document next to it (<name>_enhanced.json by default).
Rows with a blank %s are skipped.

Known components, ignoring case and spacing: %s.
Any other component becomes a TextField.

Select options are separated by newlines, or by commas when the cell has
no newline. Task names are separated by commas.`,
		source.ColumnSeq, source.ColumnName, source.ColumnComponent, source.ColumnInput,
		source.ColumnName, strings.Join(match.Labels(), ", "))
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)

			return err
		},
	}
}

func (a *app) checkCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file.json>",
		Short: "Check a document's identifiers and task graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, args[0], *f)
		},
	}
}

// settings resolves configuration layers with the flags the user set.
func (a *app) settings(cmd *cobra.Command, f flags) (*config.Config, logger.Logger, error) {
	overrides := &config.Config{}

	if cmd.Flags().Changed("format") {
		overrides.Output.Format = f.format
	}

	if cmd.Flags().Changed("log-level") {
		overrides.Log.Level = f.logLevel
	}

	if cmd.Flags().Changed("log-json") {
		overrides.Log.JSON = &f.logJSON
	}

	// Config files may change the log settings, so loading itself logs
	// with the flag values.
	loader := a.loader
	if loader == nil {
		loader = config.NewLoader(a.fs, nil)
	}

	loader.Logger = a.newLogger(logger.Level(f.logLevel), f.logJSON)

	cfg, err := loader.Load(f.configPath, overrides)
	if err != nil {
		return nil, nil, err
	}

	return cfg, a.newLogger(logger.Level(cfg.Log.Level), cfg.JSONLog()), nil
}

func (a *app) newLogger(level logger.Level, jsonOut bool) logger.Logger {
	return logger.New(&logger.Config{
		Level:      level,
		Output:     a.stderr,
		JSON:       jsonOut,
		TimeFormat: "15:04:05",
	})
}

func (a *app) runConvert(cmd *cobra.Command, input string, f flags) error {
	cfg, log, err := a.settings(cmd, f)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	ctx := logger.ContextWithLogger(cmd.Context(), log)

	res, err := convert.Run(ctx, convert.Options{
		Fs:     a.fs,
		Input:  input,
		Output: f.output,
		Title:  f.title,
		Format: format,
		Indent: cfg.IndentWidth(),
		Suffix: cfg.Output.Suffix,
		Now:    a.now,
	})
	if err != nil {
		return err
	}

	if f.quiet {
		return nil
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), report.Summary(report.Conversion{
		Source:   input,
		Output:   res.OutputPath,
		Document: res.Document,
	}))

	return err
}

func (a *app) runCheck(cmd *cobra.Command, path string, f flags) error {
	_, log, err := a.settings(cmd, f)
	if err != nil {
		return err
	}

	data, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		data, err = yamlToJSON(data)
		if err != nil {
			return err
		}
	}

	diags := verify.Document(data)
	log.Debug("Checked document", "path", path, "errors", len(diags.Errors), "warnings", len(diags.Warnings))

	out := cmd.OutOrStdout()

	_, err = fmt.Fprint(out, report.Diagnostics(diags))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, report.Verified(path, diags))
	if err != nil {
		return err
	}

	if diags.HasErrors() {
		return fmt.Errorf("%w: %s", errCheckFailed, path)
	}

	return nil
}

// yamlToJSON re-encodes a YAML document as JSON for checking.
func yamlToJSON(data []byte) ([]byte, error) {
	doc, err := output.Unmarshal(data, output.FormatYAML)
	if err != nil {
		return nil, err
	}

	return output.Marshal(doc, output.FormatJSON, 0)
}
