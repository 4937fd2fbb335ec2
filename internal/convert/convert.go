package convert

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/afero"

	"csv-adui-converter/internal/assemble"
	"csv-adui-converter/internal/diagnostic"
	"csv-adui-converter/internal/form"
	"csv-adui-converter/internal/logger"
	"csv-adui-converter/internal/output"
	"csv-adui-converter/internal/source"
)

// Options describe one conversion.
type Options struct {
	// Fs is the filesystem to read from and write to. Defaults to the OS.
	Fs afero.Fs
	// Input is the CSV file.
	Input string
	// Output is the destination. Empty means output.DefaultPath.
	Output string
	// Title overrides the title derived from Input.
	Title string
	// Format selects JSON or YAML.
	Format output.Format
	// Indent is the indent width; 0 writes compact JSON.
	Indent int
	// Suffix is appended to the input stem for the default output path.
	Suffix string
	// Now returns the generation time. Defaults to time.Now.
	Now func() time.Time
}

// Result is a finished conversion.
type Result struct {
	Document    *form.Document
	OutputPath  string
	Rows        int
	Bytes       int
	Diagnostics diagnostic.Diagnostics
}

// Run converts opts.Input. The logger is taken from ctx. Cancellation is
// honoured between stages; a cancelled run writes nothing.
func Run(ctx context.Context, opts Options) (*Result, error) {
	fsys := opts.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	log := logger.FromContext(ctx).With("source", opts.Input)

	info, err := fsys.Stat(opts.Input)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, opts.Input)
	}

	if err != nil {
		return nil, fail(StageRead, opts.Input, err)
	}

	if info.IsDir() {
		return nil, fail(StageRead, opts.Input, errors.New("is a directory"))
	}

	rows, err := source.LoadFile(fsys, opts.Input)
	if err != nil {
		return nil, fail(StageRead, opts.Input, err)
	}

	log.Debug("Loaded rows", "rows", len(rows))

	err = ctx.Err()
	if err != nil {
		return nil, fail(StageAssemble, opts.Input, err)
	}

	doc, diags := assemble.Assemble(rows, assemble.Options{
		Title:      opts.Title,
		SourcePath: opts.Input,
		Now:        opts.Now,
	})
	if doc == nil {
		return nil, fail(StageAssemble, opts.Input, errors.New("no document produced"))
	}

	logDiagnostics(log, diags)

	err = ctx.Err()
	if err != nil {
		return nil, fail(StageMarshal, opts.Input, err)
	}

	data, err := output.Marshal(doc, opts.Format, opts.Indent)
	if err != nil {
		return nil, fail(StageMarshal, opts.Input, err)
	}

	path := opts.Output
	if path == "" {
		suffix := opts.Suffix
		if suffix == "" {
			suffix = output.DefaultSuffix
		}

		path = output.DefaultPath(opts.Input, suffix, opts.Format)
	}

	err = ctx.Err()
	if err != nil {
		return nil, fail(StageWrite, path, err)
	}

	err = output.WriteFile(fsys, path, data)
	if err != nil {
		return nil, fail(StageWrite, path, err)
	}

	log.Info("Wrote document", "output", path, "fields", len(doc.Fields()), "bytes", len(data))

	return &Result{
		Document:    doc,
		OutputPath:  path,
		Rows:        len(rows),
		Bytes:       len(data),
		Diagnostics: diags,
	}, nil
}

func logDiagnostics(log logger.Logger, diags diagnostic.Diagnostics) {
	for _, d := range diags.Infos {
		log.Debug(d.Message, keyvals(d)...)
	}

	for _, d := range diags.Warnings {
		log.Warn(d.Message, keyvals(d)...)
	}
}

func keyvals(d diagnostic.Diagnostic) []any {
	kv := []any{"code", d.Code, "line", d.Line, "subject", d.Subject}
	if len(d.Suggestions) > 0 {
		kv = append(kv, "suggestions", d.Suggestions)
	}

	return kv
}
