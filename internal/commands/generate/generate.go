// Package generate implements manifest generation: it scans the configured
// translation directories, applies the translations.conf override rules for
// the local directory, and writes the resulting .qrc manifest.
package generate

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mumbleutils/qrcgen/internal/bundler"
	"github.com/mumbleutils/qrcgen/internal/core"
	"github.com/mumbleutils/qrcgen/internal/printer"
	"github.com/mumbleutils/qrcgen/internal/qrc"
	"github.com/mumbleutils/qrcgen/internal/transconf"
)

// Options are the resolved inputs for a generation run, after merging
// command-line flags and the optional tool config.
type Options struct {
	// Output is the manifest destination path.
	Output string

	// TranslationDirs are the upstream translation directories, scanned in
	// the given order.
	TranslationDirs []string

	// LocalTranslationDir holds the project's own translations and its
	// optional translations.conf. It is always processed last.
	LocalTranslationDir string

	// Sort orders directory listings for reproducible manifests.
	Sort bool

	// Components overrides the bundled-component allow-list. Empty means
	// the default (qt, qtbase).
	Components []string
}

func (o Options) validate() error {
	if o.Output == "" {
		return fmt.Errorf("no output path given (use --output)")
	}
	if len(o.TranslationDirs) == 0 {
		return fmt.Errorf("no translation directory given (use --translation-dir)")
	}
	if o.LocalTranslationDir == "" {
		return fmt.Errorf("no local translation directory given (use --local-translation-dir)")
	}
	return nil
}

// Generate runs a full manifest generation pass.
func Generate(ctx context.Context, fsys core.FileSystem, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}

	confPath := filepath.Join(opts.LocalTranslationDir, transconf.FileName)
	conf, err := transconf.Parse(ctx, fsys, confPath)
	if err != nil {
		return err
	}
	for _, op := range conf.UnknownOperators {
		printer.PrintWarning(fmt.Sprintf("unknown operator %q in %s, treating as fallback", op, confPath))
	}

	b := bundler.New(fsys, bundler.Options{
		Components: opts.Components,
		Sort:       opts.Sort,
	})

	for _, dir := range opts.TranslationDirs {
		if err := b.AddDir(ctx, dir); err != nil {
			return err
		}
	}
	// The local pass runs last so overrides can shadow upstream files.
	if err := b.AddLocal(ctx, opts.LocalTranslationDir, conf); err != nil {
		return err
	}

	entries := b.Entries()
	files := make([]qrc.File, 0, len(entries))
	for _, e := range entries {
		printer.PrintFaint("   > " + bundler.Describe(e))
		files = append(files, qrc.File{Alias: e.Alias, Path: e.Path})
	}

	if err := qrc.WriteFile(ctx, fsys, opts.Output, files); err != nil {
		return err
	}

	printer.PrintSuccess(fmt.Sprintf("Wrote %s (%d translations)", opts.Output, len(files)))
	return nil
}
