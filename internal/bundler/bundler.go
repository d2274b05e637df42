// Package bundler selects Qt translation files for inclusion in the
// generated resource manifest. It walks translation directories, keeps only
// compiled translations of allowed components, and deduplicates by
// component+locale across directories, with override semantics for the
// local translation pass.
package bundler

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"sort"

	"github.com/mumbleutils/qrcgen/internal/core"
	"github.com/mumbleutils/qrcgen/internal/locale"
	"github.com/mumbleutils/qrcgen/internal/transconf"
)

const compiledExt = ".qm"

// OverrideAliasPrefix marks manifest aliases of local translations that
// replace an upstream Qt translation. The application strips the prefix at
// load time to recognize them.
const OverrideAliasPrefix = "mumble_overwrite_"

// DefaultComponents is the allow-list of translation components bundled by
// default.
var DefaultComponents = []string{"qt", "qtbase"}

// Entry is a translation file selected for the manifest.
type Entry struct {
	// Alias is the name the file is visible under inside the binary. For
	// overrides it carries OverrideAliasPrefix.
	Alias string

	// Path is the source path on the build machine.
	Path string

	// Override reports whether this entry replaces an upstream translation.
	Override bool
}

// Options configures a Bundler.
type Options struct {
	// Components is the allow-list of component names. Empty means
	// DefaultComponents.
	Components []string

	// Sort orders directory listings lexically so manifests are
	// reproducible regardless of platform directory-enumeration order.
	Sort bool
}

// Bundler accumulates manifest entries across directory passes. Directories
// are processed in the order given; the local translation pass (AddLocal)
// must run last so overrides can shadow already-bundled upstream files.
type Bundler struct {
	fsys       core.FileSystem
	components []string
	sort       bool

	// processed holds the stems (component+locale) already bundled, in
	// bundling order. A stem appears in the manifest at most once unless a
	// later entry is an override.
	processed []string

	entries []Entry
}

// New creates a Bundler reading through fsys.
func New(fsys core.FileSystem, opts Options) *Bundler {
	components := opts.Components
	if len(components) == 0 {
		components = DefaultComponents
	}
	return &Bundler{
		fsys:       fsys,
		components: components,
		sort:       opts.Sort,
	}
}

// AddDir bundles all matching translation files from a directory of
// pre-built upstream translations. A missing or unlistable directory fails
// the run.
func (b *Bundler) AddDir(ctx context.Context, dir string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve translation directory %q: %w", dir, err)
	}

	dirEntries, err := b.fsys.ReadDir(ctx, absDir)
	if err != nil {
		return fmt.Errorf("failed to list translation directory %q: %w", dir, err)
	}

	var fileNames []string
	for _, de := range dirEntries {
		if !de.IsDir() {
			fileNames = append(fileNames, de.Name())
		}
	}
	if b.sort {
		sort.Strings(fileNames)
	}

	b.addFiles(fileNames, absDir, nil)
	return nil
}

// AddLocal bundles the project's own translations. fileNames is the list
// declared in translations.conf (already rewritten to compiled form), not a
// directory listing; conf supplies the override set. Files declared as
// overrides bypass deduplication and are emitted under a prefixed alias.
func (b *Bundler) AddLocal(ctx context.Context, dir string, conf *transconf.Translations) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve local translation directory %q: %w", dir, err)
	}
	if _, err := b.fsys.Stat(ctx, absDir); err != nil {
		return fmt.Errorf("failed to access local translation directory %q: %w", dir, err)
	}

	b.addFiles(conf.Local, absDir, conf)
	return nil
}

// addFiles runs the selection filter over fileNames. conf is non-nil only
// for the local translation pass, where override semantics apply.
func (b *Bundler) addFiles(fileNames []string, dir string, conf *transconf.Translations) {
	for _, fileName := range fileNames {
		isOverride := conf != nil && conf.IsOverride(fileName)

		if filepath.Ext(fileName) != compiledExt {
			continue
		}

		if !slices.Contains(b.components, locale.ComponentName(fileName)) {
			continue
		}

		stem := locale.Stem(fileName)
		if slices.Contains(b.processed, stem) && !isOverride {
			continue
		}

		path := filepath.Join(dir, fileName)
		if isOverride {
			// Overrides do not consume the component+locale slot: the base
			// translation and its override coexist in the manifest.
			b.entries = append(b.entries, Entry{
				Alias:    OverrideAliasPrefix + fileName,
				Path:     path,
				Override: true,
			})
		} else {
			b.entries = append(b.entries, Entry{Alias: fileName, Path: path})
			b.processed = append(b.processed, stem)
		}
	}
}

// Entries returns the accumulated manifest entries in bundling order.
func (b *Bundler) Entries() []Entry {
	return b.entries
}

// Describe returns the human-readable progress line for an entry.
func Describe(e Entry) string {
	kind := "Qt translation"
	if e.Override {
		kind = "Qt overwrite translation"
	}
	return fmt.Sprintf("Bundling %s %q", kind, e.Path)
}
