// Package transconf parses the translations.conf file that declares a
// project's own translation files and how they relate to the upstream Qt
// translations (fallback vs. override).
package transconf

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/mumbleutils/qrcgen/internal/core"
)

// FileName is the config file expected inside the local translation directory.
const FileName = "translations.conf"

const (
	sourceExt   = ".ts"
	compiledExt = ".qm"
)

// Translations is the parse result: compiled filenames declared by the
// config, plus the subset flagged as overrides of upstream translations.
type Translations struct {
	// Local lists every declared translation filename, rewritten to the
	// compiled (.qm) form, in declaration order.
	Local []string

	// Overrides lists the filenames declared with the overwrite/override
	// operator, in declaration order.
	Overrides []string

	// UnknownOperators lists operators that were neither "fallback" nor
	// "overwrite"/"override". They are treated as fallbacks; callers may
	// warn about them.
	UnknownOperators []string
}

// IsOverride reports whether fileName was declared as an override.
func (t *Translations) IsOverride(fileName string) bool {
	for _, name := range t.Overrides {
		if name == fileName {
			return true
		}
	}
	return false
}

// FormatError describes a malformed line in translations.conf.
type FormatError struct {
	Path   string
	Line   int
	Text   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s:%d: %s: %q", e.Path, e.Line, e.Reason, e.Text)
}

// Parse reads and parses the config file at path. A missing file is not an
// error: the returned Translations is simply empty. Any malformed line
// fails the whole parse with a *FormatError.
func Parse(ctx context.Context, fsys core.FileSystem, path string) (*Translations, error) {
	result := &Translations{}

	data, err := fsys.ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return result, nil
		}
		return nil, fmt.Errorf("failed to read translation config %q: %w", path, err)
	}

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, &FormatError{Path: path, Line: i + 1, Text: line,
				Reason: "expected '<operator> <filename>'"}
		}

		operator := strings.ToLower(fields[0])
		fileName := fields[1]

		if !strings.HasSuffix(fileName, sourceExt) {
			return nil, &FormatError{Path: path, Line: i + 1, Text: line,
				Reason: fmt.Sprintf("translation file must have a %q extension", sourceExt)}
		}

		// lrelease compiles foo.ts into foo.qm; all downstream matching is
		// against the compiled name.
		fileName = strings.TrimSuffix(fileName, sourceExt) + compiledExt

		result.Local = append(result.Local, fileName)

		switch operator {
		case "fallback":
			// Fallback is the default; nothing extra to record.
		case "overwrite", "override":
			result.Overrides = append(result.Overrides, fileName)
		default:
			result.UnknownOperators = append(result.UnknownOperators, operator)
		}
	}

	return result, nil
}
