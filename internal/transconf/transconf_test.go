package transconf

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/mumbleutils/qrcgen/internal/core"
)

func parseContent(t *testing.T, content string) (*Translations, error) {
	t.Helper()
	fs := core.NewMockFileSystem()
	fs.SetFile("/local/translations.conf", []byte(content))
	return Parse(context.Background(), fs, "/local/translations.conf")
}

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		wantLocal     []string
		wantOverrides []string
		wantUnknown   []string
	}{
		{
			name:      "fallback entry",
			content:   "fallback mumble_de.ts\n",
			wantLocal: []string{"mumble_de.qm"},
		},
		{
			name:          "overwrite entry",
			content:       "overwrite qt_de.ts\n",
			wantLocal:     []string{"qt_de.qm"},
			wantOverrides: []string{"qt_de.qm"},
		},
		{
			name:          "override alias",
			content:       "override qt_fr.ts\n",
			wantLocal:     []string{"qt_fr.qm"},
			wantOverrides: []string{"qt_fr.qm"},
		},
		{
			name:          "operators are case-insensitive",
			content:       "OVERWRITE qt_de.ts\nFallback mumble_nl.ts\n",
			wantLocal:     []string{"qt_de.qm", "mumble_nl.qm"},
			wantOverrides: []string{"qt_de.qm"},
		},
		{
			name:      "comments and blank lines skipped",
			content:   "# header comment\n\n   \nfallback mumble_de.ts\n# trailing comment\n",
			wantLocal: []string{"mumble_de.qm"},
		},
		{
			name:        "unknown operator treated as fallback",
			content:     "replace qt_de.ts\n",
			wantLocal:   []string{"qt_de.qm"},
			wantUnknown: []string{"replace"},
		},
		{
			name:      "declaration order preserved",
			content:   "fallback b_de.ts\nfallback a_de.ts\n",
			wantLocal: []string{"b_de.qm", "a_de.qm"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseContent(t, tt.content)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if !slices.Equal(got.Local, tt.wantLocal) {
				t.Errorf("Local = %v, want %v", got.Local, tt.wantLocal)
			}
			if !slices.Equal(got.Overrides, tt.wantOverrides) {
				t.Errorf("Overrides = %v, want %v", got.Overrides, tt.wantOverrides)
			}
			if !slices.Equal(got.UnknownOperators, tt.wantUnknown) {
				t.Errorf("UnknownOperators = %v, want %v", got.UnknownOperators, tt.wantUnknown)
			}
		})
	}
}

func TestParse_FormatErrors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantLine int
	}{
		{"single token", "fallback\n", 1},
		{"too many tokens", "fallback one.ts two.ts\n", 1},
		{"wrong extension", "fallback mumble_de.qm\n", 1},
		{"no extension", "overwrite mumble_de\n", 1},
		{"error reports line number", "# comment\nfallback ok_de.ts\nbogus\n", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseContent(t, tt.content)
			if err == nil {
				t.Fatal("expected format error, got nil")
			}

			var formatErr *FormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("expected *FormatError, got %T: %v", err, err)
			}
			if formatErr.Line != tt.wantLine {
				t.Errorf("FormatError.Line = %d, want %d", formatErr.Line, tt.wantLine)
			}
		})
	}
}

func TestParse_MissingFileIsNotAnError(t *testing.T) {
	fs := core.NewMockFileSystem()

	got, err := Parse(context.Background(), fs, "/local/translations.conf")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(got.Local) != 0 || len(got.Overrides) != 0 {
		t.Errorf("expected empty result, got %+v", got)
	}
}

func TestTranslations_IsOverride(t *testing.T) {
	conf := &Translations{Overrides: []string{"qt_de.qm"}}

	if !conf.IsOverride("qt_de.qm") {
		t.Error("IsOverride(qt_de.qm) = false, want true")
	}
	if conf.IsOverride("qt_fr.qm") {
		t.Error("IsOverride(qt_fr.qm) = true, want false")
	}
}
