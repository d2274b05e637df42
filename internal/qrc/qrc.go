// Package qrc renders Qt resource-collection (.qrc) manifests.
package qrc

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/mumbleutils/qrcgen/internal/core"
)

// File is a single manifest entry: the alias the resource is visible under
// inside the binary, and the source path on the build machine.
type File struct {
	Alias string
	Path  string
}

// Render writes the manifest for the given files to w. The envelope is the
// fixed two-line RCC header and matching closing tags the downstream
// resource compiler expects.
func Render(w io.Writer, files []File) error {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE RCC><RCC version=\"1.0\">\n")
	sb.WriteString("<qresource>\n")
	for _, f := range files {
		fmt.Fprintf(&sb, " <file alias=\"%s\">%s</file>\n", escape(f.Alias), escape(f.Path))
	}
	sb.WriteString("</qresource>\n")
	sb.WriteString("</RCC>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteFile renders the manifest and writes it to path, creating or
// truncating the file.
func WriteFile(ctx context.Context, fsys core.FileSystem, path string, files []File) error {
	var sb strings.Builder
	if err := Render(&sb, files); err != nil {
		return err
	}
	if err := fsys.WriteFile(ctx, path, []byte(sb.String()), core.PermFile); err != nil {
		return fmt.Errorf("failed to write manifest %q: %w", path, err)
	}
	return nil
}

// escape XML-escapes filenames and paths. Plain names pass through
// unchanged, so output stays byte-compatible with existing manifests.
func escape(s string) string {
	if !strings.ContainsAny(s, `<>&'"`) {
		return s
	}
	var sb strings.Builder
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
