package cli

import (
	"context"
	"fmt"

	"github.com/mumbleutils/qrcgen/internal/commands/generate"
	"github.com/mumbleutils/qrcgen/internal/commands/lint"
	"github.com/mumbleutils/qrcgen/internal/config"
	"github.com/mumbleutils/qrcgen/internal/core"
	"github.com/mumbleutils/qrcgen/internal/printer"
	"github.com/mumbleutils/qrcgen/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

var noColorFlag bool

// New builds and returns the root CLI command. Invoking qrcgen with the
// generation flags runs a manifest generation pass; subcommands cover the
// auxiliary operations.
func New(cfg *config.Config) *urfavecli.Command {
	if cfg == nil {
		cfg = &config.Config{}
	}

	return &urfavecli.Command{
		Name:    "qrcgen",
		Version: fmt.Sprintf("v%s", version.GetVersion()),
		Usage:   "Generate a Qt resource manifest (.qrc) for bundled translations",
		UsageText: `qrcgen --output PATH --translation-dir PATH [--translation-dir PATH ...] --local-translation-dir PATH

Scans the given translation directories for compiled Qt translations
(qt_*.qm, qtbase_*.qm), applies the override/fallback rules from the local
directory's translations.conf, and writes a .qrc manifest listing the files
to embed.`,
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Path to which to write the generated QRC file",
				Value:   cfg.Output,
			},
			&urfavecli.StringSliceFlag{
				Name:    "translation-dir",
				Aliases: []string{"t"},
				Usage:   "Directory containing pre-built Qt translations (repeatable, scanned in order)",
				Value:   cfg.TranslationDirs,
			},
			&urfavecli.StringFlag{
				Name:    "local-translation-dir",
				Aliases: []string{"l"},
				Usage:   "Directory containing the project's own translations and translations.conf",
				Value:   cfg.LocalTranslationDir,
			},
			&urfavecli.BoolFlag{
				Name:  "no-sort",
				Usage: "Keep platform directory-listing order instead of sorting filenames",
			},
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColorFlag)
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			opts := generate.Options{
				Output:              cmd.String("output"),
				TranslationDirs:     cmd.StringSlice("translation-dir"),
				LocalTranslationDir: cmd.String("local-translation-dir"),
				Sort:                cfg.SortEnabled() && !cmd.Bool("no-sort"),
				Components:          cfg.Components,
			}
			return generate.Generate(ctx, core.NewOSFileSystem(), opts)
		},
		Commands: []*urfavecli.Command{
			lint.Run(cfg),
		},
	}
}
