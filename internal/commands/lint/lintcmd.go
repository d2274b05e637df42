// Package lint provides the "qrcgen lint" command which validates a
// translations.conf file without writing a manifest.
package lint

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mumbleutils/qrcgen/internal/config"
	"github.com/mumbleutils/qrcgen/internal/core"
	"github.com/mumbleutils/qrcgen/internal/printer"
	"github.com/mumbleutils/qrcgen/internal/transconf"
	"github.com/urfave/cli/v3"
)

// Run returns the "lint" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "lint",
		Usage:     "Validate a translations.conf file",
		UsageText: "qrcgen lint [--local-translation-dir PATH]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "local-translation-dir",
				Aliases: []string{"l"},
				Usage:   "Directory containing translations.conf",
				Value:   localDirDefault(cfg),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runLintCmd(ctx, cmd.String("local-translation-dir"))
		},
	}
}

func localDirDefault(cfg *config.Config) string {
	if cfg != nil && cfg.LocalTranslationDir != "" {
		return cfg.LocalTranslationDir
	}
	return "."
}

func runLintCmd(ctx context.Context, dir string) error {
	fsys := core.NewOSFileSystem()
	confPath := filepath.Join(dir, transconf.FileName)

	if _, err := fsys.Stat(ctx, confPath); err != nil {
		printer.PrintWarning(fmt.Sprintf("no %s found in %q, nothing to lint", transconf.FileName, dir))
		return nil
	}

	conf, err := transconf.Parse(ctx, fsys, confPath)
	if err != nil {
		return err
	}

	for _, name := range conf.Local {
		if conf.IsOverride(name) {
			fmt.Printf("  %s %s %s\n", printer.Success("✓"), name, printer.Faint("(override)"))
		} else {
			fmt.Printf("  %s %s %s\n", printer.Success("✓"), name, printer.Faint("(fallback)"))
		}
	}
	for _, op := range conf.UnknownOperators {
		printer.PrintWarning(fmt.Sprintf("unknown operator %q, treated as fallback", op))
	}

	printer.PrintSuccess(fmt.Sprintf("%s is valid: %d translations, %d overrides",
		confPath, len(conf.Local), len(conf.Overrides)))
	return nil
}
