package cli

import (
	"context"
	"fmt"

	"github.com/libtcod/hdrver/internal/config"
	"github.com/libtcod/hdrver/internal/console"
	"github.com/libtcod/hdrver/internal/core"
	"github.com/libtcod/hdrver/internal/operations"
	"github.com/libtcod/hdrver/internal/parser"
	"github.com/libtcod/hdrver/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

// abiFlag selects the ABI output. Only this exact token counts; see
// NormalizeArgs.
const abiFlag = "--so"

// New builds and returns the root CLI command. It has no subcommands:
// running it prints the version found in the configured header. Callers
// pass the raw arguments through NormalizeArgs before Run.
func New(fs core.FileSystem) *urfavecli.Command {
	return &urfavecli.Command{
		Name:            "hdrver",
		Version:         fmt.Sprintf("v%s", version.GetVersion()),
		Usage:           "Print the version defined in a C version header",
		UsageText:       "hdrver [--so] [--json] [--header path] [--prefix NAME] [--config file]",
		HideHelpCommand: true,
		Flags: []urfavecli.Flag{
			&urfavecli.BoolFlag{
				Name:  "so",
				Usage: "Print the library ABI version (major:minor) instead of major.minor.patch",
			},
			&urfavecli.BoolFlag{
				Name:  "json",
				Usage: "Print the version as a single-line JSON object",
			},
			&urfavecli.StringFlag{
				Name:        "header",
				Aliases:     []string{"H"},
				Usage:       "Path to the version header",
				DefaultText: config.DefaultHeaderPath,
			},
			&urfavecli.StringFlag{
				Name:        "prefix",
				Usage:       "Macro prefix (<PREFIX>_MAJOR_VERSION, <PREFIX>_MINOR_VERSION, <PREFIX>_PATCHLEVEL)",
				DefaultText: parser.DefaultPrefix,
			},
			&urfavecli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file (.yaml, .yml or .toml)",
			},
			&urfavecli.BoolFlag{
				Name:  "verbose",
				Usage: "Log resolution and parsing steps to stderr",
			},
			&urfavecli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		// Keep stdout free of help text on usage errors; main reports the error.
		OnUsageError: func(ctx context.Context, cmd *urfavecli.Command, err error, isSubcommand bool) error {
			return fmt.Errorf("invalid usage: %w", err)
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			console.SetNoColor(!console.ColorEnabled(cmd.Root().ErrWriter, cmd.Bool("no-color")))
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			return runExtract(ctx, cmd, fs)
		},
	}
}

// runExtract resolves the configuration, extracts the version and prints
// exactly one line to the command's writer.
func runExtract(ctx context.Context, cmd *urfavecli.Command, fs core.FileSystem) error {
	logger := console.NewLogger(cmd.Root().ErrWriter, cmd.Bool("verbose"))

	cfg, err := config.LoadConfigFn(config.Options{
		ConfigFile: cmd.String("config"),
		Header:     cmd.String("header"),
		Prefix:     cmd.String("prefix"),
	})
	if err != nil {
		return err
	}

	contract, err := cfg.Contract()
	if err != nil {
		return err
	}

	logger.Debug("resolved configuration",
		"header", cfg.Header,
		"header_source", cfg.HeaderSource,
		"prefix", cfg.Prefix,
		"prefix_source", cfg.PrefixSource,
		"config_file", cfg.File,
	)

	style := outputStyle(cmd)
	if rest := cmd.Args().Slice(); len(rest) > 0 {
		logger.Debug("ignoring positional arguments", "args", rest)
	}

	line, err := operations.NewExtractOperation(fs, logger).Execute(ctx, parser.FileConfig{
		Path:     cfg.Header,
		Contract: contract,
	}, style)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, line)
	return err
}

// outputStyle picks the rendering. NormalizeArgs has already hoisted any
// exact --so token into the flag.
func outputStyle(cmd *urfavecli.Command) operations.Style {
	switch {
	case cmd.Bool("json"):
		return operations.StyleJSON
	case cmd.Bool("so"):
		return operations.StyleABI
	default:
		return operations.StyleRelease
	}
}
