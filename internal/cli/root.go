package cli

import (
	"os"

	"github.com/hasbyte1/go-underscore/internal/config"
	"github.com/hasbyte1/go-underscore/internal/log"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	input      string
	path       string
	format     string
	pretty     bool
}

// app carries the state shared by every command of one invocation.
type app struct {
	version string
	opts    options
	logger  zerolog.Logger
	printer *printer
}

// NewRootCommand builds the underscore command tree.
func NewRootCommand(version string) *cobra.Command {
	a := &app{version: version}

	root := &cobra.Command{
		Use:   "underscore",
		Short: "underscore.js-style helpers for JSON arrays and objects",
		Long: "underscore applies uniq, without, intersection, pick, omit, invert, defaults and friends " +
			"to a JSON document read from --input or stdin.\n\n" +
			"Arrays are handled as sequences compared by compacted JSON text; " +
			"objects are handled as key-ordered maps.",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.configPath, "config", "", "path to yml config, ENV only when empty")
	flags.StringVarP(&a.opts.input, "input", "i", stdinMarker, "json document, - reads stdin")
	flags.StringVar(&a.opts.path, "path", "", "gjson path selecting the part of the document to operate on")
	flags.StringVar(&a.opts.format, "format", "", "output format [json, table], overrides UNDERSCORE_FORMAT")
	flags.BoolVar(&a.opts.pretty, "pretty", false, "indents json output, overrides UNDERSCORE_PRETTY")

	root.AddCommand(a.sequenceCommands()...)
	root.AddCommand(a.mapCommands()...)
	root.AddCommand(envCommand())

	return root
}

// Execute runs the command tree and exits with status 1 on error.
func Execute(version string) {
	if err := NewRootCommand(version).Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.New(a.version, a.opts.configPath)
	if err != nil {
		return errors.Wrap(err, "unable to initialize config")
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = a.opts.format
	}
	if flags.Changed("pretty") {
		cfg.Output.Pretty = a.opts.pretty
	}

	a.logger = log.New(cfg.Logger, cmd.ErrOrStderr(), a.version)

	a.printer, err = newPrinter(cmd.OutOrStdout(), cfg.Output.Format, cfg.Output.Pretty)

	return err
}

// emit renders res and logs the operation.
func (a *app) emit(cmd *cobra.Command, res result, inputSize int) error {
	a.logger.Debug().
		Str("command", cmd.Name()).
		Str("path", a.opts.path).
		Int("input_size", inputSize).
		Int("output_size", res.size()).
		Msg("applied")

	if err := res.render(a.printer); err != nil {
		return errors.Wrap(err, "unable to write output")
	}

	return nil
}

func envCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Outputs available ENV variables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return config.PrintUsage(cmd.OutOrStdout())
		},
	}
}
