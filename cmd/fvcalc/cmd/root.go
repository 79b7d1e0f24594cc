package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/msto63/fvcalc/internal/report"
	"github.com/msto63/fvcalc/internal/runner"
	"github.com/msto63/fvcalc/pkg/core/config"
	"github.com/msto63/fvcalc/pkg/core/logging"
	"github.com/msto63/fvcalc/pkg/core/version"
)

// options holds the flag values of one invocation
type options struct {
	cfgFile   string
	logLevel  string
	logFormat string
	summary   bool

	out    io.Writer
	errOut io.Writer
}

// reportedError marks an error that has already been logged
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// NewRootCmd builds the fvcalc command writing results to out and log lines
// to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &options{out: out, errOut: errOut}

	rootCmd := &cobra.Command{
		Use:   "fvcalc [flags] <present-value> <interest-rate> <term>",
		Short: "Simple interest future value calculator",
		Long: `fvcalc computes the future value of a present value under simple interest:

  FV = PV * (1 + r * n)

  present-value  non-negative amount with at most 2 decimal places, e.g. 1000.00
  interest-rate  yearly rate between 0 and 1 with at most 2 decimal places, e.g. 0.05
  term           number of years, a positive whole number

The result is rounded half-up to 2 decimal places and logged to stderr.`,
		Example: `  fvcalc 1000.00 0.05 3
  fvcalc --summary 500.00 0.00 10
  fvcalc --log-format json --config fvcalc.toml 0.01 1.00 1`,
		Args: cobra.ArbitraryArgs,
		// Flags are parsed in run so that negative numbers stay positional.
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}

	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	flags := rootCmd.Flags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "text", "log format (text, json)")
	flags.BoolVar(&opts.summary, "summary", false, "print a breakdown of the calculation to stdout")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command against the process arguments
func Execute() error {
	return execute(NewRootCmd(os.Stdout, os.Stderr), os.Args[1:], os.Stderr)
}

func execute(rootCmd *cobra.Command, args []string, errOut io.Writer) error {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			printError(errOut, err)
		}
	}
	return err
}

func (o *options) run(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	flagArgs, positional := splitArgs(flags, args)
	if err := flags.Parse(flagArgs); err != nil {
		return err
	}

	if help, _ := flags.GetBool("help"); help {
		return cmd.Help()
	}

	cfg, err := o.config(flags)
	if err != nil {
		logging.NewBootstrapLogger(version.Name, o.errOut).LogError(err)
		return reportedError{err}
	}

	logger, err := logging.NewLogger(logging.LoggerConfig{
		ServiceName: version.Name,
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Output:      o.errOut,
	})
	if err != nil {
		logging.NewBootstrapLogger(version.Name, o.errOut).LogError(err)
		return reportedError{err}
	}

	calc, err := runner.New(logger).Run(positional)
	if err != nil {
		return reportedError{err}
	}

	if cfg.Output.Summary {
		return report.Write(o.out, calc)
	}
	return nil
}

// config merges defaults, the optional config file and explicitly set flags,
// in that order of precedence.
func (o *options) config(flags *pflag.FlagSet) (*config.Config, error) {
	cfg := config.Default()
	if o.cfgFile != "" {
		loaded, err := config.Load(o.cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = o.logFormat
	}
	if flags.Changed("summary") {
		cfg.Output.Summary = o.summary
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
