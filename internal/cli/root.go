// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"io"

	"github.com/MakeNowJust/heredoc"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// app carries the per-invocation state shared by all subcommands.
type app struct {
	in         io.Reader
	out        io.Writer
	log        *logrus.Logger
	v          *viper.Viper
	cfg        Config
	configFile string
}

// Execute runs the command line args and returns the process exit code.
// Results go to out; diagnostics go to errOut through logrus.
func Execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	a := &app{in: in, out: out, log: newLogger(errOut), v: newViper()}
	cmd := a.rootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	if err := cmd.ExecuteContext(ctx); err != nil {
		a.log.WithError(err).Error("pitheorem failed")
		return ExitFailure
	}

	return ExitOK
}

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return l
}

var rootLong = heredoc.Doc(`
	Compute the dimensionless groups of a physical problem with the
	Buckingham Pi theorem.

	Each variable is described by its exponents of mass (M), length (L)
	and time (T). The exponent vectors form a 3×n dimensional matrix whose
	null space, computed in exact rational arithmetic, yields the Pi terms.

	Settings may come from flags, PITHEOREM_* environment variables
	(PITHEOREM_OUTPUT, PITHEOREM_LOG_LEVEL, PITHEOREM_JOBS,
	PITHEOREM_INTEGER_BASIS, PITHEOREM_VERIFY) or a YAML file given with
	--config, in that order of precedence.
`)

func (a *app) rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pitheorem",
		Short:         "Buckingham Pi theorem calculator",
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindFlags(a.v, cmd.Flags()); err != nil {
				return err
			}
			if err := readConfigFile(a.v, a.configFile); err != nil {
				return err
			}
			cfg, err := loadConfig(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log.SetLevel(cfg.LogLevel)
			a.log.WithFields(logrus.Fields{
				"command": cmd.Name(),
				"output":  cfg.Output,
				"jobs":    cfg.Jobs,
			}).Debug("configuration resolved")

			return nil
		},
	}

	fs := cmd.PersistentFlags()
	fs.StringVar(&a.configFile, keyConfig, "", "YAML file with default settings")
	fs.StringP(keyOutput, "o", DefaultOutput, "output format: text, unicode, latex, yaml or json")
	fs.String(keyLogLevel, DefaultLogLevel, "log level: panic, fatal, error, warning, info, debug or trace")

	cmd.AddCommand(
		a.solveCommand(),
		a.matrixCommand(),
		a.presetsCommand(),
	)

	return cmd
}
