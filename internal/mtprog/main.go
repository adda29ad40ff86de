// Public domain.

// Package mtprog implements the moontool command.
package mtprog

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/soniakeys/exit"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/soniakeys/moontool/internal/logging"
	"github.com/soniakeys/moontool/internal/mtconfig"
)

const versionString = "moontool version 1.0 Go source."
const copyrightString = "Public domain."

func Main() {
	defer exit.Handler()

	if err := NewRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		exit.Log(err)
	}
}

// program is state shared by the subcommands, filled in by setup before
// any subcommand runs.
type program struct {
	out, errOut io.Writer
	cfgFile     string

	cfg mtconfig.Config
	loc *time.Location
	log zerolog.Logger
}

// NewRootCmd builds the moontool command tree writing results to out and
// log messages to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	p := &program{out: out, errOut: errOut, log: zerolog.Nop()}
	root := &cobra.Command{
		Use:   "moontool",
		Short: "Phases of the Moon",
		Long: `Moontool computes times of the principal phases of the Moon and
the state of the Moon and Sun at an instant.

Times may be given as Unix seconds or as RFC 3339 date-times.  A date-time
without a zone offset, such as "2008-10-31 00:00" or "2008-10-31", is taken
in the display time zone.`,
		Version:           versionString + "\n" + copyrightString,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: p.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetVersionTemplate("{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&p.cfgFile, "config", "", "config file (default .moontool.yaml)")
	pf.String("tz", "", "display time zone (default Local)")
	pf.String("format", "", "display time layout, Go reference time notation")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	_ = viper.BindPFlag("timezone", pf.Lookup("tz"))
	_ = viper.BindPFlag("time_format", pf.Lookup("format"))
	_ = viper.BindPFlag("log_level", pf.Lookup("log-level"))

	root.AddCommand(p.huntCmd(), p.listCmd(), p.phaseCmd())
	return root
}

func (p *program) setup(cmd *cobra.Command, args []string) error {
	if err := mtconfig.Init(p.cfgFile); err != nil {
		return err
	}
	cfg, err := mtconfig.Load()
	if err != nil {
		return err
	}
	if p.log, err = logging.Setup(cfg.LogLevel, p.errOut); err != nil {
		return err
	}
	if p.loc, err = cfg.Location(); err != nil {
		return err
	}
	p.cfg = cfg
	p.log.Debug().
		Str("config", viper.ConfigFileUsed()).
		Str("timezone", p.loc.String()).
		Str("command", cmd.Name()).
		Msg("configuration loaded")
	return nil
}

// formatUnix renders Unix seconds in the display zone and layout.
func (p *program) formatUnix(sec int64) string {
	return time.Unix(sec, 0).In(p.loc).Format(p.cfg.TimeFormat)
}

func (p *program) printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}
