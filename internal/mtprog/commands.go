// Public domain.

package mtprog

import (
	"errors"
	"fmt"

	"github.com/soniakeys/sexagesimal"
	"github.com/spf13/cobra"

	"github.com/soniakeys/moontool/ephem"
	"github.com/soniakeys/moontool/jtime"
	"github.com/soniakeys/moontool/phase"
)

const timeUsage = "time, Unix seconds or RFC 3339"

func (p *program) huntCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hunt",
		Short: "Show the phases of the lunation containing a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := p.timeFlag(cmd, "at")
			if err != nil {
				return err
			}
			l, err := phase.Hunt(t)
			if err != nil {
				return err
			}
			u := l.Unix()
			p.log.Debug().Float64("jd", l[0]).Float64("next", l[4]).
				Msg("lunation found")
			for i, sec := range u {
				p.printf("%-13s %s\n", phase.Selector(i%4), p.formatUnix(sec))
			}
			return nil
		},
	}
	cmd.Flags().String("at", "", timeUsage+" (default now)")
	return cmd
}

func (p *program) listCmd() *cobra.Command {
	var (
		days int
		flat bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the phases falling in a time range",
		Long: `List shows the principal phases falling at or after --start and
before --stop.  In place of --stop, --days gives the length of the range.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := p.timeFlag(cmd, "start")
			if err != nil {
				return err
			}
			stop, err := p.timeFlag(cmd, "stop")
			if err != nil {
				return err
			}
			if !stop.IsSet() {
				if !cmd.Flags().Changed("days") {
					days = p.cfg.ListDays
				}
				if days <= 0 {
					return fmt.Errorf("--days must be positive, got %d", days)
				}
				s0, _ := start.Unix()
				stop = jtime.At(s0 + int64(days)*jtime.SecPerDay)
			}
			s0, _ := start.Unix()
			s1, _ := stop.Unix()
			if s1 <= s0 {
				return errors.New("--stop must be after --start")
			}
			p.log.Debug().Int64("start", s0).Int64("stop", s1).Msg("listing phases")

			if flat {
				for _, n := range phase.Flat(start, stop) {
					p.printf("%d\n", n)
				}
				return nil
			}
			n := 0
			for e := range phase.List(start, stop) {
				p.printf("%-13s %s\n", e.Selector, p.formatUnix(e.Unix))
				n++
			}
			p.log.Debug().Int("events", n).Msg("list done")
			return nil
		},
	}
	f := cmd.Flags()
	f.String("start", "", timeUsage)
	f.String("stop", "", timeUsage)
	f.IntVar(&days, "days", 0, "days in range (default from config, 30)")
	f.BoolVar(&flat, "flat", false,
		"print the selector of the first phase, then Unix times, one per line")
	_ = cmd.MarkFlagRequired("start")
	cmd.MarkFlagsMutuallyExclusive("stop", "days")
	return cmd
}

func (p *program) phaseCmd() *cobra.Command {
	var values bool
	cmd := &cobra.Command{
		Use:   "phase",
		Short: "Show the state of the Moon and Sun at a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := p.timeFlag(cmd, "at")
			if err != nil {
				return err
			}
			sec := t.Resolve()
			s, err := ephem.Compute(jtime.At(sec))
			if err != nil {
				return err
			}
			p.log.Debug().Int64("at", sec).Float64("jd", jtime.FromUnix(sec)).
				Msg("ephemeris computed")
			if values {
				for _, v := range s.Values() {
					p.printf("%v\n", v)
				}
				return nil
			}
			p.printf("Time: %s\n", p.formatUnix(sec))
			p.printf("Moon Phase: %s\n", s.Name())
			p.printf("Percent Illuminated: %.0f%%\n", s.Illuminated*100)
			p.printf("Moon Age: %.2f days\n", s.Age)
			p.printf("Moon Distance: %.0f km\n", s.MoonDist)
			p.printf("Moon Diameter: %.1s\n", sexa.FmtAngle(s.MoonDiam))
			p.printf("Moon Longitude: %.0s\n", sexa.FmtAngle(s.MoonLon))
			p.printf("Moon Latitude: %.0s\n", sexa.FmtAngle(s.MoonLat))
			p.printf("Sun Distance: %.0f km\n", s.SunDist)
			p.printf("Sun Diameter: %.1s\n", sexa.FmtAngle(s.SunDiam))
			return nil
		},
	}
	cmd.Flags().String("at", "", timeUsage+" (default now)")
	cmd.Flags().BoolVar(&values, "values", false,
		"print phase, illuminated fraction, age, Moon distance and diameter, Sun distance and diameter")
	return cmd
}
