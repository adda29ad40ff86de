// Public domain.

package mtprog

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/soniakeys/moontool/jtime"
)

// layouts accepted for times without a zone offset.  They are parsed in
// the display time zone.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseTime parses s as Unix seconds, an RFC 3339 date-time, or one of
// localLayouts in loc.
func parseTime(s string, loc *time.Location) (jtime.Instant, error) {
	if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
		return jtime.At(sec), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return jtime.AtTime(t), nil
	}
	for _, l := range localLayouts {
		if t, err := time.ParseInLocation(l, s, loc); err == nil {
			return jtime.AtTime(t), nil
		}
	}
	return jtime.Instant{}, fmt.Errorf("invalid time %q: want Unix seconds or RFC 3339", s)
}

// timeFlag returns the instant given by the named flag, or an unset
// Instant if the flag was not given.
func (p *program) timeFlag(cmd *cobra.Command, name string) (jtime.Instant, error) {
	if !cmd.Flags().Changed(name) {
		return jtime.Instant{}, nil
	}
	s, err := cmd.Flags().GetString(name)
	if err != nil {
		return jtime.Instant{}, err
	}
	t, err := parseTime(s, p.loc)
	if err != nil {
		return t, fmt.Errorf("--%s: %w", name, err)
	}
	return t, nil
}
