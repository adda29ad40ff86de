// Public domain.

// Package jtime converts between Unix time and astronomical Julian dates.
//
// Julian dates here are plain day counts with the fraction of day, noon
// based.  No distinction is made between UT and TT; leap seconds are
// ignored.
package jtime

import (
	"math"
	"time"
)

const (
	// UnixEpoch is the Julian date of 1970 January 1.0 UT.
	UnixEpoch = 2440587.5
	// SecPerDay, seconds per Julian day.
	SecPerDay = 86400
	// Gregorian is the first Julian day number of the Gregorian calendar,
	// 1582 October 15.
	Gregorian = 2299161.0
)

// FromUnix returns the Julian date corresponding to Unix time sec.
func FromUnix(sec int64) float64 {
	return float64(sec)/SecPerDay + UnixEpoch
}

// ToUnix returns Unix time in seconds, with fraction, for Julian date jd.
// It is the inverse of FromUnix.
func ToUnix(jd float64) float64 {
	return (jd - UnixEpoch) * SecPerDay
}

// ToUnixSec returns Unix time for jd rounded to the nearest second.
//
// ToUnixSec(FromUnix(sec)) == sec for any sec within the range of dates
// float64 Julian dates can resolve to better than half a second.
func ToUnixSec(jd float64) int64 {
	return int64(math.Round(ToUnix(jd)))
}

// Calendar converts a Julian date to a calendar date.
//
// Dates before jd 2299161 are in the Julian calendar, later dates are
// Gregorian.  Day includes the fraction of day.
func Calendar(jd float64) (year, month int, day float64) {
	z, f := math.Modf(jd + .5) // astronomical to civil
	if f < 0 {
		z--
		f++
	}
	a := z
	if z >= Gregorian {
		α := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + α - math.Floor(α/4)
	}
	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)
	day = b - d - math.Floor(30.6001*e) + f
	if e < 14 {
		month = int(e) - 1
	} else {
		month = int(e) - 13
	}
	if month > 2 {
		year = int(c) - 4716
	} else {
		year = int(c) - 4715
	}
	return
}

// Instant is an optional point in time, held as Unix seconds.
//
// The zero value is unset.  An unset Instant is distinct from At(0),
// which is the Unix epoch itself.
type Instant struct {
	sec int64
	set bool
}

// At returns a set Instant for Unix time sec.
func At(sec int64) Instant {
	return Instant{sec, true}
}

// AtTime returns a set Instant for t, truncated to the second.
func AtTime(t time.Time) Instant {
	return At(t.Unix())
}

// IsSet reports whether i holds a time.
func (i Instant) IsSet() bool { return i.set }

// Unix returns the Unix seconds of i and whether i is set.
func (i Instant) Unix() (int64, bool) { return i.sec, i.set }

// Resolve returns the Unix seconds of i, or the current time if i is unset.
func (i Instant) Resolve() int64 {
	if i.set {
		return i.sec
	}
	return time.Now().Unix()
}

// JD returns the Julian date of i, resolving unset to the current time.
func (i Instant) JD() float64 {
	return FromUnix(i.Resolve())
}
