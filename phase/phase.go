// Public domain.

// Package phase computes times of the principal phases of the Moon.
//
// Phase times come from the classical series referred to the mean new moon
// of 1900 January 0.5.  Lunation index k counts synodic months from that
// new moon; k plus a selector fraction of 0, .25, .5, or .75 picks new
// moon, first quarter, full moon, or last quarter of lunation k.
//
// Results are Julian dates.  Accuracy is a few minutes over the modern era.
package phase

import (
	"errors"
	"fmt"
	"math"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/unit"

	"github.com/soniakeys/moontool/jtime"
)

const (
	// SynMonth is the mean synodic month, new moon to new moon, in days.
	SynMonth = 29.53058868
	// J1900 is the Julian date of 1900 January 0.5.
	J1900 = 2415020.0
	// lunations per Julian century
	lunCentury = 1236.85
)

// MaxIter bounds the lunation bracket search in Hunt.
const MaxIter = 100

var (
	// ErrInvalidSelector is returned by TruePhase for a phase selector
	// other than 0, .25, .5, or .75.
	ErrInvalidSelector = errors.New("phase: invalid phase selector")
	// ErrNoConvergence is returned by Hunt if the bracket search exceeds
	// MaxIter lunations.
	ErrNoConvergence = errors.New("phase: lunation search did not converge")
)

// Selector identifies one of the four principal phases within a lunation.
type Selector int

// Principal phases, in order within a lunation.
const (
	New Selector = iota
	FirstQuarter
	Full
	LastQuarter
)

var selectorName = [...]string{
	"New Moon",
	"First quarter",
	"Full moon",
	"Last quarter",
}

func (s Selector) String() string {
	if s < New || s > LastQuarter {
		return fmt.Sprintf("Selector(%d)", int(s))
	}
	return selectorName[s]
}

// Fraction returns the fraction of a lunation at which phase s occurs.
func (s Selector) Fraction() float64 {
	return float64(s) / 4
}

// True returns the true time of phase s in lunation k.
func (s Selector) True(k float64) (float64, error) {
	return TruePhase(k, s.Fraction())
}

// MeanPhase returns the time of the mean new moon of lunation k.
//
// Argument sdate is a Julian date near the phase, used only for the
// secular terms.  An estimate of k for a date is
//
//	k = (year - 1900) * 12.3685
//
// with year a fractional year.
func MeanPhase(sdate, k float64) float64 {
	return mean(k, (sdate-J1900)/36525)
}

// mean evaluates the mean phase series at lunation k, t Julian centuries
// from J1900.
func mean(k, t float64) float64 {
	return 2415020.75933 + SynMonth*k +
		base.Horner(t, 0, 0, .0001178, -.000000155) +
		.00033*dsin(base.Horner(t, 166.56, 132.87, -.009173))
}

// TruePhase returns the true, corrected time of a phase.
//
// Argument k is a lunation index, sel is a phase selector, one of
// 0, .25, .5, .75 for new moon, first quarter, full moon, and last quarter.
// A selector not within .01 of one of these returns ErrInvalidSelector.
func TruePhase(k, sel float64) (float64, error) {
	switch {
	case math.Abs(sel) < .01:
		return truePhase(k, New), nil
	case math.Abs(sel-.25) < .01:
		return truePhase(k, FirstQuarter), nil
	case math.Abs(sel-.5) < .01:
		return truePhase(k, Full), nil
	case math.Abs(sel-.75) < .01:
		return truePhase(k, LastQuarter), nil
	}
	return 0, fmt.Errorf("%w: %v", ErrInvalidSelector, sel)
}

func truePhase(k float64, s Selector) float64 {
	k += s.Fraction()
	t := k / lunCentury
	pt := mean(k, t)
	// Sun's mean anomaly, Moon's mean anomaly, Moon's argument of latitude
	m := base.Horner(t, 359.2242+29.10535608*k, 0, -.0000333, -.00000347)
	mp := base.Horner(t, 306.0253+385.81691806*k, 0, .0107306, .00001236)
	f := base.Horner(t, 21.2964+390.67050646*k, 0, -.0016528, -.00000239)
	if s == New || s == Full {
		return pt +
			(.1734-.000393*t)*dsin(m) +
			.0021*dsin(2*m) -
			.4068*dsin(mp) +
			.0161*dsin(2*mp) -
			.0004*dsin(3*mp) +
			.0104*dsin(2*f) -
			.0051*dsin(m+mp) -
			.0074*dsin(m-mp) +
			.0004*dsin(2*f+m) -
			.0004*dsin(2*f-m) -
			.0006*dsin(2*f+mp) +
			.001*dsin(2*f-mp) +
			.0005*dsin(m+2*mp)
	}
	pt += (.1721-.0004*t)*dsin(m) +
		.0021*dsin(2*m) -
		.628*dsin(mp) +
		.0089*dsin(2*mp) -
		.0004*dsin(3*mp) +
		.0079*dsin(2*f) -
		.0119*dsin(m+mp) -
		.0047*dsin(m-mp) +
		.0003*dsin(2*f+m) -
		.0004*dsin(2*f-m) -
		.0006*dsin(2*f+mp) +
		.0021*dsin(2*f-mp) +
		.0003*dsin(m+2*mp) +
		.0004*dsin(m-2*mp) -
		.0003*dsin(2*m+mp)
	qc := .0028 - .0004*dcos(m) + .0003*dcos(mp)
	if s == FirstQuarter {
		return pt + qc
	}
	return pt - qc
}

func dsin(d float64) float64 { return unit.AngleFromDeg(d).Sin() }
func dcos(d float64) float64 { return unit.AngleFromDeg(d).Cos() }

// kEstimate returns the lunation index of the mean new moon near the start
// of the calendar month containing jd.
func kEstimate(jd float64) float64 {
	y, m, _ := jtime.Calendar(jd)
	return math.Floor((float64(y) + float64(m-1)/12 - 1900) * 12.3685)
}
