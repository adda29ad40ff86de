// Public domain.

package phase

import (
	"github.com/soniakeys/moontool/jtime"
)

// Lunation holds Julian dates of the five phases bounding a lunation:
// new moon, first quarter, full moon, last quarter, and the following
// new moon.
type Lunation [5]float64

// Unix returns the phase times of l as Unix seconds.
func (l Lunation) Unix() (u [5]int64) {
	for i, jd := range l {
		u[i] = jtime.ToUnixSec(jd)
	}
	return
}

// Hunt finds the phases of the lunation containing time t.
//
// An unset t means the current time.  The result satisfies
//
//	l.Unix()[0] <= t < l.Unix()[4]
//
// Hunt returns ErrNoConvergence if the search fails to bracket t, which
// does not happen for dates a float64 Julian date can represent well.
func Hunt(t jtime.Instant) (l Lunation, err error) {
	sec := t.Resolve()
	k1, err := bracket(jtime.FromUnix(sec))
	if err != nil {
		return l, err
	}
	k2 := k1 + 1

	// true new moon can differ from mean by more than half a day.
	// shift by a lunation where that moves the bracket off of t.
	switch {
	case jtime.ToUnixSec(truePhase(k1, New)) > sec:
		k1, k2 = k1-1, k1
	case jtime.ToUnixSec(truePhase(k2, New)) <= sec:
		k1, k2 = k2, k2+1
	}
	for s := New; s <= LastQuarter; s++ {
		l[s] = truePhase(k1, s)
	}
	l[4] = truePhase(k2, New)
	return l, nil
}

// bracket returns k such that the mean new moons of lunations k and k+1
// bracket Julian date sdate, searching from an estimate somewhat before
// it.
func bracket(sdate float64) (float64, error) {
	adate := sdate - 45
	k1 := kEstimate(adate)
	nt1 := MeanPhase(adate, k1)
	adate = nt1
	for i := 0; i < MaxIter; i++ {
		adate += SynMonth
		k2 := k1 + 1
		nt2 := MeanPhase(adate, k2)
		if nt1 <= sdate && nt2 > sdate {
			return k1, nil
		}
		nt1, k1 = nt2, k2
	}
	return 0, ErrNoConvergence
}
