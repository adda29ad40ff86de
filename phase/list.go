// Public domain.

package phase

import (
	"iter"

	"github.com/soniakeys/moontool/jtime"
)

// Event is a computed phase time.
type Event struct {
	K        float64 // lunation index
	Selector Selector
	JD       float64 // Julian date
	Unix     int64   // JD as Unix seconds
}

// List returns the phases falling in the time range [start, stop).
//
// The sequence is empty if either bound is unset or if stop is not after
// start.  It is computed lazily and may be ranged over any number of times.
// Every event satisfies start <= e.Unix < stop.
func List(start, stop jtime.Instant) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		s0, ok0 := start.Unix()
		s1, ok1 := stop.Unix()
		if !ok0 || !ok1 || s1 <= s0 {
			return
		}
		// begin a couple of lunations early and scan forward.
		for k := kEstimate(jtime.FromUnix(s0)) - 1; ; k++ {
			for s := New; s <= LastQuarter; s++ {
				jd := truePhase(k, s)
				u := jtime.ToUnixSec(jd)
				if u >= s1 {
					return
				}
				if u >= s0 && !yield(Event{k, s, jd, u}) {
					return
				}
			}
		}
	}
}

// Flat returns the phases in [start, stop) as a single slice of integers.
//
// The first element is the Selector of the first phase in the range, as an
// integer 0 to 3.  The remaining elements are Unix times of successive
// phases.  Flat returns nil when List is empty.
func Flat(start, stop jtime.Instant) []int64 {
	var f []int64
	for e := range List(start, stop) {
		if f == nil {
			f = []int64{int64(e.Selector)}
		}
		f = append(f, e.Unix)
	}
	return f
}
