// Public domain.

package phase_test

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/soniakeys/meeus/v3/moonphase"
	xrand "golang.org/x/exp/rand"

	"github.com/soniakeys/moontool/jtime"
	"github.com/soniakeys/moontool/phase"
)

var pst = time.FixedZone("PST", -8*3600)

const layout = "2006-01-02 15:04:05"

func ExampleList() {
	start := jtime.AtTime(time.Date(2008, 10, 1, 0, 0, 0, 0, pst))
	stop := jtime.AtTime(time.Date(2008, 10, 31, 0, 0, 0, 0, pst))
	for e := range phase.List(start, stop) {
		fmt.Printf("%-13s %s\n", e.Selector,
			time.Unix(e.Unix, 0).UTC().Format(layout))
	}
	// Output:
	// First quarter 2008-10-07 09:05:54
	// Full moon     2008-10-14 20:04:29
	// Last quarter  2008-10-21 11:56:53
	// New Moon      2008-10-28 23:14:50
}

func ExampleHunt() {
	l, err := phase.Hunt(jtime.AtTime(time.Date(2008, 10, 31, 0, 0, 0, 0, pst)))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, u := range l.Unix() {
		fmt.Println(time.Unix(u, 0).UTC().Format(layout))
	}
	// Output:
	// 2008-10-28 23:14:50
	// 2008-11-06 04:04:37
	// 2008-11-13 06:19:20
	// 2008-11-19 21:33:04
	// 2008-11-27 16:55:54
}

func TestFlat(t *testing.T) {
	start := jtime.At(1222848000) // 2008 Oct 1 00:00 PST
	stop := jtime.At(1225440000)  // 2008 Oct 31 00:00 PST
	want := []int64{1, 1223370354, 1224014669, 1224590213, 1225235690}
	got := phase.Flat(start, stop)
	if len(got) != len(want) {
		t.Fatalf("Flat = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Flat = %v, want %v", got, want)
		}
	}
}

func TestTruePhaseSelector(t *testing.T) {
	for _, sel := range []float64{0, .005, .25, .255, .5, .745, .75, -.005} {
		if _, err := phase.TruePhase(1345, sel); err != nil {
			t.Errorf("TruePhase(1345, %v): %v", sel, err)
		}
	}
	for _, sel := range []float64{.1, .3, .6, 1, -.5, .02, math.NaN()} {
		_, err := phase.TruePhase(1345, sel)
		if !errors.Is(err, phase.ErrInvalidSelector) {
			t.Errorf("TruePhase(1345, %v) error = %v, want ErrInvalidSelector",
				sel, err)
		}
	}
	jd, _ := phase.TruePhase(1345, .5)
	if sj, _ := phase.Full.True(1345); sj != jd {
		t.Errorf("Full.True(1345) = %v, TruePhase = %v", sj, jd)
	}
}

func TestSelectorString(t *testing.T) {
	for s, want := range map[phase.Selector]string{
		phase.New:          "New Moon",
		phase.FirstQuarter: "First quarter",
		phase.Full:         "Full moon",
		phase.LastQuarter:  "Last quarter",
		phase.Selector(7):  "Selector(7)",
	} {
		if got := s.String(); got != want {
			t.Errorf("Selector %d String = %q, want %q", int(s), got, want)
		}
	}
}

// Phases of each lunation from 1900 to 2100 occur in selector order, and
// each phase strictly follows the same phase of the previous lunation.
func TestOrder(t *testing.T) {
	last := math.Inf(-1)
	prev := [4]float64{}
	for k := 0.; k < 2474; k++ {
		for s := phase.New; s <= phase.LastQuarter; s++ {
			jd, err := s.True(k)
			if err != nil {
				t.Fatal(err)
			}
			if jd <= last {
				t.Fatalf("k %v %s at %v, not after previous phase %v",
					k, s, jd, last)
			}
			if k > 0 && jd <= prev[s] {
				t.Fatalf("k %v %s not after lunation k-1", k, s)
			}
			last, prev[s] = jd, jd
		}
	}
}

func TestMeanPhase(t *testing.T) {
	// mean phases of successive lunations are one synodic month apart,
	// to within the small periodic term.
	for k := 1000.; k < 1500; k++ {
		jd := phase.MeanPhase(phase.J1900+k*phase.SynMonth, k)
		jd1 := phase.MeanPhase(phase.J1900+(k+1)*phase.SynMonth, k+1)
		if d := jd1 - jd - phase.SynMonth; math.Abs(d) > .001 {
			t.Fatalf("k %v: mean lunation differs from SynMonth by %v", k, d)
		}
	}
}

// Compare with Meeus chapter 49 over 1950 to 2050.  Lunation 0 of Meeus
// is the new moon of 2000 January 6, lunation 1237 here.  Meeus snaps the
// year to the nearest lunation of the requested phase, so the year must
// carry the phase fraction.
func TestMeeus(t *testing.T) {
	const tol = .005 // days
	fns := []func(float64) float64{
		moonphase.New, moonphase.First, moonphase.Full, moonphase.Last,
	}
	for k := -620.; k <= 620; k++ {
		for s := phase.New; s <= phase.LastQuarter; s++ {
			year := 2000 + (k+s.Fraction())/12.3685
			jd, err := s.True(k + 1237)
			if err != nil {
				t.Fatal(err)
			}
			if d := jd - fns[s](year); math.Abs(d) > tol {
				t.Fatalf("k %v %s differs from Meeus by %.4f days", k, s, d)
			}
		}
	}
}

// sampled times, 1900 to 2100
func sampleTimes(n int) []int64 {
	rnd := xrand.New(&xrand.PCGSource{})
	rnd.Seed(3)
	const t0, t1 = -2208988800, 4102444800
	ts := make([]int64, n)
	for i := range ts {
		ts[i] = t0 + rnd.Int63n(t1-t0)
	}
	return ts
}

func TestHunt(t *testing.T) {
	for _, sec := range sampleTimes(2000) {
		l, err := phase.Hunt(jtime.At(sec))
		if err != nil {
			t.Fatal(err)
		}
		u := l.Unix()
		if !(u[0] <= sec && sec < u[4]) {
			t.Fatalf("Hunt(%d) = %v does not bracket", sec, u)
		}
		for i := 1; i < 5; i++ {
			if u[i] <= u[i-1] {
				t.Fatalf("Hunt(%d) = %v not increasing", sec, u)
			}
		}
		// List over the lunation finds the same four phases
		i := 0
		for e := range phase.List(jtime.At(u[0]), jtime.At(u[4])) {
			if i > 3 || e.Selector != phase.Selector(i) || e.Unix != u[i] {
				t.Fatalf("Hunt(%d) = %v, List event %d = %+v", sec, u, i, e)
			}
			i++
		}
		if i != 4 {
			t.Fatalf("Hunt(%d): List found %d phases", sec, i)
		}
	}
}

func TestHuntBoundary(t *testing.T) {
	// exactly at a new moon, the lunation begins there.
	const newMoon = 1225235690
	for _, sec := range []int64{newMoon - 1, newMoon, newMoon + 1} {
		l, err := phase.Hunt(jtime.At(sec))
		if err != nil {
			t.Fatal(err)
		}
		u := l.Unix()
		switch {
		case sec < newMoon && u[4] != newMoon:
			t.Errorf("Hunt(%d) next new moon = %d, want %d", sec, u[4], newMoon)
		case sec >= newMoon && u[0] != newMoon:
			t.Errorf("Hunt(%d) new moon = %d, want %d", sec, u[0], newMoon)
		}
	}
}

func TestHuntNow(t *testing.T) {
	l, err := phase.Hunt(jtime.Instant{})
	if err != nil {
		t.Fatal(err)
	}
	now := time.Now().Unix()
	if u := l.Unix(); u[0] > now || u[4] < now {
		t.Fatalf("Hunt(unset) = %v, does not contain now %d", u, now)
	}
}

func TestListRange(t *testing.T) {
	const maxGap = 8.5 * 86400 // longest interval between principal phases
	rnd := xrand.New(&xrand.PCGSource{})
	rnd.Seed(3)
	for _, start := range sampleTimes(500) {
		stop := start + 1 + rnd.Int63n(400*86400)
		prev := start
		var prevSel phase.Selector = -1
		n := 0
		for e := range phase.List(jtime.At(start), jtime.At(stop)) {
			if e.Unix < start || e.Unix >= stop {
				t.Fatalf("List(%d, %d) event %d out of range", start, stop, e.Unix)
			}
			if n > 0 && e.Unix <= prev {
				t.Fatalf("List(%d, %d) not increasing", start, stop)
			}
			if e.Unix-prev > maxGap {
				t.Fatalf("List(%d, %d) gap before %d", start, stop, e.Unix)
			}
			if prevSel >= 0 && e.Selector != (prevSel+1)%4 {
				t.Fatalf("List(%d, %d) %s follows %s", start, stop, e.Selector, prevSel)
			}
			prev, prevSel = e.Unix, e.Selector
			n++
		}
		if stop-prev > maxGap {
			t.Fatalf("List(%d, %d) ends early at %d", start, stop, prev)
		}
	}
}

func TestListEmpty(t *testing.T) {
	x := jtime.At(1222848000)
	y := jtime.At(1225440000)
	for _, c := range []struct {
		name        string
		start, stop jtime.Instant
	}{
		{"unset start", jtime.Instant{}, y},
		{"unset stop", x, jtime.Instant{}},
		{"both unset", jtime.Instant{}, jtime.Instant{}},
		{"stop before start", y, x},
		{"empty range", x, x},
	} {
		for e := range phase.List(c.start, c.stop) {
			t.Errorf("%s: got event %+v", c.name, e)
		}
		if f := phase.Flat(c.start, c.stop); f != nil {
			t.Errorf("%s: Flat = %v", c.name, f)
		}
	}
	// the epoch is an instant like any other
	if f := phase.Flat(jtime.At(0), jtime.At(40*86400)); len(f) < 5 {
		t.Errorf("Flat from epoch = %v", f)
	}
}

func TestListRestart(t *testing.T) {
	seq := phase.List(jtime.At(1222848000), jtime.At(1225440000+365*86400))
	var first []phase.Event
	for e := range seq {
		first = append(first, e)
	}
	i := 0
	for e := range seq {
		if e != first[i] {
			t.Fatalf("second pass event %d = %+v, first pass %+v", i, e, first[i])
		}
		i++
		if i == 3 {
			break
		}
	}
	if i != 3 {
		t.Fatalf("second pass stopped after %d events", i)
	}
}
