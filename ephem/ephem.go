// Public domain.

// Package ephem computes the phase, age, and distance of the Moon, and the
// distance of the Sun, for an instant.
//
// The model is that of moontool: the Sun on a Keplerian ellipse and the
// Moon's longitude corrected for evection, the annual equation, the
// equation of the centre, and variation.  Orbital elements are referred to
// epoch 1980 January 0.0.
package ephem

import (
	"math"

	"github.com/soniakeys/unit"

	"github.com/soniakeys/moontool/jtime"
	"github.com/soniakeys/moontool/kepler"
	"github.com/soniakeys/moontool/phase"
)

// Epoch is 1980 January 0.0, the epoch of the orbital elements.
const Epoch = 2444238.5

// Sun's apparent orbit.
const (
	sunElongE  = 278.833540 // ecliptic longitude at epoch, degrees
	sunElongP  = 282.596403 // ecliptic longitude at perigee, degrees
	sunEcc     = .016718    // eccentricity of Earth's orbit
	sunSMax    = 1.495985e8 // semi-major axis of Earth's orbit, km
	sunAngSize = .533128    // angular size at semi-major axis, degrees
)

// Moon's orbit.
const (
	moonMLong   = 64.975464  // mean longitude at epoch, degrees
	moonMLongP  = 349.383063 // mean longitude of perigee at epoch
	moonMLNode  = 151.950429 // mean longitude of the node at epoch
	moonInc     = 5.145396   // inclination
	moonEcc     = .0549      // eccentricity
	moonAngSize = .5181      // angular size at semi-major axis, degrees
	moonSMax    = 384401.0   // semi-major axis, km
	moonPar     = .9507      // parallax at semi-major axis, degrees
)

// Sample is the state of the Moon and Sun at an instant, as seen from the
// centre of the Earth.
type Sample struct {
	Phase       float64 // fraction of the lunation elapsed, in [0, 1)
	Illuminated float64 // illuminated fraction of the disk, in [0, 1]
	Age         float64 // days since new moon
	MoonDist    float64 // km
	MoonDiam    unit.Angle
	SunDist     float64 // km
	SunDiam     unit.Angle

	MoonParallax unit.Angle
	MoonLon      unit.Angle // ecliptic longitude
	MoonLat      unit.Angle // ecliptic latitude
	SunLon       unit.Angle // geocentric ecliptic longitude
}

// Compute returns the Sample for time t.  An unset t means the current time.
//
// The error return is non-nil only if the Kepler solution for the Sun
// fails to converge.
func Compute(t jtime.Instant) (s Sample, err error) {
	day := t.JD() - Epoch

	// the Sun.  mean anomaly n is referred to epoch as m.
	n := fix(360 / 365.2422 * day)
	m := fix(n + sunElongE - sunElongP)
	ea, err := kepler.Solve(unit.AngleFromDeg(m), sunEcc)
	if err != nil {
		return s, err
	}
	ec := kepler.TrueAnomaly(ea, sunEcc).Deg()
	λSun := fix(ec + sunElongP)
	// orbital distance factor
	f := (1 + sunEcc*dcos(ec)) / (1 - sunEcc*sunEcc)
	s.SunDist = sunSMax / f
	s.SunDiam = unit.AngleFromDeg(f * sunAngSize)
	s.SunLon = unit.AngleFromDeg(λSun)

	// the Moon.  mean longitude, mean anomaly, mean longitude of the node.
	ml := fix(13.1763966*day + moonMLong)
	mm := fix(ml - .1114041*day - moonMLongP)
	mn := fix(moonMLNode - .0529539*day)
	// evection, annual equation, and a third correction give the
	// corrected anomaly.
	ev := 1.2739 * dsin(2*(ml-λSun)-mm)
	ae := .1858 * dsin(m)
	a3 := .37 * dsin(m)
	mmp := mm + ev - ae - a3
	// equation of the centre and a fourth correction give the corrected
	// longitude, variation then gives true longitude.
	mec := 6.2886 * dsin(mmp)
	a4 := .214 * dsin(2*mmp)
	lp := ml + ev + mec - ae + a4
	v := .6583 * dsin(2*(lp-λSun))
	lpp := lp + v
	// corrected longitude of the node
	np := mn - .16*dsin(m)

	y := dsin(lpp-np) * dcos(moonInc)
	x := dcos(lpp - np)
	s.MoonLon = unit.AngleFromDeg(fix(unit.Angle(math.Atan2(y, x)).Deg() + np))
	s.MoonLat = unit.Angle(math.Asin(dsin(lpp-np) * dsin(moonInc)))

	age := lpp - λSun // degrees
	s.Illuminated = (1 - dcos(age)) / 2
	s.Phase = fix(age) / 360
	s.Age = phase.SynMonth * s.Phase

	s.MoonDist = moonSMax * (1 - moonEcc*moonEcc) / (1 + moonEcc*dcos(mmp+mec))
	df := s.MoonDist / moonSMax
	s.MoonDiam = unit.AngleFromDeg(moonAngSize / df)
	s.MoonParallax = unit.AngleFromDeg(moonPar / df)
	return s, nil
}

// Values returns the seven principal quantities of s in a fixed order:
// phase, illuminated fraction, age in days, Moon distance in km,
// Moon angular diameter in degrees, Sun distance in km, and Sun angular
// diameter in degrees.
func (s Sample) Values() [7]float64 {
	return [7]float64{
		s.Phase,
		s.Illuminated,
		s.Age,
		s.MoonDist,
		s.MoonDiam.Deg(),
		s.SunDist,
		s.SunDiam.Deg(),
	}
}

// Name describes the phase as "New Moon" or "Full Moon" when the
// illuminated fraction rounds to 0 or 100 percent, otherwise as "Waxing"
// or "Waning".
func (s Sample) Name() string {
	switch math.Round(s.Illuminated * 100) {
	case 0:
		return "New Moon"
	case 100:
		return "Full Moon"
	}
	if s.Age > phase.SynMonth/2 {
		return "Waning"
	}
	return "Waxing"
}

// fix reduces d to [0, 360).  A tiny negative d would otherwise round up
// to 360.
func fix(d float64) float64 {
	if r := unit.PMod(d, 360); r < 360 {
		return r
	}
	return 0
}

func dsin(d float64) float64 { return unit.AngleFromDeg(d).Sin() }
func dcos(d float64) float64 { return unit.AngleFromDeg(d).Cos() }
