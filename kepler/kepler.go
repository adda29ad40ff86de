// Public domain.

// Package kepler solves Kepler's equation for elliptical orbits.
package kepler

import (
	"errors"
	"math"

	mk "github.com/soniakeys/meeus/v3/kepler"
	"github.com/soniakeys/unit"
)

// Epsilon is the convergence limit on the residual of Kepler's equation,
// in radians.
const Epsilon = 1e-6

// MaxIter bounds Newton iterations in Solve.  Eccentricities of the Sun
// and Moon converge in three or four.
const MaxIter = 100

// ErrNoConvergence is returned by Solve when MaxIter is exceeded.
var ErrNoConvergence = errors.New("kepler: no convergence")

// Solve returns eccentric anomaly E given mean anomaly m and
// eccentricity e, solving E - e sin E = M by Newton-Raphson.
//
// Iteration starts from E = M and stops once the residual of the
// equation, evaluated before each step, is within Epsilon.
func Solve(m unit.Angle, e float64) (unit.Angle, error) {
	mr := m.Rad()
	ea := mr
	for i := 0; i < MaxIter; i++ {
		s, c := math.Sincos(ea)
		δ := ea - e*s - mr
		ea -= δ / (1 - e*c)
		if math.Abs(δ) <= Epsilon {
			return unit.Angle(ea), nil
		}
	}
	return unit.Angle(ea), ErrNoConvergence
}

// TrueAnomaly returns the true anomaly for eccentric anomaly ea and
// eccentricity e.
func TrueAnomaly(ea unit.Angle, e float64) unit.Angle {
	return mk.True(ea, e)
}
