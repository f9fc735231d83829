// Package euler implements the spherical rotation shared by all six
// conversions between the equatorial, galactic and ecliptic frames.
//
// Each conversion applies one row of precomputed Euler-angle constants
// (see [Table]) to longitude/latitude pairs. Callers are expected to have
// validated the transform code and slice lengths; this package assumes
// valid input.
package euler

import (
	"math"

	"github.com/tphakala/go-skycoord/internal/floatops"
)

const (
	degToRad   = math.Pi / 180
	radToDeg   = 180 / math.Pi
	twoPi      = 2 * math.Pi
	fourPi     = 4 * math.Pi
	fullCircle = 360
)

// Rotate converts the coordinate pairs lon/lat (degrees) using row code-1 of
// tab and returns newly allocated output slices; the inputs are not modified.
// Longitudes come back normalized to [0, 360), latitudes in [-90, 90].
//
// Bulk degree/radian conversions run in F precision through SIMD scaling;
// the per-element trigonometry runs in float64, so the float64 instantiation
// carries no single-precision rounding anywhere in the pipeline.
func Rotate[F floatops.Float](lon, lat []F, code int, tab *Table) ([]F, []F) {
	i := code - 1
	psi := tab.Psi[i]
	stheta := tab.STheta[i]
	ctheta := tab.CTheta[i]
	phi := tab.Phi[i]

	ops := floatops.For[F]()
	a := make([]F, len(lon))
	b := make([]F, len(lat))
	ops.Scale(a, lon, F(degToRad))
	ops.Scale(b, lat, F(degToRad))

	for k := range a {
		ak := float64(a[k]) - phi
		sb, cb := math.Sincos(float64(b[k]))
		sa, ca := math.Sincos(ak)
		cbsa := cb * sa

		b[k] = F(math.Asin(clampSinLat(-stheta*cbsa + ctheta*sb)))

		// Adding 4 pi before the modulus keeps the argument non-negative
		// for any atan2 result and any node offset in the table.
		a[k] = F(math.Mod(math.Atan2(ctheta*cbsa+stheta*sb, cb*ca)+psi+fourPi, twoPi))
	}

	ops.Scale(a, a, F(radToDeg))
	ops.Scale(b, b, F(radToDeg))

	// In single precision the normalized angle can round close enough to
	// 2 pi that the degree scaling lands on exactly 360. Fold those back.
	for k := range a {
		if a[k] >= fullCircle {
			a[k] -= fullCircle
		}
	}
	return a, b
}

// clampSinLat caps the sine of the output latitude at 1, where rounding can
// push it just past the pole. Only the upper bound is guarded; a value below
// -1 passes through and surfaces as a NaN latitude from Asin.
func clampSinLat(s float64) float64 {
	if s > 1 {
		return 1
	}
	return s
}
