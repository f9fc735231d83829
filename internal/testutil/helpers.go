// Package testutil provides reusable test helpers for sky coordinate tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/go-skycoord/internal/floatops"
)

// Default tolerances for coordinate comparisons, in degrees.
const (
	Float64Tolerance = 1e-6 // double-precision round trips and reference points
	Float32Tolerance = 5e-3 // single-precision pipelines
	MatrixTolerance  = 1e-9 // independent rotation-matrix cross-checks
)

const (
	fullCircle = 360.0
	halfCircle = 180.0
	degToRad   = math.Pi / 180
	radToDeg   = 180 / math.Pi
)

// WrapDelta returns the signed difference a-b wrapped into (-180, 180], so
// longitudes on either side of the 0/360 seam compare as close neighbors.
func WrapDelta(a, b float64) float64 {
	d := math.Mod(a-b, fullCircle)
	if d > halfCircle {
		d -= fullCircle
	}
	if d <= -halfCircle {
		d += fullCircle
	}
	return d
}

// AngularSeparation returns the great-circle separation in degrees between
// two positions given in degrees. Haversine form, stable for small angles.
func AngularSeparation(lon1, lat1, lon2, lat2 float64) float64 {
	sdLat := math.Sin((lat2 - lat1) / 2 * degToRad)
	sdLon := math.Sin(WrapDelta(lon2, lon1) / 2 * degToRad)
	h := sdLat*sdLat + math.Cos(lat1*degToRad)*math.Cos(lat2*degToRad)*sdLon*sdLon
	if h > 1 {
		h = 1
	}
	return 2 * math.Asin(math.Sqrt(h)) * radToDeg
}

// AssertLonClose verifies two longitudes agree within tolerance after
// unwrapping across the 0/360 seam. A NaN longitude fails.
func AssertLonClose(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	d := math.Abs(WrapDelta(actual, expected))
	if math.IsNaN(d) || d > tolerance {
		return assert.Fail(t, "longitudes differ",
			"wrapped |%.9f - %.9f| = %e deg exceeds %e", actual, expected, d, tolerance)
	}
	return true
}

// AssertSeparationBelow verifies the great-circle separation between two
// positions stays within tolerance. Unlike per-component checks it remains
// meaningful at the poles, where longitude is degenerate. A NaN separation
// fails: NaN compares false against any bound.
func AssertSeparationBelow(t *testing.T, lon1, lat1, lon2, lat2, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	sep := AngularSeparation(lon1, lat1, lon2, lat2)
	if math.IsNaN(sep) || sep > tolerance {
		return assert.Fail(t, "positions too far apart",
			"separation between (%.6f, %.6f) and (%.6f, %.6f) is %e deg, tolerance %e",
			lon1, lat1, lon2, lat2, sep, tolerance)
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max]. NaN
// counts as out of range.
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) || v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertInRange verifies that a value is within [min, max]. NaN counts as
// out of range.
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if math.IsNaN(value) || value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", value, minVal, maxVal)
	}
	return true
}

// ToFloat64 widens a coordinate slice for the float64-based helpers above.
func ToFloat64[F floatops.Float](s []F) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}
