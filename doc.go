// Package skycoord converts astronomical positions between the equatorial,
// galactic and ecliptic reference frames in pure Go.
//
// The conversions follow the classic EULER routine of the IDL Astronomy
// User's Library: each frame pair is a fixed spherical rotation applied
// element-wise, with precomputed constant tables for the J2000.0 (FK5) and
// B1950.0 (FK4) equinoxes.
//
// # Features
//
//   - All six conversions between equatorial (RA/Dec), galactic (l/b) and
//     ecliptic (longitude/latitude) coordinates
//   - J2000 (default) and B1950 constant tables
//   - Generic API over float32 and float64 coordinate slices
//   - SIMD-accelerated bulk degree/radian conversion via github.com/tphakala/simd
//   - Pure Go implementation with no CGO dependencies
//
// # Quick Start
//
// Convert a batch of equatorial positions to galactic coordinates:
//
//	ra := []float64{192.85948, 266.405, 10.68458}
//	dec := []float64{27.12825, -28.936, 41.26917}
//	gl, gb, err := skycoord.Rotate(ra, dec, skycoord.EquatorialGalactic, skycoord.J2000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Single positions go through [RotateOne]:
//
//	gl, gb, err := skycoord.RotateOne(192.85948, 27.12825, skycoord.EquatorialGalactic, skycoord.J2000)
//
// The reverse directions most callers need have shorthand wrappers:
// [GalacticToEquatorial] and [EclipticToEquatorial].
//
// # Coordinate Conventions
//
// All angles are in degrees. lon[i] and lat[i] together describe one
// position; the two slices must have equal length. Output longitudes are
// normalized to [0, 360) and output latitudes lie in [-90, 90]. Inputs may
// hold any finite values (longitudes outside [0, 360) and latitudes at the
// poles are fine) and are never modified.
//
// # Precision
//
// The API is generic over [Float]. The float64 instantiation runs the whole
// pipeline in double precision and is the reference path; round trips close
// to well below a microdegree. The float32 instantiation stores coordinates
// in single precision, which keeps memory traffic down for large catalogs
// but limits accuracy to a few millidegrees. The per-element trigonometry
// always runs in double precision.
//
// The sine of the output latitude is clamped at 1 before the inverse sine.
// The clamp is one-sided on purpose: it preserves the behavior of the EULER
// reference, where an undershoot below -1 is not guarded and produces NaN.
// The undershoot is reachable: the B1950 equatorial/galactic constants
// square to slightly more than 1, so a round trip of the exact south
// celestial pole through those rows returns a NaN latitude.
//
// # Epochs
//
// [J2000] selects the FK5 frame constants (galactic pole at RA 192.85948,
// Dec 27.12825; obliquity 23.4392911 degrees). [B1950] selects the FK4
// constants of the IAU 1958 galactic system (pole at RA 192.25, Dec 27.4;
// obliquity 23.4457889 degrees). The two equinoxes differ by tenths of a
// degree, far above the numerical noise, so picking the wrong one is
// detectable in tests.
//
// # Thread Safety
//
// All functions are pure: they share no mutable state and read only
// immutable constant tables, so any number of goroutines may call them
// concurrently without synchronization.
//
// # Attribution
//
// The algorithm and constant tables follow the EULER procedure of the IDL
// Astronomy User's Library (Landsman 1993). The J2000 galactic-pole
// derivation follows Murray (1989, A&A 218, 325) and the Hipparcos
// Explanatory Supplement; the B1950 galactic system is the IAU 1958
// definition (Blaauw et al. 1960, MNRAS 121, 123).
package skycoord
