package skycoord

import (
	"fmt"

	"github.com/tphakala/go-skycoord/internal/euler"
)

// Rotate converts coordinate pairs between the equatorial, galactic and
// ecliptic frames. Longitudes and latitudes are in degrees; lon[i] and
// lat[i] together describe one position. The inputs are never modified:
// the results come back in newly allocated slices of the same length,
// with longitudes normalized to [0, 360) and latitudes in [-90, 90].
//
// Validation happens before any computation. A transform outside the six
// defined codes, an unknown epoch, or slices of different lengths return
// a wrapped [ErrInvalidTransform], [ErrInvalidEpoch] or [ErrLengthMismatch]
// and no partial results. Empty inputs yield empty outputs.
//
// The sine of the output latitude is clamped at 1 before the inverse sine,
// so positions aligned with a frame pole cannot raise a domain error from
// rounding overshoot. The guard is one-sided: an undershoot below -1 is not
// clamped and comes back as a NaN latitude.
//
// Non-finite coordinates are not rejected; NaN and Inf propagate through
// the trigonometry into the corresponding output elements.
func Rotate[F Float](lon, lat []F, tr Transform, epoch Epoch) ([]F, []F, error) {
	if err := tr.validate(); err != nil {
		return nil, nil, err
	}
	tab, err := epoch.table()
	if err != nil {
		return nil, nil, err
	}
	if len(lon) != len(lat) {
		return nil, nil, fmt.Errorf("%w: %d longitudes, %d latitudes",
			ErrLengthMismatch, len(lon), len(lat))
	}

	outLon, outLat := euler.Rotate(lon, lat, int(tr), tab)
	return outLon, outLat, nil
}

// RotateOne converts a single coordinate pair. It is defined as the
// length-one case of [Rotate] and produces bit-identical results.
func RotateOne[F Float](lon, lat F, tr Transform, epoch Epoch) (F, F, error) {
	lons, lats, err := Rotate([]F{lon}, []F{lat}, tr, epoch)
	if err != nil {
		return 0, 0, err
	}
	return lons[0], lats[0], nil
}
