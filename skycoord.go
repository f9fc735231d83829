package skycoord

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-skycoord/internal/euler"
)

// Float is the type constraint for coordinate values. All conversions accept
// float32 or float64; float64 is the reference double-precision pipeline,
// float32 halves memory traffic at reduced angular accuracy.
type Float interface {
	float32 | float64
}

// Transform selects the conversion direction between two sky frames.
// The numeric values 1-6 are the traditional select codes of the EULER
// family of routines and are stable across releases.
type Transform int

const (
	// EquatorialGalactic converts RA/Dec to galactic longitude/latitude.
	EquatorialGalactic Transform = iota + 1

	// GalacticEquatorial converts galactic longitude/latitude to RA/Dec.
	GalacticEquatorial

	// EquatorialEcliptic converts RA/Dec to ecliptic longitude/latitude.
	EquatorialEcliptic

	// EclipticEquatorial converts ecliptic longitude/latitude to RA/Dec.
	EclipticEquatorial

	// EclipticGalactic converts ecliptic to galactic coordinates.
	EclipticGalactic

	// GalacticEcliptic converts galactic to ecliptic coordinates.
	GalacticEcliptic
)

// String returns a short arrow notation such as "equatorial->galactic".
func (tr Transform) String() string {
	switch tr {
	case EquatorialGalactic:
		return "equatorial->galactic"
	case GalacticEquatorial:
		return "galactic->equatorial"
	case EquatorialEcliptic:
		return "equatorial->ecliptic"
	case EclipticEquatorial:
		return "ecliptic->equatorial"
	case EclipticGalactic:
		return "ecliptic->galactic"
	case GalacticEcliptic:
		return "galactic->ecliptic"
	default:
		return fmt.Sprintf("Transform(%d)", int(tr))
	}
}

// Epoch selects the equinox of the transformation constants.
type Epoch int

const (
	// J2000 selects the FK5 (J2000.0) constants. This is the zero value
	// and the default epoch.
	J2000 Epoch = iota

	// B1950 selects the FK4 (B1950.0) constants.
	B1950
)

// String returns "J2000" or "B1950".
func (e Epoch) String() string {
	switch e {
	case J2000:
		return "J2000"
	case B1950:
		return "B1950"
	default:
		return fmt.Sprintf("Epoch(%d)", int(e))
	}
}

// Common errors returned by the conversion functions.
var (
	// ErrInvalidTransform indicates a transform code outside 1-6.
	ErrInvalidTransform = errors.New("invalid transform code")

	// ErrInvalidEpoch indicates an epoch other than J2000 or B1950.
	ErrInvalidEpoch = errors.New("invalid epoch")

	// ErrLengthMismatch indicates longitude and latitude slices of
	// different lengths.
	ErrLengthMismatch = errors.New("longitude/latitude length mismatch")
)

// validate checks that the transform is one of the six defined codes.
func (tr Transform) validate() error {
	if tr < EquatorialGalactic || tr > GalacticEcliptic {
		return fmt.Errorf("%w: %d (valid codes are 1-6)", ErrInvalidTransform, int(tr))
	}
	return nil
}

// table resolves the epoch to its constant table.
func (e Epoch) table() (*euler.Table, error) {
	switch e {
	case J2000:
		return &euler.J2000, nil
	case B1950:
		return &euler.B1950, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidEpoch, int(e))
	}
}
