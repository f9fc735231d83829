package euler

// Rotation constants for the six frame conversions, one row per transform
// code (row = code - 1):
//
//	1: equatorial -> galactic
//	2: galactic   -> equatorial
//	3: equatorial -> ecliptic
//	4: ecliptic   -> equatorial
//	5: ecliptic   -> galactic
//	6: galactic   -> ecliptic
//
// Each conversion is the Euler sequence R3(-psi) R1(theta) R3(phi): phi is
// the source-frame longitude of the ascending node of the target plane,
// theta the inclination between the two poles, and psi the node longitude
// in the target frame. Only sin(theta) and cos(theta) are stored.

// Table holds the rotation constants of one equinox.
type Table struct {
	Psi    [6]float64
	STheta [6]float64
	CTheta [6]float64
	Phi    [6]float64
}

// J2000 holds the FK5 (J2000.0) constants.
//
// Derivation angles, in degrees:
//   - Galactic north pole at RA 192.85948, Dec 27.12825, with the node of
//     the galactic plane on the equator at galactic longitude 32.93192
//     (Murray 1989, A&A 218, 325; Hipparcos Explanatory Supplement).
//   - Mean obliquity of the ecliptic at J2000.0: 23.4392911
//     (Lieske et al. 1977).
//   - Galactic north pole in ecliptic coordinates: longitude 180.02322,
//     latitude 29.811438523, node at 6.3839743 (derived from the above).
var J2000 = Table{
	Psi: [6]float64{
		0.57477043300, 4.9368292465,
		0.00000000000, 0.0000000000,
		0.11142137093, 4.71279419371,
	},
	STheta: [6]float64{
		0.88998808748, -0.88998808748,
		0.39777715593, -0.39777715593,
		0.86766622025, -0.86766622025,
	},
	CTheta: [6]float64{
		0.45598377618, 0.45598377618,
		0.91748206207, 0.91748206207,
		0.49714719172, 0.49714719172,
	},
	Phi: [6]float64{
		4.9368292465, 0.57477043300,
		0.0000000000, 0.00000000000,
		4.71279419371, 0.11142137093,
	},
}

// B1950 holds the FK4 (B1950.0) constants.
//
// Derivation angles, in degrees:
//   - Galactic north pole at RA 192.25, Dec 27.4, node at galactic
//     longitude 33.0, the IAU 1958 definition of the galactic system
//     (Blaauw et al. 1960, MNRAS 121, 123).
//   - Mean obliquity of the ecliptic at B1950.0: 23.4457889.
var B1950 = Table{
	Psi: [6]float64{
		0.57595865315, 4.9261918136,
		0.00000000000, 0.0000000000,
		0.11129056012, 4.7005372834,
	},
	STheta: [6]float64{
		0.88781538514, -0.88781538514,
		0.39788119938, -0.39788119938,
		0.86766174755, -0.86766174755,
	},
	CTheta: [6]float64{
		0.46019978478, 0.46019978478,
		0.91743694670, 0.91743694670,
		0.49715499774, 0.49715499774,
	},
	Phi: [6]float64{
		4.9261918136, 0.57595865315,
		0.0000000000, 0.00000000000,
		4.7005372834, 0.11129056012,
	},
}
