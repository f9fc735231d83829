package skycoord

// GalacticToEquatorial converts galactic longitude/latitude pairs (degrees)
// to RA/Dec (degrees). It is shorthand for [Rotate] with
// [GalacticEquatorial] and follows the same validation and normalization
// rules.
func GalacticToEquatorial[F Float](gl, gb []F, epoch Epoch) (ra, dec []F, err error) {
	return Rotate(gl, gb, GalacticEquatorial, epoch)
}

// EclipticToEquatorial converts ecliptic longitude/latitude pairs (degrees)
// to RA/Dec (degrees). It is shorthand for [Rotate] with
// [EclipticEquatorial] and follows the same validation and normalization
// rules.
func EclipticToEquatorial[F Float](elon, elat []F, epoch Epoch) (ra, dec []F, err error) {
	return Rotate(elon, elat, EclipticEquatorial, epoch)
}
