package cycloid

import "gonum.org/v1/gonum/spatial/r2"

// CamshaftBoreRadius is the camshaft bore radius in the disk, the camshaft
// radius grown by the tolerance clearance.
func CamshaftBoreRadius(p Parameters) float64 {
	return p.CamshaftDiameter/2 + p.Tolerance
}

// EccentricShaftRadius is the eccentric input shaft radius. It is smaller
// than the camshaft radius by the eccentricity so the shaft can orbit
// inside the bore.
func EccentricShaftRadius(p Parameters) float64 {
	return (p.CamshaftDiameter - 2*p.Eccentricity) / 2
}

// CamshaftBore generates the fixed camshaft bore in the disk, centered on
// the origin.
func CamshaftBore(p Parameters) Curve {
	return Circle(r2.Vec{}, CamshaftBoreRadius(p), LayerCamshaftHole)
}

// EccentricShaft generates the orbiting input shaft, centered on the
// eccentricity vector at phase phi. Returns ErrEccentricShaft when the
// eccentricity is at least half the camshaft diameter: the shaft radius is
// then non-physical and is reported rather than clamped.
func EccentricShaft(p Parameters, phi float64) (Curve, error) {
	r := EccentricShaftRadius(p)
	if r <= 0 {
		return Curve{}, ErrEccentricShaft
	}
	return Circle(p.EccentricVector(phi), r, LayerEccentricCam), nil
}
