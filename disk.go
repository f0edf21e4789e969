package cycloid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// DiskProfile computes the cycloidal disk's manufactured outline as one
// continuous closed loop of perLobe*Lobes() samples.
//
// The disk outline is the envelope of the external pins rolling over a
// hypocycloid: the trochoid traced by the rolling/stationary circle pair is
// offset along its inward unit normal by the pin radius plus tolerance,
// using the analytic derivative of the trace. The result is rotated by
// -phi/L (the disk turns at 1/L of input speed, reversed) and translated by
// the eccentricity vector.
//
// Returns ErrDegenerateProfile if the trochoid derivative vanishes at any
// sample, which leaves the offset direction undefined.
func DiskProfile(p Parameters, phi float64, perLobe int) (Curve, error) {
	var (
		lobes      = float64(p.Lobes())
		ringRadius = p.RingDiameter / 2
		rolling    = lobes / (lobes + 1) * ringRadius
		stationary = ringRadius / (lobes + 1)
		pitch      = rolling + stationary
		ratio      = pitch / stationary // lobes+1 lobes of trochoid wave
		offset     = p.PinDiameter/2 + p.Tolerance
		e          = p.Eccentricity
	)
	center := p.EccentricVector(phi)
	spin := -phi / lobes

	n := perLobe * p.Lobes()
	pts := make([]r2.Vec, n)
	for i := 0; i < n; i++ {
		t := 2 * math.Pi * float64(i) / float64(n-1)

		xa := pitch*math.Cos(t) - e*math.Cos(ratio*t)
		ya := pitch*math.Sin(t) - e*math.Sin(ratio*t)
		dxa := pitch * (-math.Sin(t) + (e/stationary)*math.Sin(ratio*t))
		dya := pitch * (math.Cos(t) - (e/stationary)*math.Cos(ratio*t))

		norm := math.Hypot(dxa, dya)
		if norm == 0 {
			return Curve{}, ErrDegenerateProfile
		}
		// Inward normal offset turns the ideal trace into the
		// pin-radius-thick physical outline.
		xd := xa - offset/norm*dya
		yd := ya + offset/norm*dxa

		pts[i] = r2.Add(r2.Rotate(r2.Vec{X: xd, Y: yd}, spin, r2.Vec{}), center)
	}
	return Curve{Layer: LayerCycloidDisk, Closed: true, P: pts}, nil
}
