package cycloid

import (
	"math"

	"github.com/gearkit/cycloid/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// housingPocketFactor sets the pocket depth and inter-pin clearance of the
// housing wall as a fraction of the pin radius.
const housingPocketFactor = 0.8

// Housing generates the two housing curves: the inner profile that pockets
// each external pin, and the outer circular boundary at ring radius plus
// the ring width.
//
// The inner profile is a merged silhouette. At each of perPin*ExternalPins
// sample angles two radii are computed: a smooth pocketed wall radius that
// oscillates with cos(N*theta) between ring-pocket (at a pin) and
// ring-pocket+depth+clearance (between pins), and the ray-cast distance
// from the origin to the nearest pin's circle. The smaller radius wins, so
// wherever a pin body protrudes past the ideal wall the pin boundary is
// followed instead. This yields one watertight closed polyline without
// polygon boolean operations. Sample count scales with pin count, keeping
// per-pin fidelity constant and exported point counts bounded.
func Housing(p Parameters, perPin int) (inner, outer Curve) {
	var (
		ringRadius = p.RingDiameter / 2
		pinRadius  = p.PinDiameter / 2
		pocket     = housingPocketFactor * pinRadius
		clearance  = housingPocketFactor * pinRadius
		variation  = pocket + clearance
		pins       = float64(p.ExternalPins)
		step       = 2 * math.Pi / pins
	)

	n := perPin * p.ExternalPins
	pts := make([]r2.Vec, n+1)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)

		wall := ringRadius - pocket + variation*(1-math.Cos(pins*theta))/2

		// Ray-cast against the nearest pin. Rounding theta to the pin
		// angle step picks the only pin the ray can hit.
		pinAngle := math.Round(theta/step) * step
		c := d2.Polar(ringRadius, pinAngle)
		dir := d2.Polar(1, theta)
		dot := r2.Dot(c, dir)
		disc := dot*dot - (r2.Norm2(c) - pinRadius*pinRadius)

		rPin := math.Inf(1)
		if disc >= 0 {
			if d := dot - math.Sqrt(disc); d > 0 {
				rPin = d
			}
		}

		pts[i] = d2.Polar(math.Min(wall, rPin), theta)
	}
	pts[n] = pts[0]

	inner = Curve{Layer: LayerOuterRing, Closed: true, P: pts}
	outer = Circle(r2.Vec{}, ringRadius+p.OuterRingWidth, LayerOuterRing)
	return inner, outer
}
