package cycloid

import (
	"math"

	"github.com/gearkit/cycloid/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// PinRing places the external pins: ExternalPins congruent circles of
// radius PinDiameter/2, evenly spaced on the ring diameter. The pins are
// the rigid reference geometry; no clearance is applied here.
func PinRing(p Parameters) []Curve {
	pins := make([]Curve, p.ExternalPins)
	for i := range pins {
		a := 2 * math.Pi * float64(i) / float64(p.ExternalPins)
		c := d2.Polar(p.RingDiameter/2, a)
		pins[i] = Circle(c, p.PinDiameter/2, LayerExternalPins)
	}
	return pins
}

// PinCenters returns the external pin center points, one per pin.
func PinCenters(p Parameters) []r2.Vec {
	centers := make([]r2.Vec, p.ExternalPins)
	for i := range centers {
		a := 2 * math.Pi * float64(i) / float64(p.ExternalPins)
		centers[i] = d2.Polar(p.RingDiameter/2, a)
	}
	return centers
}

// OutputPinCenters returns the output pin centers at phase phi: evenly
// spaced on the output disk diameter and rotated by -phi/L to track the
// disk's rotation.
func OutputPinCenters(p Parameters, phi float64) []r2.Vec {
	spin := -phi / float64(p.Lobes())
	centers := make([]r2.Vec, p.OutputPins)
	for i := range centers {
		a := 2 * math.Pi * float64(i) / float64(p.OutputPins)
		centers[i] = r2.Rotate(d2.Polar(p.OutputDiskDiameter/2, a), spin, r2.Vec{})
	}
	return centers
}

// OutputHoleCenters returns the clearance hole centers at phase phi: the
// output pin pattern additionally translated by the eccentricity vector,
// because the holes live on the orbiting disk.
func OutputHoleCenters(p Parameters, phi float64) []r2.Vec {
	centers := OutputPinCenters(p, phi)
	offset := p.EccentricVector(phi)
	for i, c := range centers {
		centers[i] = r2.Add(c, offset)
	}
	return centers
}

// OutputPins places the output shaft pins. They are not translated by the
// eccentricity: the output shaft is concentric with the ring center, not
// the orbiting disk.
func OutputPins(p Parameters, phi float64) []Curve {
	centers := OutputPinCenters(p, phi)
	pins := make([]Curve, len(centers))
	for i, c := range centers {
		pins[i] = Circle(c, p.OutputPinDiameter/2, LayerOutputPins)
	}
	return pins
}

// OutputHoleRadius is the clearance hole radius cut into the disk for each
// output pin: the pin must orbit inside it by the full eccentricity and
// still keep the tolerance clearance.
func OutputHoleRadius(p Parameters) float64 {
	return p.OutputPinDiameter/2 + p.Eccentricity + p.Tolerance
}

// OutputHoles places the clearance holes cut into the disk for the output
// pins.
func OutputHoles(p Parameters, phi float64) []Curve {
	centers := OutputHoleCenters(p, phi)
	r := OutputHoleRadius(p)
	holes := make([]Curve, len(centers))
	for i, c := range centers {
		holes[i] = Circle(c, r, LayerOutputHoles)
	}
	return holes
}
