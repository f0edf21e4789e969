package cycloid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Parameters holds the design variables of a cycloidal speed-reduction
// drive. All lengths share one linear unit, millimeters by convention.
// A Parameters value is immutable by use: generators take it by value and
// edits at the boundary produce a fresh value.
type Parameters struct {
	// Eccentricity is the offset between the fixed ring center and the
	// orbiting disk center. Drives the reduction.
	Eccentricity float64
	// ExternalPins is the count of fixed pins on the ring. Must be even;
	// Sanitize rounds odd counts up. The disk has ExternalPins-1 lobes.
	ExternalPins int
	// OutputPins is the count of pins on the output shaft.
	OutputPins int
	// RingDiameter is the diameter of the circle the external pin centers
	// sit on.
	RingDiameter float64
	// PinDiameter is the diameter of each external pin.
	PinDiameter float64
	// OutputDiskDiameter is the diameter of the circle the output pin
	// centers sit on.
	OutputDiskDiameter float64
	// OutputPinDiameter is the diameter of each output pin.
	OutputPinDiameter float64
	// CamshaftDiameter is the diameter of the camshaft bore in the disk.
	CamshaftDiameter float64
	// Tolerance is the manufacturing clearance added to every mating
	// surface: holes and bores grow by it, the disk outline shrinks by it.
	Tolerance float64
	// OuterRing enables the pocketed housing ring around the external pins.
	OuterRing bool
	// OuterRingWidth is the radial wall thickness of the housing ring.
	OuterRingWidth float64
}

// DefaultParameters returns a drive that assembles and runs: 24 external
// pins on an 80mm ring, 7 output pins, 0.2mm clearance.
func DefaultParameters() Parameters {
	return Parameters{
		Eccentricity:       1.4,
		ExternalPins:       24,
		OutputPins:         7,
		RingDiameter:       80,
		PinDiameter:        5,
		OutputDiskDiameter: 50,
		OutputPinDiameter:  10,
		CamshaftDiameter:   20,
		Tolerance:          0.2,
		OuterRingWidth:     15,
	}
}

// Lobes returns the disk lobe count, one less than the external pin count.
func (p Parameters) Lobes() int { return p.ExternalPins - 1 }

// Sanitize rounds ExternalPins up to the next even count and validates the
// result. It is the single place pin-count normalization happens; the
// generators assume a sanitized value and never clamp. Degenerate
// configurations are reported, not silently fixed.
func (p Parameters) Sanitize() (Parameters, error) {
	if p.ExternalPins%2 != 0 {
		p.ExternalPins++
	}
	if p.ExternalPins < 4 || p.OutputPins < 3 {
		return p, ErrPinCount
	}
	if p.Eccentricity <= 0 {
		return p, ErrEccentricity
	}
	if p.Tolerance < 0 {
		return p, ErrDimension
	}
	if p.RingDiameter <= 0 || p.PinDiameter <= 0 || p.OutputDiskDiameter <= 0 ||
		p.OutputPinDiameter <= 0 || p.CamshaftDiameter <= 0 {
		return p, ErrDimension
	}
	if p.OuterRing && p.OuterRingWidth <= 0 {
		return p, ErrDimension
	}
	if p.CamshaftDiameter <= 2*p.Eccentricity {
		return p, ErrEccentricShaft
	}
	return p, nil
}

// NormalizeToPins recomputes the ring and output disk diameters so the
// external pins fit the ring circumference with 1.25 pin diameters of
// spacing between neighbors. Both results are rounded to a tenth of a unit.
func (p Parameters) NormalizeToPins() Parameters {
	n := float64(p.ExternalPins)
	ring := (p.PinDiameter*n + 1.25*p.PinDiameter*(n-1)) / math.Pi
	p.RingDiameter = math.Round(ring*10) / 10
	p.OutputDiskDiameter = math.Round(2.0/3.0*ring*10) / 10
	return p
}

// EccentricVector is the disk center offset at phase phi. The eccentric
// shaft center and the disk translation are both exactly this vector.
func (p Parameters) EccentricVector(phi float64) r2.Vec {
	return r2.Vec{X: p.Eccentricity * math.Cos(phi), Y: p.Eccentricity * math.Sin(phi)}
}
