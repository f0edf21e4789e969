// Package cycloid generates the 2D mating profiles of a cycloidal
// speed-reduction drive: the fixed ring of external pins, the cycloidal
// disk's offset hypocycloid outline, the output pins and their clearance
// holes, the camshaft bore with its eccentric shaft, and an optional
// pocketed housing ring. Every generator is a pure function of a
// Parameters value and an input shaft phase angle; curves are recomputed
// from scratch on each call so the geometry always matches the parameters.
package cycloid

import (
	"math"

	"github.com/gearkit/cycloid/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Layer is the semantic tag a curve is exported under.
type Layer string

const (
	LayerExternalPins Layer = "EXTERNAL_PINS"
	LayerCycloidDisk  Layer = "CYCLOID_DISK"
	LayerOutputPins   Layer = "OUTPUT_PINS"
	LayerOutputHoles  Layer = "OUTPUT_HOLES"
	LayerCamshaftHole Layer = "CAMSHAFT_HOLE"
	LayerEccentricCam Layer = "ECCENTRIC_CAM"
	LayerOuterRing    Layer = "OUTER_RING"
	LayerPinCenters   Layer = "PIN_CENTERS"
	LayerCenterAxis   Layer = "CENTER_AXIS"
)

// Sampling densities. Display curves are dense for smooth interactive
// rendering; exports re-derive the heavy curves at the reduced densities so
// downstream CAD files stay light.
const (
	// CircleSegments is the segment count of every sampled circle.
	CircleSegments = 200
	// DisplayPointsPerLobe samples the disk profile for live display.
	DisplayPointsPerLobe = 1500
	// ExportPointsPerLobe samples the disk profile for file export.
	ExportPointsPerLobe = 60
	// DisplayPointsPerPin samples the housing inner profile for display.
	DisplayPointsPerPin = 100
	// ExportPointsPerPin samples the housing inner profile for export.
	ExportPointsPerPin = 30
)

// Curve is an ordered sequence of 2D points with its layer tag. Closed
// curves repeat their first point as the last point.
type Curve struct {
	Layer  Layer
	Closed bool
	P      []r2.Vec
}

// IsLoop reports whether the first and last points coincide within tol.
func (c Curve) IsLoop(tol float64) bool {
	if len(c.P) < 2 {
		return false
	}
	return d2.EqualWithin(c.P[0], c.P[len(c.P)-1], tol)
}

// Centroid returns the arithmetic mean of the curve's distinct points. The
// duplicated closing point of a loop is not counted twice.
func (c Curve) Centroid() r2.Vec {
	pts := c.P
	if len(pts) > 1 && c.Closed && d2.EqualWithin(pts[0], pts[len(pts)-1], 1e-9) {
		pts = pts[:len(pts)-1]
	}
	var sum r2.Vec
	for _, pt := range pts {
		sum = r2.Add(sum, pt)
	}
	return r2.Scale(1/float64(len(pts)), sum)
}

// CurveSet maps a layer to the curves generated for it. A set is produced
// fresh for each (Parameters, phi) pair and carries no state beyond its
// points.
type CurveSet map[Layer][]Curve

// Circle samples a closed circle of the given radius about center.
func Circle(center r2.Vec, radius float64, layer Layer) Curve {
	pts := make([]r2.Vec, CircleSegments+1)
	for i := 0; i < CircleSegments; i++ {
		t := 2 * math.Pi * float64(i) / CircleSegments
		pts[i] = r2.Add(center, d2.Polar(radius, t))
	}
	pts[CircleSegments] = pts[0]
	return Curve{Layer: layer, Closed: true, P: pts}
}

// Generate runs every generator at display resolution and returns the full
// curve set for the drive at phase phi. The housing curves are present only
// when p.OuterRing is set.
func Generate(p Parameters, phi float64) (CurveSet, error) {
	disk, err := DiskProfile(p, phi, DisplayPointsPerLobe)
	if err != nil {
		return nil, err
	}
	shaft, err := EccentricShaft(p, phi)
	if err != nil {
		return nil, err
	}
	cs := CurveSet{
		LayerExternalPins: PinRing(p),
		LayerCycloidDisk:  {disk},
		LayerOutputPins:   OutputPins(p, phi),
		LayerOutputHoles:  OutputHoles(p, phi),
		LayerCamshaftHole: {CamshaftBore(p)},
		LayerEccentricCam: {shaft},
	}
	if p.OuterRing {
		inner, outer := Housing(p, DisplayPointsPerPin)
		cs[LayerOuterRing] = []Curve{inner, outer}
	}
	return cs, nil
}
