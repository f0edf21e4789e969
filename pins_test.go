package cycloid

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestPinRing(t *testing.T) {
	p := testParameters(t)
	pins := PinRing(p)
	if len(pins) != p.ExternalPins {
		t.Fatalf("pin count: got %d, want %d", len(pins), p.ExternalPins)
	}
	centers := PinCenters(p)
	for i, pin := range pins {
		if !pin.IsLoop(1e-12) {
			t.Errorf("pin %d not closed", i)
		}
		if d := r2.Norm(centers[i]); math.Abs(d-p.RingDiameter/2) > 1e-9 {
			t.Errorf("pin %d center distance: got %v, want %v", i, d, p.RingDiameter/2)
		}
		for _, pt := range pin.P {
			if r := r2.Norm(r2.Sub(pt, centers[i])); math.Abs(r-p.PinDiameter/2) > 1e-9 {
				t.Fatalf("pin %d radius: got %v, want %v", i, r, p.PinDiameter/2)
			}
		}
	}
	// Angular spacing is exactly 2pi/N.
	step := 2 * math.Pi / float64(p.ExternalPins)
	for i, c := range centers {
		want := float64(i) * step
		got := math.Atan2(c.Y, c.X)
		if got < 0 {
			got += 2 * math.Pi
		}
		if diff := math.Abs(got - want); diff > 1e-9 && math.Abs(diff-2*math.Pi) > 1e-9 {
			t.Errorf("pin %d angle: got %v, want %v", i, got, want)
		}
	}
}

func TestOutputPinsTrackDiskRotation(t *testing.T) {
	p := testParameters(t)
	const phi = 1.1
	spin := -phi / float64(p.Lobes())
	at0 := OutputPinCenters(p, 0)
	atPhi := OutputPinCenters(p, phi)
	for i := range at0 {
		want := r2.Rotate(at0[i], spin, r2.Vec{})
		if !vecNear(atPhi[i], want, 1e-9) {
			t.Errorf("pin %d: got %v, want %v", i, atPhi[i], want)
		}
	}
}

func TestOutputHolesOrbitWithDisk(t *testing.T) {
	// Hole centers are the pin centers translated by the eccentricity
	// vector: the holes live on the orbiting disk, the pins do not.
	p := testParameters(t)
	const phi = 2.4
	pins := OutputPinCenters(p, phi)
	holes := OutputHoleCenters(p, phi)
	offset := p.EccentricVector(phi)
	for i := range pins {
		if !vecNear(holes[i], r2.Add(pins[i], offset), 1e-12) {
			t.Errorf("hole %d: got %v, want %v", i, holes[i], r2.Add(pins[i], offset))
		}
	}
}

func TestOutputHoleRadiusClearance(t *testing.T) {
	p := testParameters(t)
	want := p.OutputPinDiameter/2 + p.Eccentricity + p.Tolerance
	if got := OutputHoleRadius(p); got != want {
		t.Fatalf("hole radius: got %v, want %v", got, want)
	}
	// Holes only grow as tolerance increases.
	prev := OutputHoleRadius(p)
	for _, tol := range []float64{0.3, 0.5, 1} {
		p.Tolerance = tol
		if r := OutputHoleRadius(p); r <= prev {
			t.Errorf("tolerance %v: hole radius %v did not grow past %v", tol, r, prev)
		} else {
			prev = r
		}
	}
}

func vecNear(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}
