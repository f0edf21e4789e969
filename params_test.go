package cycloid

import (
	"errors"
	"math"
	"testing"
)

func TestSanitizeRoundsPinsUpToEven(t *testing.T) {
	for _, tc := range []struct{ in, want int }{
		{3, 4},
		{4, 4},
		{23, 24},
		{24, 24},
	} {
		p := DefaultParameters()
		p.ExternalPins = tc.in
		p, err := p.Sanitize()
		if err != nil {
			t.Fatalf("Sanitize(%d pins): %v", tc.in, err)
		}
		if p.ExternalPins != tc.want {
			t.Errorf("Sanitize(%d pins): got %d, want %d", tc.in, p.ExternalPins, tc.want)
		}
	}
}

func TestSanitizeRejectsDegenerates(t *testing.T) {
	mod := func(f func(*Parameters)) Parameters {
		p := DefaultParameters()
		f(&p)
		return p
	}
	for _, tc := range []struct {
		name string
		p    Parameters
		want error
	}{
		{"too few external pins", mod(func(p *Parameters) { p.ExternalPins = 2 }), ErrPinCount},
		{"too few output pins", mod(func(p *Parameters) { p.OutputPins = 2 }), ErrPinCount},
		{"zero eccentricity", mod(func(p *Parameters) { p.Eccentricity = 0 }), ErrEccentricity},
		{"negative tolerance", mod(func(p *Parameters) { p.Tolerance = -0.1 }), ErrDimension},
		{"zero ring diameter", mod(func(p *Parameters) { p.RingDiameter = 0 }), ErrDimension},
		{"eccentricity swallows shaft", mod(func(p *Parameters) { p.Eccentricity = 10; p.CamshaftDiameter = 20 }), ErrEccentricShaft},
		{"housing without width", mod(func(p *Parameters) { p.OuterRing = true; p.OuterRingWidth = 0 }), ErrDimension},
	} {
		if _, err := tc.p.Sanitize(); !errors.Is(err, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestNormalizeToPins(t *testing.T) {
	p := DefaultParameters()
	p.ExternalPins = 12
	p.PinDiameter = 5
	p.Eccentricity = 1.2
	p = p.NormalizeToPins()
	if p.RingDiameter != 41.0 {
		t.Errorf("ring diameter: got %v, want 41.0", p.RingDiameter)
	}
	want := math.Round(2.0/3.0*(5*12+1.25*5*11)/math.Pi*10) / 10
	if p.OutputDiskDiameter != want {
		t.Errorf("output disk diameter: got %v, want %v", p.OutputDiskDiameter, want)
	}
}

func TestEccentricVector(t *testing.T) {
	p := DefaultParameters()
	for _, phi := range []float64{0, 0.7, math.Pi, 5.1} {
		v := p.EccentricVector(phi)
		if v.X != p.Eccentricity*math.Cos(phi) || v.Y != p.Eccentricity*math.Sin(phi) {
			t.Errorf("phi=%v: got %v", phi, v)
		}
	}
}
