package render_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gearkit/cycloid"
	"github.com/gearkit/cycloid/render"
)

func testParameters(t *testing.T) cycloid.Parameters {
	t.Helper()
	p := cycloid.DefaultParameters()
	p.OuterRing = true
	p, err := p.Sanitize()
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestWriteSVG(t *testing.T) {
	p := testParameters(t)
	var b bytes.Buffer
	if err := render.WriteSVG(&b, p, 0.4); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatal("not an SVG document")
	}
	if !strings.Contains(out, "scale(1,-1)") {
		t.Error("missing vertical flip transform")
	}
	// One path per curve: pins + disk + output pins + holes + bore +
	// shaft + two housing profiles.
	want := p.ExternalPins + 1 + p.OutputPins + p.OutputPins + 1 + 1 + 2
	if got := strings.Count(out, "<path"); got != want {
		t.Errorf("path count: got %d, want %d", got, want)
	}
	// Every curve in the set is closed, so every path must close too.
	if got := strings.Count(out, "Z"); got < want {
		t.Errorf("closed path count: got %d, want at least %d", got, want)
	}
	if !strings.Contains(out, "#FF4444") {
		t.Error("disk stroke color missing")
	}
}

func TestWriteSVGViewBoxTracksHousing(t *testing.T) {
	p := testParameters(t)
	var withRing, without bytes.Buffer
	if err := render.WriteSVG(&withRing, p, 0); err != nil {
		t.Fatal(err)
	}
	p.OuterRing = false
	if err := render.WriteSVG(&without, p, 0); err != nil {
		t.Fatal(err)
	}
	if withRing.String() == without.String() {
		t.Fatal("view box did not react to housing toggle")
	}
	if !strings.Contains(without.String(), "viewBox") {
		t.Fatal("missing viewBox")
	}
}

func TestWriteDXF(t *testing.T) {
	p := testParameters(t)
	var b bytes.Buffer
	if err := render.WriteDXF(&b, p, 0.4); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	for _, layer := range []string{
		"CYCLOID_DISK", "OUTPUT_PINS", "OUTPUT_HOLES", "CAMSHAFT_HOLE",
		"ECCENTRIC_CAM", "OUTER_RING", "PIN_CENTERS", "CENTER_AXIS",
	} {
		if !strings.Contains(out, layer) {
			t.Errorf("layer %s missing from drawing", layer)
		}
	}
	for _, entity := range []string{"CIRCLE", "POINT", "LWPOLYLINE"} {
		if !strings.Contains(out, entity) {
			t.Errorf("entity %s missing from drawing", entity)
		}
	}
}

func TestWriteDXFDegenerateShaft(t *testing.T) {
	p := cycloid.DefaultParameters()
	p.Eccentricity = p.CamshaftDiameter // non-physical shaft
	var b bytes.Buffer
	if err := render.WriteDXF(&b, p, 0); !errors.Is(err, cycloid.ErrEccentricShaft) {
		t.Fatalf("got %v, want ErrEccentricShaft", err)
	}
}

func TestExport(t *testing.T) {
	p := testParameters(t)
	dir := t.TempDir()
	for _, name := range []string{"drive.dxf", "drive.svg", "drive.png"} {
		path := filepath.Join(dir, name)
		if err := render.Export(path, p, 1.2); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		fi, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if fi.Size() == 0 {
			t.Errorf("%s: empty file", name)
		}
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	p := testParameters(t)
	err := render.Export(filepath.Join(t.TempDir(), "drive.step"), p, 0)
	if !errors.Is(err, render.ErrUnsupportedFormat) {
		t.Fatalf("got %v, want ErrUnsupportedFormat", err)
	}
}
