package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	svg "github.com/ajstarks/svgo/float"
	"github.com/gearkit/cycloid"
)

// svgMargin is the view box padding around the outermost circle.
const svgMargin = 10

// svgStyles color-codes curve families; stroke widths follow the drawing
// weight of each part.
var svgStyles = map[cycloid.Layer]struct {
	stroke string
	width  float64
}{
	cycloid.LayerExternalPins: {"#666666", 0.5},
	cycloid.LayerCycloidDisk:  {"#FF4444", 0.8},
	cycloid.LayerOutputPins:   {"#44FF44", 0.5},
	cycloid.LayerOutputHoles:  {"#FF44FF", 0.5},
	cycloid.LayerCamshaftHole: {"#4444FF", 0.6},
	cycloid.LayerEccentricCam: {"#FFAA00", 0.5},
	cycloid.LayerOuterRing:    {"#888888", 0.6},
}

// WriteSVG writes the drive geometry at phase phi as a flat SVG document:
// one stroked fill-none path per curve inside a scale(1,-1) group, so the
// Y axis points up as in drawing convention. Closed curves end with Z.
func WriteSVG(w io.Writer, p cycloid.Parameters, phi float64) error {
	cs, err := cycloid.Generate(p, phi)
	if err != nil {
		return err
	}
	maxRadius := p.RingDiameter/2 + svgMargin
	if p.OuterRing {
		maxRadius += p.OuterRingWidth
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Startview(2*maxRadius, 2*maxRadius, -maxRadius, -maxRadius, 2*maxRadius, 2*maxRadius)
	canvas.Gtransform("scale(1,-1)")
	for _, layer := range drawOrder {
		style := svgStyles[layer]
		for _, c := range cs[layer] {
			canvas.Path(pathData(c), fmt.Sprintf("fill:none;stroke:%s;stroke-width:%.1f", style.stroke, style.width))
		}
	}
	canvas.Gend()
	canvas.End()
	return ew.err
}

// CreateSVG writes the SVG document to a new file at path.
func CreateSVG(path string, p cycloid.Parameters, phi float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSVG(f, p, phi); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// pathData renders a curve as an SVG path: absolute move, line segments,
// and a closing Z for closed curves.
func pathData(c cycloid.Curve) string {
	var b strings.Builder
	b.Grow(16 * len(c.P))
	for i, pt := range c.P {
		cmd := byte('L')
		if i == 0 {
			cmd = 'M'
		}
		fmt.Fprintf(&b, "%c%.3f,%.3f ", cmd, pt.X, pt.Y)
	}
	if c.Closed {
		b.WriteByte('Z')
	}
	return strings.TrimSpace(b.String())
}
