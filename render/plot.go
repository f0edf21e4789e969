package render

import (
	"image/color"
	"io"
	"math"
	"os"

	"github.com/gearkit/cycloid"
	"github.com/gearkit/cycloid/internal/d2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// pngColors mirror the SVG stroke palette.
var pngColors = map[cycloid.Layer]color.RGBA{
	cycloid.LayerExternalPins: {R: 0x66, G: 0x66, B: 0x66, A: 0xff},
	cycloid.LayerCycloidDisk:  {R: 0xff, G: 0x44, B: 0x44, A: 0xff},
	cycloid.LayerOutputPins:   {R: 0x44, G: 0xff, B: 0x44, A: 0xff},
	cycloid.LayerOutputHoles:  {R: 0xff, G: 0x44, B: 0xff, A: 0xff},
	cycloid.LayerCamshaftHole: {R: 0x44, G: 0x44, B: 0xff, A: 0xff},
	cycloid.LayerEccentricCam: {R: 0xff, G: 0xaa, B: 0x00, A: 0xff},
	cycloid.LayerOuterRing:    {R: 0x88, G: 0x88, B: 0x88, A: 0xff},
}

// WritePNG writes a raster quick-look of the drive at phase phi. It is a
// headless stand-in for an interactive viewer: every curve family is drawn
// as a line in its family color on square axes.
func WritePNG(w io.Writer, p cycloid.Parameters, phi float64) error {
	cs, err := cycloid.Generate(p, phi)
	if err != nil {
		return err
	}

	pl := plot.New()
	pl.Title.Text = "cycloidal drive"
	pl.X.Label.Text = "x"
	pl.Y.Label.Text = "y"

	var all d2.Set
	for _, layer := range drawOrder {
		for _, c := range cs[layer] {
			xys := make(plotter.XYs, len(c.P))
			for i, pt := range c.P {
				xys[i].X = pt.X
				xys[i].Y = pt.Y
			}
			line, err := plotter.NewLine(xys)
			if err != nil {
				return err
			}
			line.Color = pngColors[layer]
			pl.Add(line)
			all = append(all, c.P...)
		}
	}
	// Symmetric square axis ranges so circles stay circular.
	min, max := all.Min(), all.Max()
	extent := math.Max(math.Max(-min.X, -min.Y), math.Max(max.X, max.Y))
	pl.X.Min, pl.X.Max = -extent, extent
	pl.Y.Min, pl.Y.Max = -extent, extent

	wt, err := pl.WriterTo(6*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// CreatePNG writes the PNG snapshot to a new file at path.
func CreatePNG(path string, p cycloid.Parameters, phi float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, p, phi); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
