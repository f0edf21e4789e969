package render

import (
	"io"
	"os"

	"github.com/gearkit/cycloid"
	"github.com/gearkit/cycloid/internal/d2"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"

	"gonum.org/v1/gonum/spatial/r2"
)

// dxfLayers maps every exported layer to its AutoCAD color index. Gray (8)
// has no named constant in the dxf color table.
var dxfLayers = []struct {
	name cycloid.Layer
	col  color.ColorNumber
}{
	{cycloid.LayerCycloidDisk, color.Red},
	{cycloid.LayerOutputPins, color.Green},
	{cycloid.LayerOutputHoles, color.Magenta},
	{cycloid.LayerCamshaftHole, color.Blue},
	{cycloid.LayerEccentricCam, color.Yellow},
	{cycloid.LayerOuterRing, color.ColorNumber(8)},
	{cycloid.LayerPinCenters, color.White},
	{cycloid.LayerCenterAxis, color.Cyan},
}

// WriteDXF writes the drive geometry at phase phi as a layered DXF
// drawing. Circular features become true CIRCLE entities, the external pin
// centers and the origin become POINT drill references, and the disk and
// housing profiles become closed LWPOLYLINEs re-derived at export
// resolution. Every closed profile is written as a closed entity.
func WriteDXF(w io.Writer, p cycloid.Parameters, phi float64) error {
	d, err := buildDXF(p, phi)
	if err != nil {
		return err
	}
	_, err = d.WriteTo(w)
	return err
}

// CreateDXF writes the DXF drawing to a new file at path. On write failure
// the file is left behind partial and the error is returned; no recovery
// is attempted.
func CreateDXF(path string, p cycloid.Parameters, phi float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteDXF(f, p, phi); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func buildDXF(p cycloid.Parameters, phi float64) (io.WriterTo, error) {
	shaftRadius := cycloid.EccentricShaftRadius(p)
	if shaftRadius <= 0 {
		return nil, cycloid.ErrEccentricShaft
	}
	disk, err := cycloid.DiskProfile(p, phi, cycloid.ExportPointsPerLobe)
	if err != nil {
		return nil, err
	}

	d := dxf.NewDrawing()
	for _, l := range dxfLayers {
		if _, err := d.AddLayer(string(l.name), l.col, dxf.DefaultLineType, false); err != nil {
			return nil, err
		}
	}
	center := p.EccentricVector(phi)

	// Origin axis reference.
	if err := d.ChangeLayer(string(cycloid.LayerCenterAxis)); err != nil {
		return nil, err
	}
	d.Point(0, 0, 0)

	// External pin drill centers.
	if err := d.ChangeLayer(string(cycloid.LayerPinCenters)); err != nil {
		return nil, err
	}
	for _, c := range cycloid.PinCenters(p) {
		d.Point(c.X, c.Y, 0)
	}

	// Merged housing silhouette plus outer boundary.
	if p.OuterRing {
		if err := d.ChangeLayer(string(cycloid.LayerOuterRing)); err != nil {
			return nil, err
		}
		inner, _ := cycloid.Housing(p, cycloid.ExportPointsPerPin)
		d.LwPolyline(true, lwVertices(inner.P)...)
		d.Circle(0, 0, 0, p.RingDiameter/2+p.OuterRingWidth)
	}

	// Output pins and their clearance holes in the disk.
	if err := d.ChangeLayer(string(cycloid.LayerOutputPins)); err != nil {
		return nil, err
	}
	for _, c := range cycloid.OutputPinCenters(p, phi) {
		d.Circle(c.X, c.Y, 0, p.OutputPinDiameter/2)
	}
	if err := d.ChangeLayer(string(cycloid.LayerOutputHoles)); err != nil {
		return nil, err
	}
	holeRadius := cycloid.OutputHoleRadius(p)
	for _, c := range cycloid.OutputHoleCenters(p, phi) {
		d.Circle(c.X, c.Y, 0, holeRadius)
	}

	// Camshaft bore and eccentric shaft.
	if err := d.ChangeLayer(string(cycloid.LayerCamshaftHole)); err != nil {
		return nil, err
	}
	d.Circle(0, 0, 0, cycloid.CamshaftBoreRadius(p))
	if err := d.ChangeLayer(string(cycloid.LayerEccentricCam)); err != nil {
		return nil, err
	}
	d.Circle(center.X, center.Y, 0, shaftRadius)

	// Disk outline as one closed polyline spanning all lobes.
	if err := d.ChangeLayer(string(cycloid.LayerCycloidDisk)); err != nil {
		return nil, err
	}
	d.LwPolyline(true, lwVertices(disk.P)...)

	return d, nil
}

// lwVertices converts curve points to polyline vertex slices, dropping the
// duplicated closing point: the entity's closed flag supplies the closure.
func lwVertices(pts []r2.Vec) [][]float64 {
	n := len(pts)
	if n > 1 && d2.EqualWithin(pts[0], pts[n-1], 1e-9) {
		n--
	}
	vs := make([][]float64, n)
	for i, pt := range pts[:n] {
		vs[i] = []float64{pt.X, pt.Y}
	}
	return vs
}
