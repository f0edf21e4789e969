// Package render serializes cycloid curve sets into CAD exchange formats.
//
// Two vector formats are supported: layered DXF engineering drawings with
// true point/circle/polyline entities and per-layer colors, and flat SVG
// where every curve is a stroked fill-none path color-coded per family. A
// PNG quick-look snapshot is available for headless inspection. Each format
// has a CreateX(path) helper wrapping a WriteX(w) function, and Export
// dispatches on the file extension.
//
// Exports freeze the animation: they take a fixed phase angle and re-derive
// the heavy curves (disk profile, housing silhouette) at reduced export
// resolution so downstream CAD files stay light.
package render

import (
	"io"

	"github.com/gearkit/cycloid"
)

// drawOrder fixes the serialization order of curve families across all
// formats.
var drawOrder = []cycloid.Layer{
	cycloid.LayerExternalPins,
	cycloid.LayerCycloidDisk,
	cycloid.LayerOutputPins,
	cycloid.LayerOutputHoles,
	cycloid.LayerCamshaftHole,
	cycloid.LayerEccentricCam,
	cycloid.LayerOuterRing,
}

// errWriter latches the first write error so emitters that do not return
// errors themselves can still surface I/O failures.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(b []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(b)
	ew.err = err
	return n, err
}
