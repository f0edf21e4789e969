package render

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gearkit/cycloid"
)

// ErrUnsupportedFormat is returned by Export for a file extension no
// writer handles. It is a distinct condition so callers can prompt for a
// different format instead of failing generically.
var ErrUnsupportedFormat = errors.New("render: unsupported export format")

// Export writes the drive geometry at phase phi to path, picking the
// format from the file extension: .dxf, .svg or .png.
func Export(path string, p cycloid.Parameters, phi float64) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".dxf":
		return CreateDXF(path, p, phi)
	case ".svg":
		return CreateSVG(path, p, phi)
	case ".png":
		return CreatePNG(path, p, phi)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
