package cycloid

import "errors"

var (
	// ErrPinCount means the pin counts cannot form a valid drive. The
	// external ring needs at least 4 pins (even) so the disk has 2 or more
	// lobes, and the output stage needs at least 3 pins.
	ErrPinCount = errors.New("cycloid: invalid pin count")
	// ErrEccentricity means the eccentricity is zero or negative.
	ErrEccentricity = errors.New("cycloid: eccentricity must be positive")
	// ErrEccentricShaft means eccentricity is at least half the camshaft
	// diameter, leaving a non-positive eccentric shaft radius.
	ErrEccentricShaft = errors.New("cycloid: eccentricity leaves no eccentric shaft radius")
	// ErrDimension means a diameter is non-positive or the tolerance is
	// negative.
	ErrDimension = errors.New("cycloid: invalid dimension")
	// ErrDegenerateProfile means the trochoid derivative vanished while
	// computing the disk offset, so the envelope curve is undefined there.
	ErrDegenerateProfile = errors.New("cycloid: degenerate disk profile derivative")
)
