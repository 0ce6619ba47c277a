package systems

import "errors"

var (
	// ErrUnsupportedFormat is returned when the document's format version is
	// missing, malformed or outside SupportedFormat.
	ErrUnsupportedFormat = errors.New("systems: unsupported format version")

	// ErrBadShape is returned when a matrix is not 2×2 or a vector does not
	// have two components.
	ErrBadShape = errors.New("systems: expected a 2×2 matrix and 2-vectors")

	// ErrNoSystems is returned when a document declares no systems.
	ErrNoSystems = errors.New("systems: no systems in document")
)
