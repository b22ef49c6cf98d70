package geom2d

import "errors"

var (
	// ErrTooFewPoints indicates that a shape was requested with fewer points
	// than it needs: an open arc needs at least 2, a closed arc at least 3.
	ErrTooFewPoints = errors.New("geom2d: too few points")

	// ErrInvalidDiameter indicates a negative, infinite or NaN diameter.
	ErrInvalidDiameter = errors.New("geom2d: invalid diameter")

	// ErrInvalidAngle indicates an infinite or NaN angle.
	ErrInvalidAngle = errors.New("geom2d: invalid angle")

	// ErrDegenerateLine indicates that the two points defining a line coincide.
	ErrDegenerateLine = errors.New("geom2d: line points coincide")

	// ErrIndexOutOfRange indicates a stored index that does not name a point
	// of the cloud it is checked against.
	ErrIndexOutOfRange = errors.New("geom2d: index out of range")

	// ErrNoParent indicates a topological point cloud that has no parent cloud.
	ErrNoParent = errors.New("geom2d: topological point cloud has no parent")
)
