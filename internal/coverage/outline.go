// Package coverage fills glyph outlines into 8-bit anti-aliased coverage masks.
package coverage

import "math"

// Point is an outline point in pixel units, y pointing up from the baseline.
type Point struct {
	X, Y float32
}

// Op is the type of path operation.
type Op uint8

const (
	// OpMoveTo starts a new contour.
	OpMoveTo Op = iota

	// OpLineTo draws a line to the target point.
	OpLineTo

	// OpQuadTo draws a quadratic bezier curve.
	OpQuadTo

	// OpCubicTo draws a cubic bezier curve.
	OpCubicTo
)

// String returns a string representation of the operation.
func (op Op) String() string {
	switch op {
	case OpMoveTo:
		return "MoveTo"
	case OpLineTo:
		return "LineTo"
	case OpQuadTo:
		return "QuadTo"
	case OpCubicTo:
		return "CubicTo"
	default:
		return "Unknown"
	}
}

// numPoints returns how many entries of Segment.Points the operation uses.
func (op Op) numPoints() int {
	switch op {
	case OpQuadTo:
		return 2
	case OpCubicTo:
		return 3
	default:
		return 1
	}
}

// Segment is one path operation of an outline.
//   - MoveTo, LineTo: Points[0] is the target point
//   - QuadTo: Points[0] is control, Points[1] is target
//   - CubicTo: Points[0], Points[1] are controls, Points[2] is target
type Segment struct {
	Op     Op
	Points [3]Point
}

// Outline is the vector outline of a single glyph.
type Outline struct {
	Segments []Segment
}

// IsEmpty returns true if the outline has no segments.
func (o *Outline) IsEmpty() bool {
	return o == nil || len(o.Segments) == 0
}

// Scale multiplies every coordinate by factor in place and returns o.
func (o *Outline) Scale(factor float32) *Outline {
	if o == nil {
		return nil
	}
	for i := range o.Segments {
		for j := range o.Segments[i].Points {
			o.Segments[i].Points[j].X *= factor
			o.Segments[i].Points[j].Y *= factor
		}
	}
	return o
}

// ControlBox returns the box spanned by every point of the outline,
// control points included. An empty outline has a zero box.
func (o *Outline) ControlBox() (minX, minY, maxX, maxY float32) {
	if o.IsEmpty() {
		return 0, 0, 0, 0
	}
	minX, minY = math.MaxFloat32, math.MaxFloat32
	maxX, maxY = -math.MaxFloat32, -math.MaxFloat32
	for _, seg := range o.Segments {
		for _, p := range seg.Points[:seg.Op.numPoints()] {
			minX = min(minX, p.X)
			minY = min(minY, p.Y)
			maxX = max(maxX, p.X)
			maxY = max(maxY, p.Y)
		}
	}
	return minX, minY, maxX, maxY
}
