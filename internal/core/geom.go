// Package core provides fundamental types and utilities shared by the game
// simulation and its frontends. It contains no external dependencies
// (especially no Bubble Tea or ebiten) to keep game logic pure and testable.
package core

// Vec2 is a 2D vector in field-space units.
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for constructing a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Half returns v / 2.
func (v Vec2) Half() Vec2 {
	return v.Scale(0.5)
}

// BoundingBox is an axis-aligned box in field space.
// Min is the lower-left corner and Max the upper-right one.
type BoundingBox struct {
	Min Vec2
	Max Vec2
}

// BoundsFromCenter builds the box of an entity centred at pos with the given scale.
func BoundsFromCenter(pos, scale Vec2) BoundingBox {
	half := scale.Half()
	return BoundingBox{
		Min: pos.Sub(half),
		Max: pos.Add(half),
	}
}

// Intersects reports whether the open interiors of both boxes overlap.
// Boxes that only share an edge do not intersect.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return b.Max.X > other.Min.X &&
		b.Min.X < other.Max.X &&
		b.Max.Y > other.Min.Y &&
		b.Min.Y < other.Max.Y
}

// Overlap returns the penetration depth of the two boxes on each axis.
// A component <= 0 means the boxes are separated on that axis.
func (b BoundingBox) Overlap(other BoundingBox) Vec2 {
	return Vec2{
		X: min(b.Max.X, other.Max.X) - max(b.Min.X, other.Min.X),
		Y: min(b.Max.Y, other.Max.Y) - max(b.Min.Y, other.Min.Y),
	}
}

// Translate moves both corners by d, keeping the box shape.
func (b BoundingBox) Translate(d Vec2) BoundingBox {
	return BoundingBox{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// CenterSum returns Min + Max, i.e. twice the centre. Comparing sums avoids
// the division when only the relative order of two centres matters.
func (b BoundingBox) CenterSum() Vec2 {
	return b.Min.Add(b.Max)
}

// Size returns the box extent.
func (b BoundingBox) Size() Vec2 {
	return b.Max.Sub(b.Min)
}

// Rect represents an integer axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
