// Package geometry holds the axis-aligned cuboid primitives the packer
// builds on: fit tests, overlap tests, and containment tests over the
// free space left inside a pallet.
package geometry

// Cuboid is an axis-aligned box: a free rectangle of space, or the bounds
// of a placed item, depending on context. X/Y/Z is the origin corner
// closest to the pallet's own origin; Length/Width/Height run along the
// same X/Y/Z axes as Product.
type Cuboid struct {
	X, Y, Z                   float64
	Length, Width, Height float64
}

// Volume returns the cuboid's volume.
func (c Cuboid) Volume() float64 {
	return c.Length * c.Width * c.Height
}

// Fits reports whether an item of the given oriented dimensions fits
// inside c without rotation — a pure axis-aligned comparison.
func Fits(c Cuboid, l, w, h float64) bool {
	return c.Length >= l && c.Width >= w && c.Height >= h
}

// Intersects reports whether two cuboids overlap in all three axes.
// Touching faces do not count as overlap: the comparison is strict.
func Intersects(a, b Cuboid) bool {
	return a.X < b.X+b.Length && b.X < a.X+a.Length &&
		a.Y < b.Y+b.Width && b.Y < a.Y+a.Width &&
		a.Z < b.Z+b.Height && b.Z < a.Z+a.Height
}

// Contains reports whether inner lies fully within outer, inclusive on
// all six faces.
func Contains(outer, inner Cuboid) bool {
	return outer.X <= inner.X && inner.X+inner.Length <= outer.X+outer.Length &&
		outer.Y <= inner.Y && inner.Y+inner.Width <= outer.Y+outer.Width &&
		outer.Z <= inner.Z && inner.Z+inner.Height <= outer.Z+outer.Height
}
