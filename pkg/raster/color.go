// Package raster implements the core raster-to-vector pipeline: palette
// reduction, region segmentation, contour tracing, and polygon
// simplification. Every stage runs to completion over in-memory,
// tree-owned structures before the next begins; nothing here suspends,
// retries, or runs concurrently.
package raster

import "image/color"

// Color is an 8-bit RGBA value. Unlike color.RGBA it carries no
// premultiplied-alpha assumption: components are compared and combined
// as plain bytes.
type Color struct {
	R, G, B, A uint8
}

// FromRGBA converts a standard library color.Color to a Color,
// discarding the parent image's color model by taking the high bytes of
// its RGBA() accessor. Those values are alpha-premultiplied, so a
// partially transparent source pixel arrives with R, G and B scaled by
// its alpha, and a fully transparent one as (0,0,0,0).
func FromRGBA(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

// Pack encodes the color into a 32-bit key (R,G,B,A from high to low
// byte) suitable as a map key. Spec.md §9 replaces the original
// implementation's string-keyed color maps with this packed integer.
func (c Color) Pack() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// Unpack reconstructs a Color from a key produced by Pack.
func Unpack(key uint32) Color {
	return Color{
		R: uint8(key >> 24),
		G: uint8(key >> 16),
		B: uint8(key >> 8),
		A: uint8(key),
	}
}

// Equal is the relaxed RGBA equality used everywhere in this package:
// if either color has alpha 0, only R, G, B are compared, so a fully
// transparent pixel matches any other pixel of the same RGB regardless
// of the other pixel's own alpha. This asymmetry is load-bearing for
// boundary traversal and must be the only comparison operator used for
// color identity.
func Equal(a, b Color) bool {
	if a.A == 0 || b.A == 0 {
		return a.R == b.R && a.G == b.G && a.B == b.B
	}
	return a == b
}

// DistanceSquared returns the squared Euclidean RGBA distance between
// two colors. Squared distances avoid a sqrt call in the hot
// nearest-color search of Phase E repaint; callers that need the true
// distance (e.g. the hashWidth comparison in Phase B) take a sqrt.
func DistanceSquared(a, b Color) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	da := int(a.A) - int(b.A)
	return dr*dr + dg*dg + db*db + da*da
}
