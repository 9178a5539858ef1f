// Package svgwriter implements the SVG Emitter: area-ordered path
// emission, a transparency mask for null-colored loops, and optional
// Centripetal Catmull-Rom smoothing with sharp-corner detection. Built
// on explicit string building rather than a templating library (see
// DESIGN.md).
package svgwriter

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/willibrandon/raster2svg-go/pkg/raster"
)

const cornerThresholdDegrees = 122.0
const catmullRomAlpha = 0.5
const straightLineMaxIdealLength = 5

// Render emits the complete SVG document for width x height, given the
// simplified loops, the null color substituted for source transparency,
// and whether Catmull-Rom smoothing is enabled.
func Render(width, height int, loops []*raster.Loop, nullColor raster.Color, smooth bool) string {
	ordered := make([]*raster.Loop, len(loops))
	copy(ordered, loops)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Area > ordered[j].Area
	})

	var b strings.Builder
	fmt.Fprintf(&b, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`, width, height)
	b.WriteString("\n")

	writeMask(&b, width, height, ordered, nullColor)

	// Null-colored loops represent originally transparent regions: they
	// are never filled directly, only punched into the mask above.
	for _, loop := range ordered {
		if raster.Equal(loop.Color, nullColor) {
			continue
		}
		writePath(&b, loop, smooth)
	}

	b.WriteString("</svg>\n")
	return b.String()
}

func writeMask(b *strings.Builder, width, height int, ordered []*raster.Loop, nullColor raster.Color) {
	b.WriteString("<defs><mask id=\"sceneMask\">\n")
	fmt.Fprintf(b, `<rect x="0" y="0" width="%d" height="%d" fill="white"/>`, width, height)
	b.WriteString("\n")

	backgroundIdx := backgroundLoopIndex(ordered, nullColor)
	for i, loop := range ordered {
		if !raster.Equal(loop.Color, nullColor) {
			continue
		}
		if i == backgroundIdx {
			continue
		}
		b.WriteString("<path d=\"")
		b.WriteString(pathData(loop, false))
		b.WriteString("\" fill=\"black\"/>\n")
	}

	b.WriteString("</mask></defs>\n")
}

// backgroundLoopIndex returns the index, within the area-sorted slice,
// of the loop that represents the page background: the single largest
// loop overall, but only when that loop is itself null-colored (e.g. a
// sprite's surrounding transparent canvas). A null-colored loop that is
// not the largest loop overall — an interior transparent hole ringed by
// a filled region, say — is a real mask entry, not the background, and
// must still be punched out.
func backgroundLoopIndex(ordered []*raster.Loop, nullColor raster.Color) int {
	if len(ordered) == 0 {
		return -1
	}
	if raster.Equal(ordered[0].Color, nullColor) {
		return 0
	}
	return -1
}

func writePath(b *strings.Builder, loop *raster.Loop, smooth bool) {
	b.WriteString("<path d=\"")
	b.WriteString(pathData(loop, smooth))
	b.WriteString("\" ")
	fmt.Fprintf(b, `fill="rgb(%d,%d,%d)" fill-opacity="%s" mask="url(#sceneMask)"`,
		loop.Color.R, loop.Color.G, loop.Color.B, opacityPercent(loop.Color.A))
	b.WriteString("/>\n")
}

func opacityPercent(a uint8) string {
	pct := float64(a) / 255.0 * 100.0
	return fmt.Sprintf("%.4g%%", pct)
}

// pathData builds the "M ... L/C ..." data string shared by filled
// paths and mask punch-outs (the mask omits the fill attribute itself,
// which the caller appends).
func pathData(loop *raster.Loop, smooth bool) string {
	verts := loop.Simplified
	n := len(verts)
	if n == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "M %d %d", verts[0].X, verts[0].Y)

	useStraightOnly := !smooth || loop.IdealLength <= straightLineMaxIdealLength

	for i := 0; i < n; i++ {
		from := verts[i]
		to := verts[(i+1)%n]

		if n < 2 {
			break
		}

		if useStraightOnly || sharpAt(verts, i) || sharpAt(verts, (i+1)%n) {
			fmt.Fprintf(&b, " L %d %d", to.X, to.Y)
			continue
		}

		p0 := verts[(i-1+n)%n]
		p1 := from
		p2 := to
		p3 := verts[(i+2)%n]

		c1, c2, ok := catmullRomToBezier(p0, p1, p2, p3)
		if !ok {
			fmt.Fprintf(&b, " L %d %d", to.X, to.Y)
			continue
		}
		fmt.Fprintf(&b, " C %.3f %.3f %.3f %.3f %d %d", c1.x, c1.y, c2.x, c2.y, to.X, to.Y)
	}

	return b.String()
}

// sharpAt reports whether the interior angle at verts[i], formed with
// its immediate circular neighbors, is below cornerThresholdDegrees.
func sharpAt(verts []raster.Coordinate, i int) bool {
	n := len(verts)
	if n < 3 {
		return false
	}
	v := verts[i]
	p := verts[(i-1+n)%n]
	q := verts[(i+1)%n]

	px, py := float64(p.X-v.X), float64(p.Y-v.Y)
	qx, qy := float64(q.X-v.X), float64(q.Y-v.Y)

	pLen := math.Hypot(px, py)
	qLen := math.Hypot(qx, qy)
	if pLen == 0 || qLen == 0 {
		return false
	}

	cos := (px*qx + py*qy) / (pLen * qLen)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	angle := math.Acos(cos) * 180 / math.Pi
	return angle < cornerThresholdDegrees
}

type point struct{ x, y float64 }

// catmullRomToBezier converts the centripetal Catmull-Rom segment
// through p0,p1,p2,p3 (alpha=0.5) into the two interior control points
// of the cubic Bezier from p1 to p2. ok is false when any two of the
// four points coincide, in which case the caller falls back to a
// straight segment.
func catmullRomToBezier(p0, p1, p2, p3 raster.Coordinate) (c1, c2 point, ok bool) {
	if p0 == p1 || p1 == p2 || p2 == p3 || p0 == p2 || p1 == p3 {
		return point{}, point{}, false
	}

	f0 := point{float64(p0.X), float64(p0.Y)}
	f1 := point{float64(p1.X), float64(p1.Y)}
	f2 := point{float64(p2.X), float64(p2.Y)}
	f3 := point{float64(p3.X), float64(p3.Y)}

	t0 := 0.0
	t1 := t0 + math.Pow(dist(f0, f1), catmullRomAlpha)
	t2 := t1 + math.Pow(dist(f1, f2), catmullRomAlpha)
	t3 := t2 + math.Pow(dist(f2, f3), catmullRomAlpha)

	if t1-t0 == 0 || t2-t1 == 0 || t3-t2 == 0 || t2-t0 == 0 || t3-t1 == 0 {
		return point{}, point{}, false
	}

	m1 := scale(
		sub(
			sub(scale(sub(f1, f0), 1/(t1-t0)), scale(sub(f2, f0), 1/(t2-t0))),
			scale(sub(f2, f1), -1/(t2-t1)),
		),
		t2-t1,
	)
	m2 := scale(
		sub(
			sub(scale(sub(f2, f1), 1/(t2-t1)), scale(sub(f3, f1), 1/(t3-t1))),
			scale(sub(f3, f2), -1/(t3-t2)),
		),
		t3-t2,
	)

	c1 = add(f1, scale(m1, 1.0/3.0))
	c2 = sub(f2, scale(m2, 1.0/3.0))
	return c1, c2, true
}

func dist(a, b point) float64 {
	return math.Hypot(a.x-b.x, a.y-b.y)
}

func add(a, b point) point {
	return point{a.x + b.x, a.y + b.y}
}

func sub(a, b point) point {
	return point{a.x - b.x, a.y - b.y}
}

func scale(a point, s float64) point {
	return point{a.x * s, a.y * s}
}
