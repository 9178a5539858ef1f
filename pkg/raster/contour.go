package raster

// TraceAll runs the Contour Tracer over every region's unmatched
// boundary set, then applies the per-region longest-loop selection:
// within each region, the longest traced loop by vertex count is kept
// (ties -> first encountered) and every other loop is discarded. The
// swap happens inside regions[i].loops, deliberately keeping the
// longest loop at index 0 rather than the first one traced.
func TraceAll(regions []*Region, width, height int) {
	stepCap := width * height
	if stepCap <= 0 {
		stepCap = 1
	}
	for _, region := range regions {
		traceRegion(region, stepCap)
		keepLongestLoop(region)
	}
}

func keepLongestLoop(region *Region) {
	if len(region.Loops) <= 1 {
		return
	}
	longest := 0
	for i := 1; i < len(region.Loops); i++ {
		if region.Loops[i].Len() > region.Loops[longest].Len() {
			longest = i
		}
	}
	region.Loops[0], region.Loops[longest] = region.Loops[longest], region.Loops[0]
	region.Loops = region.Loops[:1]
}

// traceRegion drains region.UnmatchedPixels into one or more Loops.
func traceRegion(region *Region, stepCap int) {
	for len(region.UnmatchedPixels) > 0 {
		start := pickStart(region)
		loop := traceOneLoop(region, start, stepCap)
		region.Loops = append(region.Loops, loop)
	}
}

// pickStart returns and removes an arbitrary remaining boundary pixel,
// using discovery order for determinism.
func pickStart(region *Region) Coordinate {
	for len(region.unmatchedOrder) > 0 {
		key := region.unmatchedOrder[0]
		region.unmatchedOrder = region.unmatchedOrder[1:]
		if coord, ok := region.UnmatchedPixels[key]; ok {
			delete(region.UnmatchedPixels, key)
			return coord
		}
	}
	// Discovery order exhausted but the map still has entries (should
	// not happen given consistent bookkeeping); fall back to any entry.
	for key, coord := range region.UnmatchedPixels {
		delete(region.UnmatchedPixels, key)
		return coord
	}
	return Coordinate{}
}

func traceOneLoop(region *Region, start Coordinate, stepCap int) Loop {
	loop := Loop{Color: region.Color}
	loop.Coordinates = append(loop.Coordinates, start)

	curr := start
	nxt := start
	moved := false
	closed := false

	for step := 0; step < stepCap; step++ {
		advanced := false
		for _, cand := range nxt.Neighbors8() {
			if cand.X < 0 || cand.X >= region.Width {
				continue
			}
			key := cand.Key(region.Width)
			if _, ok := region.UnmatchedPixels[key]; ok {
				delete(region.UnmatchedPixels, key)
				nxt = cand
				loop.Coordinates = append(loop.Coordinates, nxt)
				moved = true
				advanced = true
				break
			}
		}
		if advanced {
			continue
		}

		if len(region.UnmatchedPixels) == 0 {
			nxt = curr
			closed = true
			break
		}

		if moved && chebyshev(nxt, curr) <= 1 {
			nxt = curr
			closed = true
			break
		}

		closest, found := nearestUnmatched(region, nxt)
		if !found {
			break
		}
		distToClosest := squaredDist(nxt, closest)
		distBack := squaredDist(nxt, curr)
		if distToClosest > distBack {
			nxt = curr
			closed = true
			break
		}
		delete(region.UnmatchedPixels, closest.Key(region.Width))
		nxt = closest
		loop.Coordinates = append(loop.Coordinates, nxt)
		moved = true
	}

	loop.Closed = closed
	return loop
}

// nearestUnmatched linear-scans the remaining unmatched set for the
// coordinate closest by Euclidean distance to c.
func nearestUnmatched(region *Region, c Coordinate) (Coordinate, bool) {
	found := false
	var best Coordinate
	bestDist := 0
	for _, coord := range region.UnmatchedPixels {
		d := squaredDist(c, coord)
		if !found || d < bestDist {
			best = coord
			bestDist = d
			found = true
		}
	}
	return best, found
}

func squaredDist(a, b Coordinate) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

func chebyshev(a, b Coordinate) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}
