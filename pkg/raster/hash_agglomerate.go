package raster

import "sort"

// Phase B spatial-hash agglomeration. Colors within hashWidth's cube
// side are merged into their own spatial hash bucket, accepting the
// known approximation that two colors straddling a cube boundary may
// miss each other even if close.

// spatialHashConstants are the four odd multipliers used by the fixed
// integer hash H(qr, qg, qb, qa).
const (
	hashConstR = 0x9E3779B1
	hashConstG = 0x85EBCA77
	hashConstB = 0xC2B2AE3D
	hashConstA = 0x27D4EB2F
)

func spatialHash(qr, qg, qb, qa int) int64 {
	h := int64(qr)*hashConstR ^ int64(qg)*hashConstG ^ int64(qb)*hashConstB ^ int64(qa)*hashConstA
	if h < 0 {
		h = -h
	}
	return h
}

func bucketOf(c Color, hashWidth, numBuckets int) int {
	qr := int(c.R) / hashWidth
	qg := int(c.G) / hashWidth
	qb := int(c.B) / hashWidth
	qa := int(c.A) / hashWidth
	return int(spatialHash(qr, qg, qb, qa) % int64(numBuckets))
}

// disjointSet is a minimal union-find over color indices, tracking the
// live count at each representative. Absorbed indices carry count 0
// (tombstoned) and always resolve to their absorber.
type disjointSet struct {
	parent []int
	count  []int
}

func newDisjointSet(counts []int) *disjointSet {
	ds := &disjointSet{
		parent: make([]int, len(counts)),
		count:  make([]int, len(counts)),
	}
	for i := range ds.parent {
		ds.parent[i] = i
		ds.count[i] = counts[i]
	}
	return ds
}

func (ds *disjointSet) find(x int) int {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}
	return x
}

// union merges a and b. The dominant survivor is whichever side
// currently holds the higher count; its count absorbs the other's,
// which is tombstoned to zero.
func (ds *disjointSet) union(a, b int) {
	ra, rb := ds.find(a), ds.find(b)
	if ra == rb {
		return
	}
	if ds.count[ra] >= ds.count[rb] {
		ds.count[ra] += ds.count[rb]
		ds.count[rb] = 0
		ds.parent[rb] = ra
	} else {
		ds.count[rb] += ds.count[ra]
		ds.count[ra] = 0
		ds.parent[ra] = rb
	}
}

// agglomerate performs Phases B and C: bucket colors by spatial hash,
// merge close pairs within a bucket (dominant-absorbs-recessive), then
// drop the resulting zero-count tombstones. The returned slice is in
// representative-index order (i.e. still the original encounter
// order, filtered), ready for Phase C's count-descending sort.
func agglomerate(entries []ColorRecord, hashWidth int) []ColorRecord {
	n := len(entries)
	if n == 0 {
		return nil
	}

	numBuckets := 5 * n
	if numBuckets < 1 {
		numBuckets = 1
	}

	buckets := make([]int, n)
	for i, e := range entries {
		buckets[i] = bucketOf(e.Color, hashWidth, numBuckets)
	}

	// Group indices into contiguous per-bucket runs by sorting
	// (index, bucket) ascending by bucket, stably.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return buckets[order[i]] < buckets[order[j]]
	})

	groups := make(map[int][]int, n)
	for _, idx := range order {
		b := buckets[idx]
		groups[b] = append(groups[b], idx)
	}

	counts := make([]int, n)
	for i, e := range entries {
		counts[i] = e.Count
	}
	ds := newDisjointSet(counts)

	for i, e := range entries {
		group := groups[buckets[i]]
		for _, j := range group {
			if j == i {
				continue
			}
			if ds.count[ds.find(j)] == 0 {
				continue
			}
			if hashDistance(e.Color, entries[j].Color) < float64(hashWidth) {
				ds.union(i, j)
			}
		}
	}

	survivors := make([]ColorRecord, 0, n)
	for i, e := range entries {
		if ds.find(i) != i {
			continue
		}
		if ds.count[i] == 0 {
			continue
		}
		survivors = append(survivors, ColorRecord{Color: e.Color, Count: ds.count[i]})
	}
	return survivors
}
