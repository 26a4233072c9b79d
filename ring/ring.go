package ring

import (
	"image/color"
	"sort"
	"strconv"
	"strings"
)

// Segment is one petal of the bloom. It carries no animation logic of its
// own; Color and Scale are overwritten every tick by the trail field and
// read back only by the renderer.
type Segment struct {
	// Name is the source identifier the segment was loaded under,
	// e.g. "petal.007". The numeric suffix fixes ring order.
	Name string

	// Center is the segment's surface point in world space.
	Center Vec3

	// HitRadius is the radius of the flat disc used for the probe's
	// downward hit test.
	HitRadius float64

	Color color.NRGBA
	Scale float64
}

// Ring is a closed, ordered loop of segments. Index N-1 is adjacent to
// index 0. The order is fixed at construction and never changes; it is
// what ring distance is measured against.
type Ring struct {
	segments []*Segment
}

// BuildRing filters segments to names of the form "<prefix>.<digits>",
// sorts them ascending by the numeric suffix and returns the closed ring.
// Segments with a foreign prefix or a malformed suffix are dropped.
func BuildRing(segments []*Segment, prefix string) *Ring {
	kept := make([]*Segment, 0, len(segments))
	for _, s := range segments {
		if suffixIndex(s.Name, prefix) >= 0 {
			kept = append(kept, s)
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		return suffixIndex(kept[i].Name, prefix) < suffixIndex(kept[j].Name, prefix)
	})
	return &Ring{segments: kept}
}

// suffixIndex extracts the numeric suffix from names like "petal.007".
// Returns -1 when the name does not match the prefix or has no parseable
// suffix.
func suffixIndex(name, prefix string) int {
	rest, ok := strings.CutPrefix(name, prefix+".")
	if !ok {
		return -1
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return -1
	}
	return n
}

// Len returns the number of segments on the ring.
func (r *Ring) Len() int {
	return len(r.segments)
}

// Segment returns the segment at index i in ring order.
func (r *Ring) Segment(i int) *Segment {
	return r.segments[i]
}

// Segments returns the segments in ring order, for iteration by the
// renderer. Callers must not reorder the slice.
func (r *Ring) Segments() []*Segment {
	return r.segments
}

// Distance returns the shortest hop count between two indices on the
// closed loop, considering both directions around the ring.
func (r *Ring) Distance(a, b int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	if wrap := len(r.segments) - d; wrap < d {
		return wrap
	}
	return d
}
