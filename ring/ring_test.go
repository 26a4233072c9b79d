package ring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// testRing builds an n-segment ring with in-order names and unit scale,
// laid flat at the origin. Geometry does not matter for trail tests.
func testRing(n int) *Ring {
	segments := make([]*Segment, n)
	for i := range segments {
		segments[i] = &Segment{
			Name:      fmt.Sprintf("petal.%03d", i),
			HitRadius: 1,
			Scale:     1,
		}
	}
	return BuildRing(segments, "petal")
}

func TestBuildRingSortsByNumericSuffix(t *testing.T) {
	segments := []*Segment{
		{Name: "petal.010"},
		{Name: "petal.002"},
		{Name: "petal.000"},
		{Name: "petal.007"},
	}
	r := BuildRing(segments, "petal")

	assert.Equal(t, 4, r.Len())
	assert.Equal(t, "petal.000", r.Segment(0).Name)
	assert.Equal(t, "petal.002", r.Segment(1).Name)
	assert.Equal(t, "petal.007", r.Segment(2).Name)
	assert.Equal(t, "petal.010", r.Segment(3).Name)
}

func TestBuildRingDropsForeignAndMalformedNames(t *testing.T) {
	segments := []*Segment{
		{Name: "petal.001"},
		{Name: "stem.004"},
		{Name: "petal"},
		{Name: "petal.xyz"},
		{Name: "petal.000"},
	}
	r := BuildRing(segments, "petal")

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, "petal.000", r.Segment(0).Name)
	assert.Equal(t, "petal.001", r.Segment(1).Name)
}

func TestDistanceWrapsAroundSeam(t *testing.T) {
	r := testRing(32)

	// Neighbors across the 31/0 seam are one hop apart, not 31.
	assert.Equal(t, 1, r.Distance(0, 31))
	assert.Equal(t, 1, r.Distance(31, 0))
	assert.Equal(t, 0, r.Distance(5, 5))
	assert.Equal(t, 16, r.Distance(0, 16))
}

func TestDistanceIsSymmetric(t *testing.T) {
	r := testRing(8)
	for a := 0; a < 8; a++ {
		for b := 0; b < 8; b++ {
			assert.Equal(t, r.Distance(a, b), r.Distance(b, a))
			assert.LessOrEqual(t, r.Distance(a, b), 4)
		}
	}
	assert.Equal(t, 3, r.Distance(3, 0))
	assert.Equal(t, 2, r.Distance(3, 5))
}
