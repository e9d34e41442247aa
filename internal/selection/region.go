// internal/selection/region.go
package selection

import "fmt"

// Region is one contiguous span of selected text, expressed as byte offsets.
// Start is the anchor edge (where the selection began) and End the active
// edge (where it is being extended), so a region dragged leftwards has
// Start > End. Use Min/Max for the normalized bounds.
//
// Horiz is an optional horizontal layout hint used for vertical caret
// movement; it is cleared whenever a drag produces the region, since the
// dragged extent invalidates any stale hint.
type Region struct {
	Start int
	End   int
	Horiz *int
}

// NewRegion creates a region from anchor to active edge.
func NewRegion(start, end int) Region {
	return Region{Start: start, End: end}
}

// Caret creates an empty region at offset.
func Caret(offset int) Region {
	return Region{Start: offset, End: offset}
}

// Min returns the lower bound of the region.
func (r Region) Min() int {
	if r.Start <= r.End {
		return r.Start
	}
	return r.End
}

// Max returns the upper bound of the region.
func (r Region) Max() int {
	if r.Start >= r.End {
		return r.Start
	}
	return r.End
}

// IsCaret returns true if the region has no extent.
func (r Region) IsCaret() bool {
	return r.Start == r.End
}

// WithHoriz returns a copy of the region with the horizontal hint replaced.
func (r Region) WithHoriz(horiz *int) Region {
	r.Horiz = horiz
	return r
}

// shouldMerge reports whether other (which starts at or after r) should be
// merged into r. Overlapping interiors always merge; regions that merely
// touch merge only when one of them is a caret.
func (r Region) shouldMerge(other Region) bool {
	if other.Min() < r.Max() {
		return true
	}
	return (r.IsCaret() || other.IsCaret()) && other.Min() == r.Max()
}

// mergeWith returns the union of the two regions. The merged region keeps
// r's direction; the horizontal hint is not worth preserving across a merge.
func (r Region) mergeWith(other Region) Region {
	newMin := r.Min()
	if other.Min() < newMin {
		newMin = other.Min()
	}
	newMax := r.Max()
	if other.Max() > newMax {
		newMax = other.Max()
	}
	if r.End >= r.Start {
		return NewRegion(newMin, newMax)
	}
	return NewRegion(newMax, newMin)
}

// String returns a compact representation for logs and test failures.
func (r Region) String() string {
	if r.IsCaret() {
		return fmt.Sprintf("Caret(%d)", r.Start)
	}
	return fmt.Sprintf("Region(%d..%d)", r.Start, r.End)
}
