// internal/selection/selection.go
package selection

import (
	"sort"
	"strings"
)

// Selection is an ordered set of non-overlapping regions, sorted by their
// lower bound. The zero value is a valid empty selection. Selections are
// cheap to clone; the editing model is clone-then-modify, never mutation of
// a selection some other component still holds.
type Selection struct {
	regions []Region
}

// New creates an empty selection.
func New() *Selection {
	return &Selection{}
}

// NewSelection creates a selection holding a single region.
func NewSelection(r Region) *Selection {
	return &Selection{regions: []Region{r}}
}

// Len returns the number of regions.
func (s *Selection) Len() int {
	return len(s.regions)
}

// Regions returns a copy of the regions, in order.
func (s *Selection) Regions() []Region {
	out := make([]Region, len(s.regions))
	copy(out, s.regions)
	return out
}

// Get returns the region at index i.
func (s *Selection) Get(i int) Region {
	return s.regions[i]
}

// Last returns the most recently positioned region (the highest one) and
// false if the selection is empty.
func (s *Selection) Last() (Region, bool) {
	if len(s.regions) == 0 {
		return Region{}, false
	}
	return s.regions[len(s.regions)-1], true
}

// Clone returns a deep copy of the selection.
func (s *Selection) Clone() *Selection {
	clone := &Selection{regions: make([]Region, len(s.regions))}
	copy(clone.regions, s.regions)
	return clone
}

// search returns the index of the first region whose Max is >= offset, or
// Len() if offset is past every region.
func (s *Selection) search(offset int) int {
	n := len(s.regions)
	if n == 0 || offset > s.regions[n-1].Max() {
		return n
	}
	return sort.Search(n, func(i int) bool { return s.regions[i].Max() >= offset })
}

// Add inserts a region, keeping the set ordered and merging as needed.
// Regions with intersecting interiors merge; regions that merely touch merge
// only when a caret is involved. The merged region keeps the direction of
// the added region.
func (s *Selection) Add(region Region) {
	ix := s.search(region.Min())
	if ix == len(s.regions) {
		s.regions = append(s.regions, region)
		return
	}

	endIx := ix
	if s.regions[ix].Min() <= region.Min() {
		if s.regions[ix].shouldMerge(region) {
			region = region.mergeWith(s.regions[ix])
		} else {
			ix++
		}
		endIx++
	}
	for endIx < len(s.regions) && region.shouldMerge(s.regions[endIx]) {
		region = region.mergeWith(s.regions[endIx])
		endIx++
	}

	if ix == endIx {
		// No merge happened; open a slot at ix.
		s.regions = append(s.regions, Region{})
		copy(s.regions[ix+1:], s.regions[ix:])
		s.regions[ix] = region
	} else {
		s.regions[ix] = region
		s.regions = append(s.regions[:ix+1], s.regions[endIx:]...)
	}
}

// DeleteRange removes all regions intersecting [start, end]. When
// deleteAdjacent is true, regions that merely touch the bounds are removed
// as well; a caret query (start == end) then deletes every region covering
// or touching that offset.
func (s *Selection) DeleteRange(start, end int, deleteAdjacent bool) {
	first := s.search(start)
	last := s.search(end)
	if first >= len(s.regions) {
		return
	}
	if !deleteAdjacent && s.regions[first].Max() == start {
		first++
	}
	if last < len(s.regions) &&
		((deleteAdjacent && s.regions[last].Min() <= end) ||
			(!deleteAdjacent && s.regions[last].Min() < end)) {
		last++
	}
	if first < last {
		s.regions = append(s.regions[:first], s.regions[last:]...)
	}
}

// RegionsInRange returns the regions intersecting or touching [start, end].
// With start == end this answers "which regions sit at this offset".
func (s *Selection) RegionsInRange(start, end int) []Region {
	first := s.search(start)
	last := s.search(end)
	if last < len(s.regions) && s.regions[last].Min() <= end {
		last++
	}
	if first >= last {
		return nil
	}
	out := make([]Region, last-first)
	copy(out, s.regions[first:last])
	return out
}

// String returns a compact representation for logs and test failures.
func (s *Selection) String() string {
	parts := make([]string, len(s.regions))
	for i, r := range s.regions {
		parts[i] = r.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
