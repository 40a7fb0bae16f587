package accessspace

import (
	"sort"
	"strings"
)

// SpaceSet is an ordered collection of spaces representing their
// union. Construction sorts members by the induced Space order, which
// gives SpaceSet a canonical form: two SpaceSets with the same members
// in any order compare equal.
type SpaceSet struct {
	spaces []*Space
}

// NewSpaceSet builds a SpaceSet, sorting its members into canonical
// order. Members with incompatible schemas sort arbitrarily relative
// to each other (Compare falls back to program order on error), since
// the reference implementation never validates schema homogeneity at
// construction time either.
func NewSpaceSet(spaces ...*Space) *SpaceSet {
	cp := make([]*Space, len(spaces))
	copy(cp, spaces)
	sort.SliceStable(cp, func(i, j int) bool {
		c, err := cp[i].Compare(cp[j])
		if err != nil {
			return false
		}
		return c < 0
	})
	return &SpaceSet{spaces: cp}
}

// Spaces returns the set's members in canonical order.
func (ss *SpaceSet) Spaces() []*Space {
	cp := make([]*Space, len(ss.spaces))
	copy(cp, ss.spaces)
	return cp
}

// Empty reports whether the set has no members, or all members are
// empty.
func (ss *SpaceSet) Empty() bool {
	if len(ss.spaces) == 0 {
		return true
	}
	for _, s := range ss.spaces {
		if !s.Empty() {
			return false
		}
	}
	return true
}

// Difference applies Space.Difference to every member against t,
// flattens the resulting slabs, drops empty spaces, and returns a new
// SpaceSet in canonical form.
func (ss *SpaceSet) Difference(t *Space) (*SpaceSet, error) {
	var flat []*Space
	for _, s := range ss.spaces {
		parts, err := s.Difference(t)
		if err != nil {
			return nil, err
		}
		for _, p := range parts {
			if !p.Empty() {
				flat = append(flat, p)
			}
		}
	}
	return NewSpaceSet(flat...), nil
}

// Intersect is a cheap membership probe: true iff any member
// intersects t. It does not construct intersections.
func (ss *SpaceSet) Intersect(t *Space) (bool, error) {
	for _, s := range ss.spaces {
		ok, err := s.Intersect(t)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Equal reports element-wise equality after both sets have been
// brought to canonical (sorted) form; since NewSpaceSet already sorts
// on construction, this is a straightforward positional comparison.
func (ss *SpaceSet) Equal(other *SpaceSet) bool {
	if len(ss.spaces) != len(other.spaces) {
		return false
	}
	for i, s := range ss.spaces {
		if !s.Equal(other.spaces[i]) {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (ss *SpaceSet) String() string {
	parts := make([]string, len(ss.spaces))
	for i, s := range ss.spaces {
		parts[i] = s.String()
	}
	return strings.Join(parts, "\n")
}
