// Package accessspace implements Space and SpaceSet: the Cartesian
// product of ranges that models a reachable region, and the
// canonical-form union-of-spaces used to represent residual
// reachability after rule application.
package accessspace

import (
	"fmt"
	"strings"

	"github.com/accessdomain/fwengine/pkg/rangealgebra"
)

// Space is an ordered sequence of ranges, one per dimension, of a
// fixed schema (the ordered list of each range's Kind). Spaces are
// immutable values; every operation returns a new Space.
type Space struct {
	ranges []rangealgebra.Range
}

// NewSpace builds a Space from the given ranges, in dimension order.
func NewSpace(ranges ...rangealgebra.Range) *Space {
	cp := make([]rangealgebra.Range, len(ranges))
	copy(cp, ranges)
	return &Space{ranges: cp}
}

// Ranges returns the space's ranges in dimension order.
func (s *Space) Ranges() []rangealgebra.Range {
	cp := make([]rangealgebra.Range, len(s.ranges))
	copy(cp, s.ranges)
	return cp
}

// Schema returns the ordered list of dimension kinds.
func (s *Space) Schema() []rangealgebra.Kind {
	schema := make([]rangealgebra.Kind, len(s.ranges))
	for i, r := range s.ranges {
		schema[i] = r.Kind()
	}
	return schema
}

// Compatible reports whether s and other share the same schema.
func (s *Space) Compatible(other *Space) bool {
	if len(s.ranges) != len(other.ranges) {
		return false
	}
	for i, r := range s.ranges {
		if r.Kind() != other.ranges[i].Kind() {
			return false
		}
	}
	return true
}

func (s *Space) checkCompatible(other *Space) error {
	if !s.Compatible(other) {
		return NewSchemaMismatchError(s.Schema(), other.Schema())
	}
	return nil
}

// Empty reports whether any dimension of s is empty.
func (s *Space) Empty() bool {
	for _, r := range s.ranges {
		if r.Empty() {
			return true
		}
	}
	return false
}

// Intersect is a membership test, not a constructive intersection: it
// reports false as soon as any dimension fails to overlap.
func (s *Space) Intersect(other *Space) (bool, error) {
	if err := s.checkCompatible(other); err != nil {
		return false, err
	}
	for i, r := range s.ranges {
		if res, ok, err := r.Intersect(other.ranges[i]); err != nil {
			return false, err
		} else if !ok || res.Empty() {
			return false, nil
		}
	}
	return true, nil
}

// Difference computes s \ other. If the spaces don't intersect, the
// result is {s} unchanged. Otherwise, for each dimension i, it computes
// the per-dimension difference (one or two sub-ranges) and, for every
// non-empty sub-range, emits a new Space equal to s with dimension i
// replaced by that sub-range and every other dimension left unchanged.
//
// The resulting spaces cover s \ other but are not required to be
// mutually disjoint across dimensions — this is the same decomposition
// the reference algorithm uses; a stricter orthogonal-slab
// decomposition is not implemented (see the design notes on this
// topic: it changes the output space count and is not required by the
// Access API).
func (s *Space) Difference(other *Space) ([]*Space, error) {
	if err := s.checkCompatible(other); err != nil {
		return nil, err
	}
	intersects, err := s.Intersect(other)
	if err != nil {
		return nil, err
	}
	if !intersects {
		return []*Space{NewSpace(s.ranges...)}, nil
	}

	var out []*Space
	for i, r := range s.ranges {
		subRanges, err := r.Difference(other.ranges[i])
		if err != nil {
			return nil, err
		}
		for _, sub := range subRanges {
			if sub.Empty() {
				continue
			}
			replaced := make([]rangealgebra.Range, len(s.ranges))
			copy(replaced, s.ranges)
			replaced[i] = sub
			out = append(out, NewSpace(replaced...))
		}
	}
	return out, nil
}

// Equal reports dimension-wise equality.
func (s *Space) Equal(other *Space) bool {
	if len(s.ranges) != len(other.ranges) {
		return false
	}
	for i, r := range s.ranges {
		if !r.Equal(other.ranges[i]) {
			return false
		}
	}
	return true
}

// Compare implements the lexicographic total order induced by the
// per-dimension range order, used to canonicalize SpaceSets.
func (s *Space) Compare(other *Space) (int, error) {
	if err := s.checkCompatible(other); err != nil {
		return 0, err
	}
	for i, r := range s.ranges {
		if r.Equal(other.ranges[i]) {
			continue
		}
		return r.Compare(other.ranges[i])
	}
	return 0, nil
}

// String implements fmt.Stringer.
func (s *Space) String() string {
	parts := make([]string, len(s.ranges))
	for i, r := range s.ranges {
		parts[i] = fmt.Sprintf("%v", r)
	}
	return "(" + strings.Join(parts, ";") + ")"
}
