package rangealgebra

import (
	"fmt"
	"math/big"
)

// NumericRange is a half-open integer interval [start, end). Use
// NewNumericRange or a kind-specific constructor (NewIPRange,
// NewPortRange, ParseIPRange, ParsePortRange).
type NumericRange struct {
	kind  Kind
	start *big.Int
	end   *big.Int
}

// NewNumericRange builds a NumericRange, rejecting start > end with an
// *InvalidRangeError.
func NewNumericRange(kind Kind, start, end *big.Int) (*NumericRange, error) {
	if start.Cmp(end) > 0 {
		return nil, NewInvalidRangeError(kind, fmt.Sprintf("[%s, %s)", start, end), "start must not exceed end")
	}
	return &NumericRange{kind: kind, start: new(big.Int).Set(start), end: new(big.Int).Set(end)}, nil
}

// Kind implements Range.
func (r *NumericRange) Kind() Kind { return r.kind }

// Start returns the inclusive lower bound.
func (r *NumericRange) Start() *big.Int { return new(big.Int).Set(r.start) }

// End returns the exclusive upper bound.
func (r *NumericRange) End() *big.Int { return new(big.Int).Set(r.end) }

// Empty implements Range.
func (r *NumericRange) Empty() bool { return r.start.Cmp(r.end) == 0 }

// String implements fmt.Stringer.
func (r *NumericRange) String() string {
	return fmt.Sprintf("%s:(%s-%s)", r.kind, r.start, r.end)
}

func (r *NumericRange) checkCompatible(other Range) (*NumericRange, error) {
	o, ok := other.(*NumericRange)
	if !ok || o.kind != r.kind {
		return nil, NewIncompatibleKindsError(r.kind, other.Kind())
	}
	return o, nil
}

// Equal implements Range.
func (r *NumericRange) Equal(other Range) bool {
	o, err := r.checkCompatible(other)
	if err != nil {
		return false
	}
	return r.start.Cmp(o.start) == 0 && r.end.Cmp(o.end) == 0
}

// Compare implements Range's total order: start first, then end.
func (r *NumericRange) Compare(other Range) (int, error) {
	o, err := r.checkCompatible(other)
	if err != nil {
		return 0, err
	}
	if c := r.start.Cmp(o.start); c != 0 {
		return c, nil
	}
	return r.end.Cmp(o.end), nil
}

// overlap returns the raw bounds of the overlap region, and false if
// the two ranges do not overlap.
func (r *NumericRange) overlap(o *NumericRange) (start, end *big.Int, ok bool) {
	if r.start.Cmp(o.end) >= 0 || o.start.Cmp(r.end) >= 0 {
		return nil, nil, false
	}
	start = r.start
	if o.start.Cmp(start) > 0 {
		start = o.start
	}
	end = r.end
	if o.end.Cmp(end) < 0 {
		end = o.end
	}
	return new(big.Int).Set(start), new(big.Int).Set(end), true
}

// Intersect implements Range. ok is false when the operands do not
// overlap, distinct from the overlap itself being degenerate.
func (r *NumericRange) Intersect(other Range) (Range, bool, error) {
	o, err := r.checkCompatible(other)
	if err != nil {
		return nil, false, err
	}
	start, end, ok := r.overlap(o)
	if !ok {
		return nil, false, nil
	}
	return &NumericRange{kind: r.kind, start: start, end: end}, true, nil
}

// Union implements Range. It is defined only when the operands
// overlap; a disjoint union returns ok=false, since this algebra
// cannot synthesize a multi-interval range (that lives at the
// SpaceSet layer).
func (r *NumericRange) Union(other Range) (Range, bool, error) {
	o, err := r.checkCompatible(other)
	if err != nil {
		return nil, false, err
	}
	if _, _, ok := r.overlap(o); !ok {
		return nil, false, nil
	}
	start := r.start
	if o.start.Cmp(start) < 0 {
		start = o.start
	}
	end := r.end
	if o.end.Cmp(end) > 0 {
		end = o.end
	}
	return &NumericRange{kind: r.kind, start: new(big.Int).Set(start), end: new(big.Int).Set(end)}, true, nil
}

// Contains reports a ⊇ b OR b ⊇ a. This symmetric behavior mirrors the
// reference implementation and is almost certainly a bug, but is
// preserved intentionally since downstream callers depend on it; use
// IsSubsetOf for a strictly directional test.
func (r *NumericRange) Contains(other Range) (bool, error) {
	o, err := r.checkCompatible(other)
	if err != nil {
		return false, err
	}
	aSupersetB := r.start.Cmp(o.start) <= 0 && o.end.Cmp(r.end) <= 0
	bSupersetA := o.start.Cmp(r.start) <= 0 && r.end.Cmp(o.end) <= 0
	return aSupersetB || bSupersetA, nil
}

// IsSubsetOf is the strictly directional counterpart to Contains: true
// iff other ⊇ r.
func (r *NumericRange) IsSubsetOf(other *NumericRange) (bool, error) {
	o, err := r.checkCompatible(other)
	if err != nil {
		return false, err
	}
	return o.start.Cmp(r.start) <= 0 && r.end.Cmp(o.end) <= 0, nil
}

// Difference implements Range. It returns one sub-range when the
// operands don't overlap or only one flank survives, and two when r is
// contained (in the symmetric Contains sense) in the overlap region —
// matching the reference algorithm's branches exactly, including the
// case where the "contained" branch fires because other ⊇ r rather
// than r ⊇ other. In that direction one (or both) flanks have
// start > end; the reference constructs flanks via its range
// constructor, which raises on an invalid bound, so this builds flanks
// via NewNumericRange and propagates the same failure as an error
// instead of returning a corrupt range. When neither operand contains
// the other, the single surviving flank is the left one if other starts
// inside r, and the right one otherwise.
func (r *NumericRange) Difference(other Range) ([]Range, error) {
	o, err := r.checkCompatible(other)
	if err != nil {
		return nil, err
	}
	if _, _, ok := r.overlap(o); !ok {
		return []Range{&NumericRange{kind: r.kind, start: r.start, end: r.end}}, nil
	}
	if contained, _ := r.Contains(o); contained {
		flank1, err := NewNumericRange(r.kind, r.start, o.start)
		if err != nil {
			return nil, fmt.Errorf("difference of %s and %s: %w", r, o, err)
		}
		flank2, err := NewNumericRange(r.kind, o.end, r.end)
		if err != nil {
			return nil, fmt.Errorf("difference of %s and %s: %w", r, o, err)
		}
		return []Range{flank1, flank2}, nil
	}
	if o.start.Cmp(r.start) > 0 {
		return []Range{&NumericRange{kind: r.kind, start: r.start, end: o.start}}, nil
	}
	return []Range{&NumericRange{kind: r.kind, start: o.end, end: r.end}}, nil
}
