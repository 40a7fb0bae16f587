package rangealgebra

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// maxPort is one past the highest valid port number; the reference
// PortRange constructor permits end == 65536 as the exclusive upper
// bound of the full port space.
const maxPort = 65536

// NewPortRange builds a PortRange, rejecting values outside [0, 65536]
// or a reversed interval.
func NewPortRange(start, end int) (*NumericRange, error) {
	if start < 0 || end < 0 || start > maxPort || end > maxPort {
		return nil, NewInvalidRangeError(KindPort, fmt.Sprintf("[%d, %d)", start, end), "port bounds must fall within [0, 65536]")
	}
	if start > end {
		return nil, NewInvalidRangeError(KindPort, fmt.Sprintf("[%d, %d)", start, end), "start must not exceed end")
	}
	return NewNumericRange(KindPort, big.NewInt(int64(start)), big.NewInt(int64(end)))
}

// ParsePortRange parses a port spec: "P" -> [P, P+1), or "P-Q" ->
// [P, Q+1). Bounds must satisfy 0 <= P <= Q <= 65535.
func ParsePortRange(spec string) (*NumericRange, error) {
	raw := strings.TrimSpace(spec)
	p, q, err := splitPortSpec(raw)
	if err != nil {
		return nil, NewInvalidRangeError(KindPort, spec, err.Error())
	}
	if p < 0 || q < 0 || p > 65535 || q > 65535 || p > q {
		return nil, NewInvalidRangeError(KindPort, spec, "port bounds must satisfy 0 <= P <= Q <= 65535")
	}
	return NewPortRange(p, q+1)
}

func splitPortSpec(spec string) (p, q int, err error) {
	idx := strings.IndexByte(spec, '-')
	if idx < 0 {
		p, err = strconv.Atoi(spec)
		if err != nil {
			return 0, 0, fmt.Errorf("malformed port spec: %w", err)
		}
		return p, p, nil
	}
	p, err = strconv.Atoi(spec[:idx])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed port spec: %w", err)
	}
	q, err = strconv.Atoi(spec[idx+1:])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed port spec: %w", err)
	}
	return p, q, nil
}
