package rangealgebra

import (
	"fmt"
	"math/big"
	"net/netip"
)

// NewIPRange builds an IP range from 128-bit-encoded bounds. Exported
// for callers that already have integer bounds, e.g. a Model Manager
// adapter reconstructing a range from stored data; most callers should
// use ParseIPRange.
func NewIPRange(start, end *big.Int) (*NumericRange, error) {
	return NewNumericRange(KindIP, start, end)
}

// ParseIPRange parses CIDR or bare-address text into an IPRange
// spanning [network_address, broadcast_address+1), matching the
// reference ip_range() parser. A bare address (no prefix) is treated
// as a host route (/32 for IPv4, /128 for IPv6).
func ParseIPRange(cidr string) (*NumericRange, error) {
	prefix, err := parsePrefix(cidr)
	if err != nil {
		return nil, NewInvalidRangeError(KindIP, cidr, err.Error())
	}
	start := addrToInt(prefix.Masked().Addr())
	width := prefix.Addr().BitLen() - prefix.Bits()
	size := new(big.Int).Lsh(big.NewInt(1), uint(width))
	end := new(big.Int).Add(start, size)
	return NewIPRange(start, end)
}

func parsePrefix(s string) (netip.Prefix, error) {
	if p, err := netip.ParsePrefix(s); err == nil {
		return p, nil
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("not a valid CIDR or address: %w", err)
	}
	return netip.PrefixFrom(addr, addr.BitLen()), nil
}

func addrToInt(addr netip.Addr) *big.Int {
	return new(big.Int).SetBytes(addr.AsSlice())
}

// IntToAddr reconstructs a netip.Addr from an integer bound. is4
// selects whether the value is interpreted as a 32-bit or 128-bit
// address.
func IntToAddr(v *big.Int, is4 bool) netip.Addr {
	size := 16
	if is4 {
		size = 4
	}
	b := v.FillBytes(make([]byte, size))
	if is4 {
		return netip.AddrFrom4([4]byte(b))
	}
	return netip.AddrFrom16([16]byte(b))
}
