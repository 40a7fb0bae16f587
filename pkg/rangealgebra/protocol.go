package rangealgebra

// NewProtocolRange builds a ProtocolRange (a NominalRange tagged
// KindProtocol) from protocol labels such as "TCP", "UDP", "ICMP".
// Labels are treated as opaque, case-sensitive strings; normalization
// (e.g. upper-casing) is the responsibility of callers parsing
// external rule data, not this constructor.
func NewProtocolRange(labels ...string) *NominalRange {
	return NewNominalRange(KindProtocol, labels)
}
