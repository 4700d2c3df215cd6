package bmsconv

import (
	"errors"
	"fmt"
	"math"
)

// Rule is the linear law relating one signal's raw (wire) value N to its engineering value E
//
//	E = (N * Factor) + Offset
//	N = (E - Offset) / Factor
type Rule struct {
	// Name is the signal identifier
	Name SignalName `yaml:"name"`
	// Factor is the scale per raw unit, always > 0
	Factor float64 `yaml:"factor"`
	// Offset is the engineering value shift (may be 0)
	Offset float64 `yaml:"offset"`
	// Width is the bit width of the unsigned raw value (8, 16 or 32)
	Width RawWidth `yaml:"width"`
}

var (
	ErrInvalidRule   = errors.New("invalid rule")
	ErrUnknownSignal = errors.New("unknown signal")
	ErrValueTooWide  = errors.New("value exceeds raw width")
)

// Validate checks the rule can be used for conversion
func (r Rule) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: empty signal name", ErrInvalidRule)
	}
	if math.IsNaN(r.Factor) || math.IsInf(r.Factor, 0) || r.Factor <= 0 {
		return fmt.Errorf("%w: %s factor must be > 0 (got %v)", ErrInvalidRule, r.Name, r.Factor)
	}
	if math.IsNaN(r.Offset) || math.IsInf(r.Offset, 0) {
		return fmt.Errorf("%w: %s offset must be finite (got %v)", ErrInvalidRule, r.Name, r.Offset)
	}
	if !r.Width.Valid() {
		return fmt.Errorf("%w: %s width must be 8, 16 or 32 (got %d)", ErrInvalidRule, r.Name, r.Width)
	}
	return nil
}

// Encode converts an engineering value to the raw transmit value: (value - Offset) / Factor,
// truncated toward zero and wrapped to the rule's width
//
// There is no range check - results that don't fit the raw width wrap silently, the same as
// fixed-width unsigned truncation (e.g. cell_max_temp 300 -> 340 -> 84)
func (r Rule) Encode(value uint64) uint64 {
	q := math.Trunc((float64(value) - r.Offset) / r.Factor)
	return wrap(q, r.Width)
}

// Decode converts a raw value back to its engineering value: (raw * Factor) + Offset
func (r Rule) Decode(raw uint64) float64 {
	return float64(raw)*r.Factor + r.Offset
}

// Fits reports whether v is representable in the rule's raw width
func (r Rule) Fits(v uint64) bool {
	return v <= r.Width.Max()
}

func (r Rule) String() string {
	return fmt.Sprintf("%s: factor=%g offset=%g raw=%s", r.Name, r.Factor, r.Offset, r.Width)
}

// wrap reduces an integral float modulo 2^w into [0, 2^w)
func wrap(v float64, w RawWidth) uint64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	m := math.Ldexp(1, int(w))
	v = math.Mod(v, m)
	if v < 0 {
		v += m
	}
	return uint64(v)
}

func convert[T uint8 | uint16 | uint32](r Rule, v T) T {
	return T(r.Encode(uint64(v)))
}
