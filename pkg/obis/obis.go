// Package obis implements the Object Identification System code used to
// key DLMS/COSEM measurement values: a 6-byte "A.B.C.D.E.F" identifier.
package obis

import (
	"fmt"
	"strconv"
	"strings"
)

// Code is a 6-group OBIS identifier, e.g. "1.1.1.7.0.255".
type Code struct {
	raw [6]byte
	str string
}

// FromBytes builds a Code from its 6 raw bytes.
func FromBytes(value [6]byte) Code {
	var parts [6]string
	for i, b := range value {
		parts[i] = strconv.Itoa(int(b))
	}
	return Code{raw: value, str: strings.Join(parts[:], ".")}
}

// FromSlice builds a Code from a 6-byte slice, as decoded from an
// octet-string tagged value.
func FromSlice(value []byte) (Code, error) {
	if len(value) != 6 {
		return Code{}, fmt.Errorf("obis code must be 6 bytes, got %d", len(value))
	}
	var arr [6]byte
	copy(arr[:], value)
	return FromBytes(arr), nil
}

// FromString parses "A.B.C.D.E.F" (also accepting ':' or '-' delimiters)
// into a Code.
func FromString(value string) (Code, error) {
	cleaned := strings.NewReplacer(" ", "", ":", ".", "-", ".").Replace(value)
	chunks := strings.Split(cleaned, ".")
	if len(chunks) != 6 {
		return Code{}, fmt.Errorf("invalid OBIS code %q: must have exactly 6 parts", value)
	}
	var raw [6]byte
	for i, chunk := range chunks {
		n, err := strconv.ParseUint(chunk, 10, 8)
		if err != nil {
			return Code{}, fmt.Errorf("invalid OBIS code %q: %w", value, err)
		}
		raw[i] = byte(n)
	}
	return Code{raw: raw, str: cleaned}, nil
}

// String returns the "A.B.C.D.E.F" representation.
func (c Code) String() string {
	return c.str
}

// Bytes returns the 6 raw bytes.
func (c Code) Bytes() [6]byte {
	return c.raw
}

// ClockSet is a set of OBIS codes whose 12-byte octet-string values should
// be reinterpreted as COSEM date-times rather than surfaced as raw bytes.
type ClockSet map[string]bool

// DefaultClockSet returns the clock/reference-time OBIS codes commonly
// pushed inside data notifications: the COSEM clock object and the two
// billing-period reference-time registers.
func DefaultClockSet() ClockSet {
	return ClockSet{
		"0.1.1.0.0.255": true,
		"0.9.1.0.0.255": true,
		"0.9.2.0.0.255": true,
	}
}

// Contains reports whether code is a member of the set.
func (s ClockSet) Contains(code Code) bool {
	return s[code.String()]
}
