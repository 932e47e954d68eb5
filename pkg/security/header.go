// Package security decrypts and authenticates DLMS general-glo-ciphering
// secured data notifications across the three suites in common use on
// GOST/SPODES-market meters: AES-128-GCM, AES-CBC with a separate GMAC tag,
// and GOST Kuznyechik in CTR mode with CMAC authentication.
package security

import "fmt"

// SecurityControl is the security-control byte at the start of every
// secured APDU's security header.
type SecurityControl byte

const (
	SecurityControlAuthenticationOnly        SecurityControl = 0x10
	SecurityControlEncryptionOnly            SecurityControl = 0x20
	SecurityControlAuthenticatedAndEncrypted SecurityControl = 0x30
)

// Suite identifies which cipher/MAC combination protects a secured APDU.
type Suite byte

const (
	Suite0 Suite = iota // AES-128-GCM
	Suite1              // AES-128-CBC encryption + separate GMAC tag
	Suite2              // AES-256-CBC encryption + separate GMAC tag
	Suite3              // GOST Kuznyechik CTR encryption + CMAC tag
)

// HeaderSize is the encoded length of a Header: 1 control byte plus a
// 4-byte big-endian frame counter.
const HeaderSize = 5

// Header is the security header prefixing a secured APDU's ciphertext.
type Header struct {
	SecurityControl SecurityControl
	FrameCounter    uint32
}

// Encode returns the 5-byte wire form of the header.
func (h *Header) Encode() []byte {
	return []byte{
		byte(h.SecurityControl),
		byte(h.FrameCounter >> 24),
		byte(h.FrameCounter >> 16),
		byte(h.FrameCounter >> 8),
		byte(h.FrameCounter),
	}
}

// Decode parses a Header from its leading 5 bytes.
func (h *Header) Decode(src []byte) error {
	if len(src) < HeaderSize {
		return fmt.Errorf("security header needs %d bytes, got %d", HeaderSize, len(src))
	}
	h.SecurityControl = SecurityControl(src[0])
	h.FrameCounter = uint32(src[1])<<24 | uint32(src[2])<<16 | uint32(src[3])<<8 | uint32(src[4])
	return nil
}
