package hdlc

import "github.com/metertap/hdlc-dlms/pkg/crc16"

// headerStage tracks which header field the next appended byte belongs to.
type headerStage int

const (
	stageFormatHi headerStage = iota
	stageFormatLo
	stageDestAddr
	stageSrcAddr
	stageControl
	stageHCS1
	stageHCS2
	stageDone
)

// FrameHeader is the progressively-defined view over a frame's leading
// bytes: frame-format word, variable-length addresses, control byte, and
// header check sequence. Accessors return an "is it defined yet" bool
// alongside the value rather than exposing a partially built struct.
type FrameHeader struct {
	formatDefined bool
	format        uint16

	destAddr []byte
	srcAddr  []byte

	controlDefined bool
	control        byte

	hcsDefined bool
	hcs        uint16

	infoPositionDefined bool
	informationPosition int

	addressInvalid bool

	// headerBytes holds frame_format .. control, the span the HCS protects.
	headerBytes []byte
}

// FrameFormat returns the raw 16-bit frame-format word.
func (h *FrameHeader) FrameFormat() (uint16, bool) {
	return h.format, h.formatDefined
}

// FrameFormatType returns the 4-bit type field; conformant frames carry 0xA.
func (h *FrameHeader) FrameFormatType() (byte, bool) {
	if !h.formatDefined {
		return 0, false
	}
	return byte((h.format >> 12) & 0xF), true
}

// Segmented reports the frame-format word's segmentation bit.
func (h *FrameHeader) Segmented() (bool, bool) {
	if !h.formatDefined {
		return false, false
	}
	return h.format&0x0800 != 0, true
}

// FrameLength returns the 11-bit declared total frame length.
func (h *FrameHeader) FrameLength() (int, bool) {
	if !h.formatDefined {
		return 0, false
	}
	return int(h.format & 0x07FF), true
}

// DestinationAddress returns the raw (extension-bit-encoded) destination
// address bytes, 1/2/4 bytes long.
func (h *FrameHeader) DestinationAddress() ([]byte, bool) {
	if h.destAddr == nil {
		return nil, false
	}
	return append([]byte(nil), h.destAddr...), true
}

// SourceAddress returns the raw source address bytes.
func (h *FrameHeader) SourceAddress() ([]byte, bool) {
	if h.srcAddr == nil {
		return nil, false
	}
	return append([]byte(nil), h.srcAddr...), true
}

// Control returns the control byte.
func (h *FrameHeader) Control() (byte, bool) {
	return h.control, h.controlDefined
}

// HeaderCheckSequence returns the 16-bit HCS as received (host byte order).
func (h *FrameHeader) HeaderCheckSequence() (uint16, bool) {
	return h.hcs, h.hcsDefined
}

// InformationPosition returns the byte offset of the first information
// byte within frame_data, equal to 2 + len(dst) + len(src) + 1 + 2.
func (h *FrameHeader) InformationPosition() (int, bool) {
	return h.informationPosition, h.infoPositionDefined
}

// AddressInvalid reports whether an address field is malformed: it reached
// 4 bytes without hitting its extension-bit terminator, or it terminated at
// a length other than 1, 2 or 4 bytes.
func (h *FrameHeader) AddressInvalid() bool {
	return h.addressInvalid
}

// HeaderOK reports whether the header check sequence verifies: recomputing
// X-25 over frame_format..control followed by the received HCS must land on
// the standard good-CRC residue. The source protocol only makes this
// observable; it does not gate emission by itself (see the WithRejectBadHCS
// reader option).
func (h *FrameHeader) HeaderOK() bool {
	if !h.hcsDefined {
		return false
	}
	s := crc16.New().UpdateBytes(h.headerBytes)
	s = s.Update(byte(h.hcs)).Update(byte(h.hcs >> 8))
	return s.IsGoodResidue()
}

// headerBuilder feeds FrameHeader from the same byte-at-a-time stream that
// fills the enclosing frame buffer.
type headerBuilder struct {
	FrameHeader
	stage       headerStage
	addrScratch []byte
}

func newHeaderBuilder() *headerBuilder {
	return &headerBuilder{}
}

func (hb *headerBuilder) append(b byte) {
	switch hb.stage {
	case stageFormatHi:
		hb.format = uint16(b) << 8
		hb.headerBytes = append(hb.headerBytes, b)
		hb.stage = stageFormatLo

	case stageFormatLo:
		hb.format |= uint16(b)
		hb.formatDefined = true
		hb.headerBytes = append(hb.headerBytes, b)
		hb.stage = stageDestAddr

	case stageDestAddr:
		hb.headerBytes = append(hb.headerBytes, b)
		hb.addrScratch = append(hb.addrScratch, b)
		if b&0x01 == 1 {
			if !validAddressLength(len(hb.addrScratch)) {
				hb.addressInvalid = true
			}
			hb.destAddr = hb.addrScratch
			hb.addrScratch = nil
			hb.stage = stageSrcAddr
		} else if len(hb.addrScratch) >= 4 {
			hb.addressInvalid = true
		}

	case stageSrcAddr:
		hb.headerBytes = append(hb.headerBytes, b)
		hb.addrScratch = append(hb.addrScratch, b)
		if b&0x01 == 1 {
			if !validAddressLength(len(hb.addrScratch)) {
				hb.addressInvalid = true
			}
			hb.srcAddr = hb.addrScratch
			hb.addrScratch = nil
			hb.stage = stageControl
		} else if len(hb.addrScratch) >= 4 {
			hb.addressInvalid = true
		}

	case stageControl:
		hb.control = b
		hb.controlDefined = true
		hb.headerBytes = append(hb.headerBytes, b)
		hb.informationPosition = len(hb.headerBytes) + 2
		hb.infoPositionDefined = true
		hb.stage = stageHCS1

	case stageHCS1:
		hb.hcs = uint16(b)
		hb.stage = stageHCS2

	case stageHCS2:
		hb.hcs |= uint16(b) << 8
		hb.hcsDefined = true
		hb.stage = stageDone

	case stageDone:
		// Information/FCS bytes are tracked by the frame buffer, not here.
	}
}

func (hb *headerBuilder) snapshot() *FrameHeader {
	cp := hb.FrameHeader
	cp.destAddr = append([]byte(nil), hb.destAddr...)
	cp.srcAddr = append([]byte(nil), hb.srcAddr...)
	cp.headerBytes = append([]byte(nil), hb.headerBytes...)
	return &cp
}

func validAddressLength(n int) bool {
	return n == 1 || n == 2 || n == 4
}
