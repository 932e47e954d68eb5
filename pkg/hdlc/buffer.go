package hdlc

import (
	"github.com/metertap/hdlc-dlms/pkg/common"
	"github.com/metertap/hdlc-dlms/pkg/crc16"
)

// MaxFrameLength is the default bound on frame_data length (flags
// excluded), 8 bytes under the 11-bit frame_length field's cap
// (AbsoluteMaxFrameLength).
const MaxFrameLength = 2039

// AbsoluteMaxFrameLength is the 11-bit frame_length field's hard cap.
const AbsoluteMaxFrameLength = 2047

// frameBuilder accumulates one in-progress frame's bytes, running CRC, and
// header fields in lockstep.
type frameBuilder struct {
	data   []byte
	crc    crc16.State
	header *headerBuilder
	maxLen int
}

func newFrameBuilder(maxLen int) *frameBuilder {
	return &frameBuilder{
		crc:    crc16.New(),
		header: newHeaderBuilder(),
		maxLen: maxLen,
	}
}

func (b *frameBuilder) append(c byte) error {
	if len(b.data)+1 > b.maxLen {
		return common.NewError(common.ErrFrameTooLong, "frame exceeds maximum length")
	}
	b.data = append(b.data, c)
	b.crc = b.crc.Update(c)
	b.header.append(c)
	return nil
}

func (b *frameBuilder) frameLengthKnown() (int, bool) {
	return b.header.FrameLength()
}

func (b *frameBuilder) finish() *Frame {
	var fcs uint16
	if len(b.data) >= 2 {
		n := len(b.data)
		fcs = uint16(b.data[n-2]) | uint16(b.data[n-1])<<8
	}
	length, lengthKnown := b.header.FrameLength()
	return &Frame{
		data:               append([]byte(nil), b.data...),
		header:             b.header.snapshot(),
		frameCheckSequence: fcs,
		isGoodFcs:          b.crc.IsGoodResidue(),
		isExpectedLength:   lengthKnown && length == len(b.data),
	}
}
