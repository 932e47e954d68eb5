package hdlc

// Frame is a fully accumulated, closed HDLC frame: frame_data between the
// opening and closing flags (exclusive of both), its parsed header, and the
// derived FCS/length predicates.
type Frame struct {
	data               []byte
	header             *FrameHeader
	frameCheckSequence uint16
	isGoodFcs          bool
	isExpectedLength   bool
}

// Data returns frame_data: the full byte sequence between the flags.
func (f *Frame) Data() []byte {
	return append([]byte(nil), f.data...)
}

// Header returns the frame's parsed header.
func (f *Frame) Header() *FrameHeader {
	return f.header
}

// Information returns the slice of frame_data between the end of the header
// and the trailing two FCS bytes. It is empty when the frame carries no
// information field.
func (f *Frame) Information() []byte {
	start, ok := f.header.InformationPosition()
	if !ok {
		return nil
	}
	end := len(f.data) - 2
	if start >= end {
		return nil
	}
	return f.data[start:end]
}

// FrameCheckSequence returns the trailing 16-bit FCS word as received.
func (f *Frame) FrameCheckSequence() uint16 {
	return f.frameCheckSequence
}

// IsGoodFcs reports whether the CRC-16/X-25 computed over the full frame,
// including its own trailing FCS, lands on the standard good-CRC residue.
func (f *Frame) IsGoodFcs() bool {
	return f.isGoodFcs
}

// IsExpectedLength reports whether len(frame_data) matches the header's
// declared frame_length.
func (f *Frame) IsExpectedLength() bool {
	return f.isExpectedLength
}
