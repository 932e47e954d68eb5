// Package hdlc implements a byte-fed ISO/IEC 13239 HDLC frame reader:
// flag hunting, optional control-escape transparency, incremental header
// parsing, and CRC-16/X-25 validation, tolerant of arbitrary fragmentation
// of the input stream.
package hdlc

const (
	flagByte      = 0x7E
	controlEscape = 0x7D
)

// ReaderOption configures a FrameReader at construction.
type ReaderOption func(*FrameReader)

// WithOctetStuffing enables control-escape transparency de-stuffing on the
// incoming stream. Default: disabled.
func WithOctetStuffing(enabled bool) ReaderOption {
	return func(r *FrameReader) { r.useOctetStuffing = enabled }
}

// WithRejectBadHCS makes the reader discard a frame whose header check
// sequence fails to verify, ahead of the (always authoritative) FCS check.
// Default: false — HCS is observable via Frame.Header().HeaderOK() but does
// not by itself gate emission.
func WithRejectBadHCS(reject bool) ReaderOption {
	return func(r *FrameReader) { r.rejectBadHCS = reject }
}

// WithMaxFrameLength overrides the default frame_data length bound
// (MaxFrameLength). Some deployments document the absolute 11-bit cap
// (AbsoluteMaxFrameLength) instead.
func WithMaxFrameLength(max int) ReaderOption {
	return func(r *FrameReader) { r.maxFrameLength = max }
}

type readerState int

const (
	stateHunt readerState = iota
	stateInFrame
)

// FrameReader is a stateful, single-threaded HDLC frame decoder. It is not
// safe for concurrent use; callers needing concurrency should serialize
// access or use one reader per stream.
type FrameReader struct {
	state            readerState
	useOctetStuffing bool
	rejectBadHCS     bool
	maxFrameLength   int

	destuffer destuffer
	building  *frameBuilder
}

// NewFrameReader constructs a reader ready to hunt for its first flag.
func NewFrameReader(opts ...ReaderOption) *FrameReader {
	r := &FrameReader{
		state:          stateHunt,
		maxFrameLength: MaxFrameLength,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read feeds buffer into the reader and returns every frame completed
// during this call, in wire order. Feeding any partition of a byte sequence
// across multiple Read calls yields the same emitted frames as feeding it
// whole in one call; bytes preceding the first flag are silently discarded.
func (r *FrameReader) Read(buffer []byte) []*Frame {
	var out []*Frame
	for _, b := range buffer {
		if frame := r.step(b); frame != nil {
			out = append(out, frame)
		}
	}
	return out
}

func (r *FrameReader) step(b byte) *Frame {
	if b == flagByte {
		if !r.useOctetStuffing && r.state == stateInFrame {
			if length, known := r.building.frameLengthKnown(); known && len(r.building.data) < length {
				// frame_length is already known to extend past this byte,
				// so a raw 0x7E here is information content, not a flag.
				return r.onFrameByte(b)
			}
		}
		return r.onFlag()
	}

	if r.state == stateInFrame {
		return r.onFrameByte(b)
	}
	return nil
}

func (r *FrameReader) onFlag() *Frame {
	switch r.state {
	case stateHunt:
		r.open()
		return nil

	case stateInFrame:
		if r.useOctetStuffing && r.destuffer.state == destuffEscape {
			// 0x7D 0x7E: abort the in-progress frame, open fresh.
			r.open()
			return nil
		}

		length, known := r.building.frameLengthKnown()
		if known && len(r.building.data) == length {
			frame := r.building.finish()
			r.open()
			if r.rejectBadHCS && !frame.Header().HeaderOK() {
				return nil
			}
			if frame.IsGoodFcs() && frame.IsExpectedLength() {
				return frame
			}
			return nil
		}

		// Incomplete or noise accumulation: discard, treat this flag as a
		// fresh opener.
		r.open()
		return nil
	}
	return nil
}

func (r *FrameReader) open() {
	r.state = stateInFrame
	r.destuffer = destuffer{}
	r.building = newFrameBuilder(r.maxFrameLength)
}

func (r *FrameReader) onFrameByte(b byte) *Frame {
	if r.useOctetStuffing {
		out, emit := r.destuffer.feed(b)
		if !emit {
			return nil
		}
		b = out
	}

	if err := r.building.append(b); err != nil {
		r.state = stateHunt
		return nil
	}

	if length, known := r.building.frameLengthKnown(); known && len(r.building.data) > length {
		r.state = stateHunt
		return nil
	}
	return nil
}
