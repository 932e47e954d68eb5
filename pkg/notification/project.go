package notification

import (
	"fmt"

	"github.com/metertap/hdlc-dlms/pkg/axdr"
	"github.com/metertap/hdlc-dlms/pkg/common"
	"github.com/metertap/hdlc-dlms/pkg/obis"
)

// Element is one entry of a notification body's projected OBIS mapping.
type Element struct {
	Obis      string
	ValueType string
	Value     interface{}
}

// Projector turns a notification body into an OBIS-keyed mapping. It holds
// the set of OBIS codes whose 12-byte octet-string values are reinterpreted
// as date-times rather than surfaced as raw bytes.
type Projector struct {
	clocks obis.ClockSet
}

// ProjectorOption configures a Projector.
type ProjectorOption func(*Projector)

// WithClockSet overrides which OBIS codes get date-time reinterpretation,
// in place of obis.DefaultClockSet.
func WithClockSet(clocks obis.ClockSet) ProjectorOption {
	return func(p *Projector) { p.clocks = clocks }
}

// NewProjector constructs a Projector using obis.DefaultClockSet unless
// overridden.
func NewProjector(opts ...ProjectorOption) *Projector {
	p := &Projector{clocks: obis.DefaultClockSet()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Project consumes body's list items and produces a mapping keyed by OBIS
// id string. The conventional unlabeled leading visible_string becomes the
// synthetic key "list_version"; every subsequent (6-byte octet_string,
// scalar) pair becomes an entry keyed by the octet_string's OBIS code. A
// list item that is not part of such a pair (padding some meters emit
// between registers) is surfaced under a positional "item_N" key rather
// than rejected, since only the OBIS-keyed entries are load-bearing.
func (p *Projector) Project(body axdr.Structure) (map[string]Element, error) {
	result := make(map[string]Element)
	i := 0

	if len(body) > 0 {
		if version, ok := body[0].(string); ok {
			result["list_version"] = Element{Obis: "list_version", ValueType: "visible_string", Value: version}
			i = 1
		}
	}

	for i < len(body) {
		if rawObis, ok := body[i].([]byte); ok && len(rawObis) == 6 && i+1 < len(body) {
			code, err := obis.FromSlice(rawObis)
			if err != nil {
				return nil, common.WrapError(common.ErrTruncatedApdu, "invalid obis code", err)
			}
			valueType, value := p.reinterpret(code, body[i+1])
			result[code.String()] = Element{Obis: code.String(), ValueType: valueType, Value: value}
			i += 2
			continue
		}

		key := fmt.Sprintf("item_%d", i)
		result[key] = Element{Obis: key, ValueType: axdr.TypeNameOf(body[i]), Value: body[i]}
		i++
	}

	return result, nil
}

// reinterpret reclassifies a raw 12-byte octet-string value at a clock OBIS
// code as a date-time; every other value is reported under its decoded
// A-XDR type name unchanged.
func (p *Projector) reinterpret(code obis.Code, value interface{}) (string, interface{}) {
	if raw, ok := value.([]byte); ok && len(raw) == 12 && p.clocks.Contains(code) {
		if dt, err := axdr.DecodeDateTimeBytes(raw); err == nil {
			return "date_time", dt
		}
	}
	return axdr.TypeNameOf(value), value
}
