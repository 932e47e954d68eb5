package axdr

import (
	"reflect"
	"testing"
)

// TestDecodePrimitives decodes wire bytes for every scalar tag this module's
// notification bodies actually carry, asserting the naked Go value Decode
// produces for each.
func TestDecodePrimitives(t *testing.T) {
	tests := []struct {
		name    string
		wire    []byte
		want    interface{}
		wantErr bool
	}{
		{name: "null", wire: []byte{0x00}, want: nil},
		{name: "boolean_true", wire: []byte{0x03, 0x01}, want: true},
		{name: "boolean_false", wire: []byte{0x03, 0x00}, want: false},
		{name: "integer_positive", wire: []byte{0x0F, 0x7F}, want: int8(127)},
		{name: "integer_negative", wire: []byte{0x0F, 0x80}, want: int8(-128)},
		{name: "delta_integer", wire: []byte{0x1C, 0x05}, want: int8(5)},
		{name: "long_positive", wire: []byte{0x10, 0x7F, 0xFF}, want: int16(32767)},
		{name: "long_negative", wire: []byte{0x10, 0x80, 0x00}, want: int16(-32768)},
		{name: "delta_long", wire: []byte{0x1D, 0x00, 0x0A}, want: int16(10)},
		{name: "unsigned_max", wire: []byte{0x11, 0xFF}, want: uint8(255)},
		{name: "unsigned_zero", wire: []byte{0x11, 0x00}, want: uint8(0)},
		{name: "delta_unsigned", wire: []byte{0x1F, 0x02}, want: uint8(2)},
		{name: "long_unsigned_max", wire: []byte{0x12, 0xFF, 0xFF}, want: uint16(65535)},
		{name: "long_unsigned_zero", wire: []byte{0x12, 0x00, 0x00}, want: uint16(0)},
		{name: "delta_long_unsigned", wire: []byte{0x20, 0x00, 0x07}, want: uint16(7)},
		{name: "double_long_positive", wire: []byte{0x05, 0x7F, 0xFF, 0xFF, 0xFF}, want: int32(2147483647)},
		{name: "double_long_negative", wire: []byte{0x05, 0x80, 0x00, 0x00, 0x00}, want: int32(-2147483648)},
		{name: "delta_double_long", wire: []byte{0x1E, 0x00, 0x00, 0x00, 0x03}, want: int32(3)},
		{name: "double_long_unsigned_max", wire: []byte{0x06, 0xFF, 0xFF, 0xFF, 0xFF}, want: uint32(4294967295)},
		{name: "double_long_unsigned_zero", wire: []byte{0x06, 0x00, 0x00, 0x00, 0x00}, want: uint32(0)},
		{name: "delta_double_long_unsigned", wire: []byte{0x21, 0x00, 0x00, 0x07, 0x68}, want: uint32(1896)},
		{name: "long64_positive", wire: []byte{0x14, 0x7F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, want: int64(9223372036854775807)},
		{name: "long64_unsigned_max", wire: []byte{0x15, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, want: uint64(18446744073709551615)},
		{name: "enum", wire: []byte{0x16, 0x03}, want: Enum(3)},
		{name: "float32_positive", wire: []byte{0x17, 0x40, 0x49, 0x0F, 0xD0}, want: float32(3.14159)},
		{name: "float64_positive", wire: []byte{0x18, 0x40, 0x09, 0x21, 0xFB, 0x54, 0x44, 0x2D, 0x18}, want: float64(3.141592653589793)},
		{name: "octet_string_empty", wire: []byte{0x09, 0x00}, want: []byte{}},
		{name: "octet_string", wire: []byte{0x09, 0x03, 0x01, 0x02, 0x03}, want: []byte{0x01, 0x02, 0x03}},
		{name: "visible_string_empty", wire: []byte{0x0A, 0x00}, want: ""},
		{name: "visible_string", wire: []byte{0x0A, 0x05, 'h', 'e', 'l', 'l', 'o'}, want: "hello"},
		{name: "utf8_string_empty", wire: []byte{0x0C, 0x00}, want: Utf8String{}},
		{name: "utf8_string", wire: []byte{0x0C, 0x03, 'o', 'b', 'i'}, want: Utf8String("obi")},
		{name: "unsupported_tag", wire: []byte{0xFE}, wantErr: true},
		{name: "empty_input", wire: nil, wantErr: true},
		{name: "truncated_value", wire: []byte{0x11}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.wire)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Decode(% x) expected error, got %+v", tt.wire, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode(% x) error: %v", tt.wire, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Decode(% x) = %#v, want %#v", tt.wire, got, tt.want)
			}
		})
	}
}

func TestDecodeBitString(t *testing.T) {
	// 10 bits: 0b10110010 0b11xxxxxx, high bits first.
	wire := []byte{0x04, 0x0A, 0b10110010, 0b11000000}
	got, err := Decode(wire)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	bs, ok := got.(BitString)
	if !ok {
		t.Fatalf("Decode returned %T, want BitString", got)
	}
	if bs.Length != 10 || !reflect.DeepEqual(bs.Bits, []byte{0b10110010, 0b11000000}) {
		t.Fatalf("BitString = %+v, want {Bits: [b2 c0], Length: 10}", bs)
	}
}

func TestDecodeBCD(t *testing.T) {
	// 3 digits "1-2-9" packed high nibble first, trailing nibble unused.
	wire := []byte{0x0D, 0x03, 0x12, 0x90}
	got, err := Decode(wire)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	bcd, ok := got.(BCD)
	if !ok {
		t.Fatalf("Decode returned %T, want BCD", got)
	}
	if !reflect.DeepEqual(bcd.Digits, []byte{1, 2, 9}) {
		t.Fatalf("BCD.Digits = %v, want [1 2 9]", bcd.Digits)
	}
}

func TestDecodeDateTimeValues(t *testing.T) {
	dateWire := []byte{0x1A, 0x07, 0xE6, 0x01, 0x11, 0x02}
	got, err := Decode(dateWire)
	if err != nil {
		t.Fatalf("Decode date: %v", err)
	}
	d, ok := got.(Date)
	if !ok || d.Year != 2022 || d.Month != 1 || d.Day != 17 || d.DayOfWeek != 2 {
		t.Fatalf("Date = %+v, want {2022 1 17 2}", got)
	}

	timeWire := []byte{0x1B, 0x0C, 0x2C, 0x28, 0x00}
	gotTime, err := Decode(timeWire)
	if err != nil {
		t.Fatalf("Decode time: %v", err)
	}
	tm, ok := gotTime.(Time)
	if !ok || tm.Hour != 12 || tm.Minute != 44 || tm.Second != 40 {
		t.Fatalf("Time = %+v, want {12 44 40 0}", gotTime)
	}

	dateTimeWire := []byte{0x19, 0x07, 0xE6, 0x01, 0x11, 0x02, 0x0C, 0x2C, 0x28, 0x00, 0xFF, 0x80, 0x00}
	gotDT, err := Decode(dateTimeWire)
	if err != nil {
		t.Fatalf("Decode datetime: %v", err)
	}
	dt, ok := gotDT.(DateTime)
	if !ok || dt.Date.Year != 2022 || dt.Time.Hour != 12 {
		t.Fatalf("DateTime = %+v, want year 2022 hour 12", gotDT)
	}
}

func TestDecodeDateRejectsInvalidMonth(t *testing.T) {
	wire := []byte{0x1A, 0x07, 0xE6, 13, 0x11, 0x02}
	if _, err := Decode(wire); err == nil {
		t.Fatal("Decode expected error for month 13, got nil")
	}
}

func TestDecodeStructureAndArray(t *testing.T) {
	// structure(2): boolean(true), octet-string("AB")
	structureWire := []byte{0x02, 0x02, 0x03, 0x01, 0x09, 0x02, 'A', 'B'}
	got, err := Decode(structureWire)
	if err != nil {
		t.Fatalf("Decode structure: %v", err)
	}
	fields, ok := got.([]interface{})
	if !ok || len(fields) != 2 {
		t.Fatalf("structure = %#v, want 2-element []interface{}", got)
	}
	if fields[0] != true {
		t.Fatalf("fields[0] = %#v, want true", fields[0])
	}
	if !reflect.DeepEqual(fields[1], []byte{'A', 'B'}) {
		t.Fatalf("fields[1] = %#v, want []byte(\"AB\")", fields[1])
	}

	// array(3) of unsigned
	arrayWire := []byte{0x01, 0x03, 0x11, 0x01, 0x11, 0x02, 0x11, 0x03}
	gotArr, err := Decode(arrayWire)
	if err != nil {
		t.Fatalf("Decode array: %v", err)
	}
	elements, ok := gotArr.([]interface{})
	if !ok || !reflect.DeepEqual(elements, []interface{}{uint8(1), uint8(2), uint8(3)}) {
		t.Fatalf("array = %#v, want [1 2 3]", gotArr)
	}
}

func TestDecodeCompactArray(t *testing.T) {
	// compact-array(2) of long-unsigned, no per-element tags
	wire := []byte{0x13, 0x02, 0x12, 0x00, 0x0A, 0x00, 0x0B}
	got, err := Decode(wire)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	ca, ok := got.(CompactArray)
	if !ok {
		t.Fatalf("Decode returned %T, want CompactArray", got)
	}
	if ca.TypeTag != TagLongUnsigned || !reflect.DeepEqual(ca.Values, []interface{}{uint16(10), uint16(11)}) {
		t.Fatalf("CompactArray = %+v, want {TypeTag: TagLongUnsigned, Values: [10 11]}", ca)
	}
}

func TestDecodeCompactArrayRejectsUnsupportedTypeTag(t *testing.T) {
	wire := []byte{0x13, 0x01, 0xFE, 0x00}
	if _, err := Decode(wire); err == nil {
		t.Fatal("Decode expected error for unsupported compact array type tag, got nil")
	}
}

// TestDecodeRest mirrors how the notification decoder peels a single
// top-level value off the front of an APDU body and keeps the remainder.
func TestDecodeRest(t *testing.T) {
	wire := []byte{0x11, 0x2A, 0x11, 0x2B}
	value, rest, err := DecodeRest(wire)
	if err != nil {
		t.Fatalf("DecodeRest: %v", err)
	}
	if value != uint8(0x2A) {
		t.Fatalf("value = %#v, want 0x2A", value)
	}
	if !reflect.DeepEqual(rest, []byte{0x11, 0x2B}) {
		t.Fatalf("rest = % x, want [11 2b]", rest)
	}
}

func TestDecodeDateTimeField(t *testing.T) {
	wire := []byte{0x0C, 0x07, 0xE6, 0x01, 0x11, 0x02, 0x0C, 0x2C, 0x28, 0xFF, 0x80, 0x00, 0x00, 0xAA}
	dt, rest, err := DecodeDateTimeField(wire)
	if err != nil {
		t.Fatalf("DecodeDateTimeField: %v", err)
	}
	if dt.Date.Year != 2022 || dt.Date.Day != 17 || dt.Time.Hour != 12 {
		t.Fatalf("DateTime = %+v, want year 2022 day 17 hour 12", dt)
	}
	if !reflect.DeepEqual(rest, []byte{0xAA}) {
		t.Fatalf("rest = % x, want [aa]", rest)
	}
}

func TestDecodeDateTimeFieldRejectsWrongLength(t *testing.T) {
	wire := []byte{0x05, 0x01, 0x02, 0x03, 0x04, 0x05}
	if _, _, err := DecodeDateTimeField(wire); err == nil {
		t.Fatal("DecodeDateTimeField expected error for length != 12, got nil")
	}
}

func TestDecodeDateTimeBytes(t *testing.T) {
	raw := []byte{0x07, 0xE6, 0x01, 0x11, 0x02, 0x0C, 0x2C, 0x28, 0xFF, 0x80, 0x00, 0x00}
	dt, err := DecodeDateTimeBytes(raw)
	if err != nil {
		t.Fatalf("DecodeDateTimeBytes: %v", err)
	}
	if dt.Date.Year != 2022 || dt.Time.Minute != 44 {
		t.Fatalf("DateTime = %+v, want year 2022 minute 44", dt)
	}
}

func TestDecodeDateTimeBytesRejectsWrongLength(t *testing.T) {
	if _, err := DecodeDateTimeBytes([]byte{0x01, 0x02, 0x03}); err == nil {
		t.Fatal("DecodeDateTimeBytes expected error for non-12-byte input, got nil")
	}
}

// TestTypeNameOf checks the projector's only way to report a decoded
// element's A-XDR type: a type switch over everything Decode can produce.
func TestTypeNameOf(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"null", nil, "null"},
		{"boolean", true, "boolean"},
		{"double_long_unsigned", uint32(7), "double_long_unsigned"},
		{"octet_string", []byte{1, 2}, "octet_string"},
		{"visible_string", "hi", "visible_string"},
		{"utf8_string", Utf8String("hi"), "utf8_string"},
		{"enum", Enum(1), "enum"},
		{"structure", []interface{}{true}, "structure"},
		{"unknown", complex(1, 2), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeNameOf(tt.value); got != tt.want {
				t.Fatalf("TypeNameOf(%#v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestTagTypeNameUnknownTag(t *testing.T) {
	if got := Tag(0xFE).TypeName(); got != "unknown" {
		t.Fatalf("Tag(0xFE).TypeName() = %q, want \"unknown\"", got)
	}
}

// BenchmarkDecodeStructureLarge exercises the same decode path a
// wide notification body (many OBIS/value pairs) drives.
func BenchmarkDecodeStructureLarge(b *testing.B) {
	wire := []byte{0x02, 0x03,
		0x11, 0x01,
		0x12, 0x00, 0x02,
		0x06, 0x00, 0x00, 0x00, 0x03,
	}
	for i := 0; i < b.N; i++ {
		if _, err := Decode(wire); err != nil {
			b.Fatalf("Decode: %v", err)
		}
	}
}
