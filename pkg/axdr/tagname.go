package axdr

// tagNames maps each known Tag to the canonical type name a caller sees in
// a decoded list item's value_type field.
var tagNames = map[Tag]string{
	TagNull:                    "null",
	TagArray:                   "array",
	TagStructure:               "structure",
	TagBoolean:                 "boolean",
	TagBitString:               "bit_string",
	TagDoubleLong:              "double_long",
	TagDoubleLongU:             "double_long_unsigned",
	TagOctetString:             "octet_string",
	TagVisibleString:           "visible_string",
	TagUTF8String:              "utf8_string",
	TagBCD:                     "bcd",
	TagInteger:                 "integer",
	TagLong:                    "long",
	TagUnsigned:                "unsigned",
	TagLongUnsigned:            "long_unsigned",
	TagCompactArray:            "compact_array",
	TagLong64:                  "long64",
	TagLong64U:                 "long64_unsigned",
	TagEnum:                    "enum",
	TagFloat32:                 "float32",
	TagFloat64:                 "float64",
	TagDateTime:                "date_time",
	TagDate:                    "date",
	TagTime:                    "time",
	TagDeltaInteger:            "delta_integer",
	TagDeltaLong:               "delta_long",
	TagDeltaDoubleLong:         "delta_double_long",
	TagDeltaUnsigned:           "delta_unsigned",
	TagDeltaLongUnsigned:       "delta_long_unsigned",
	TagDeltaDoubleLongUnsigned: "delta_double_long_unsigned",
	TagDontCare:                "dont_care",
}

// TypeName returns the canonical name for tag, or "unknown" if tag is not
// one of the defined A-XDR tags.
func (t Tag) TypeName() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return "unknown"
}

// TypeNameOf classifies a value returned by Decode/DecodeRest back to its
// A-XDR type name. Decode deliberately returns native Go values rather than
// a tagged wrapper (so callers can type-switch directly), so the mapping
// back to a tag name is by Go runtime type rather than a stored tag byte.
// Tags that decode to the same Go type share one name: arrays are reported
// as "structure", and delta-encoded integers under their non-delta names.
func TypeNameOf(value interface{}) string {
	switch value.(type) {
	case nil:
		return TagNull.TypeName()
	case bool:
		return TagBoolean.TypeName()
	case BitString:
		return TagBitString.TypeName()
	case int32:
		return TagDoubleLong.TypeName()
	case uint32:
		return TagDoubleLongU.TypeName()
	case []byte:
		return TagOctetString.TypeName()
	case string:
		return TagVisibleString.TypeName()
	case Utf8String:
		return TagUTF8String.TypeName()
	case BCD:
		return TagBCD.TypeName()
	case int8:
		return TagInteger.TypeName()
	case int16:
		return TagLong.TypeName()
	case uint8:
		return TagUnsigned.TypeName()
	case uint16:
		return TagLongUnsigned.TypeName()
	case CompactArray:
		return TagCompactArray.TypeName()
	case int64:
		return TagLong64.TypeName()
	case uint64:
		return TagLong64U.TypeName()
	case Enum:
		return TagEnum.TypeName()
	case float32:
		return TagFloat32.TypeName()
	case float64:
		return TagFloat64.TypeName()
	case DateTime:
		return TagDateTime.TypeName()
	case Date:
		return TagDate.TypeName()
	case Time:
		return TagTime.TypeName()
	case []interface{}:
		return TagStructure.TypeName()
	default:
		return "unknown"
	}
}
