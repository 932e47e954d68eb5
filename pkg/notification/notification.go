// Package notification decodes the DLMS/COSEM data-notification APDU
// carried in an HDLC frame's information field: the LLC prefix, the
// invoke-id and date-time fields, and a structure of tagged list items,
// optionally unwrapping a general-glo/dedicated-ciphering envelope first.
package notification

import (
	"encoding/binary"
	"fmt"

	"github.com/metertap/hdlc-dlms/pkg/axdr"
	"github.com/metertap/hdlc-dlms/pkg/common"
	"github.com/metertap/hdlc-dlms/pkg/security"
)

var llcPrefix = [3]byte{0xE6, 0xE7, 0x00}

const (
	apduDataNotification          = 0x0F
	apduGeneralGloCiphering       = 0xDB
	apduGeneralDedicatedCiphering = 0xDC
)

// Notification is a decoded data-notification APDU.
type Notification struct {
	LongInvokeIDAndPriority uint32
	DateTime                axdr.DateTime
	Body                    axdr.Structure
}

// Decoder parses data-notification APDUs, transparently decrypting secured
// ones (general-glo-ciphering tag 0xDB, general-dedicated-ciphering 0xDC,
// treated identically) when armed with a security.Decryptor.
type Decoder struct {
	decryptor *security.Decryptor
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithDecryptor arms the decoder to open secured notifications using d
// before parsing the resulting plaintext. Without it, secured notifications
// are rejected with ErrUnsupportedApdu.
func WithDecryptor(d *security.Decryptor) Option {
	return func(dec *Decoder) { dec.decryptor = d }
}

// NewDecoder constructs a Decoder.
func NewDecoder(opts ...Option) *Decoder {
	dec := &Decoder{}
	for _, opt := range opts {
		opt(dec)
	}
	return dec
}

// Decode parses a frame's information field into a Notification.
func (dec *Decoder) Decode(information []byte) (*Notification, error) {
	if len(information) < 4 {
		return nil, common.NewError(common.ErrTruncatedApdu, "information field shorter than llc prefix plus apdu tag")
	}
	if information[0] != llcPrefix[0] || information[1] != llcPrefix[1] || information[2] != llcPrefix[2] {
		return nil, common.NewError(common.ErrBadLlc, "llc prefix mismatch")
	}

	switch information[3] {
	case apduDataNotification:
		return parseBody(information[4:])
	case apduGeneralGloCiphering, apduGeneralDedicatedCiphering:
		if dec.decryptor == nil {
			return nil, common.NewError(common.ErrUnsupportedApdu, "secured notification received without a configured decryptor")
		}
		plaintext, err := dec.decryptor.Open(information[4:])
		if err != nil {
			return nil, err
		}
		if len(plaintext) < 1 || plaintext[0] != apduDataNotification {
			return nil, common.NewError(common.ErrUnsupportedApdu, "decrypted payload is not a tag-0x0f notification")
		}
		return parseBody(plaintext[1:])
	default:
		return nil, common.NewError(common.ErrUnsupportedApdu, fmt.Sprintf("unsupported apdu tag 0x%02x", information[3]))
	}
}

func parseBody(data []byte) (*Notification, error) {
	if len(data) < 4 {
		return nil, common.NewError(common.ErrTruncatedApdu, "apdu body shorter than long-invoke-id")
	}
	invokeID := binary.BigEndian.Uint32(data[:4])

	dateTime, rest, err := axdr.DecodeDateTimeField(data[4:])
	if err != nil {
		return nil, common.WrapError(common.ErrTruncatedApdu, "failed to decode date-time field", err)
	}

	value, _, err := axdr.DecodeRest(rest)
	if err != nil {
		return nil, common.WrapError(common.ErrTruncatedApdu, "failed to decode notification body", err)
	}
	body, ok := value.([]interface{})
	if !ok {
		return nil, common.NewError(common.ErrTruncatedApdu, "notification body is not a structure")
	}

	return &Notification{
		LongInvokeIDAndPriority: invokeID,
		DateTime:                dateTime,
		Body:                    axdr.Structure(body),
	}, nil
}
