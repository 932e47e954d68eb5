package notification

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/metertap/hdlc-dlms/pkg/common"
	"github.com/metertap/hdlc-dlms/pkg/security"
)

func hexBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	assert.NoError(t, err)
	return b
}

// kamstrupSample is a real single-phase Kamstrup data-notification
// information field (10 second list, one quadrant).
const kamstrupSample = "e6 e7 00" +
	"0f" +
	"000000000" +
	"c07e60111010c2c28ff800000" +
	"0219" +
	"0a0e 4b616d73747275705f5630303031" +
	"0906 0101000005ff  0a10 35373035373035373035373035373032" +
	"0906 0101600101ff  0a12 36383631313131424e323432313031303430" +
	"0906 0101010700ff  0600000768" +
	"0906 0101020700ff  0600000000" +
	"0906 0101030700ff  0600000000" +
	"0906 0101040700ff  06000001ed" +
	"0906 01011f0700ff  0600000380" +
	"00000000" +
	"0906 0101200700ff  1200e1" +
	"00000000"

func TestDecodeParsesKamstrupSample(t *testing.T) {
	information := hexBytes(t, stripSpaces(kamstrupSample))

	dec := NewDecoder()
	n, err := dec.Decode(information)
	assert.NoError(t, err)

	assert.Equal(t, uint32(0), n.LongInvokeIDAndPriority)
	dt := n.DateTime
	assert.Equal(t, uint16(2022), dt.Date.Year)
	assert.Equal(t, uint8(1), dt.Date.Month)
	assert.Equal(t, uint8(17), dt.Date.Day)
	assert.Equal(t, uint8(12), dt.Time.Hour)
	assert.Equal(t, uint8(44), dt.Time.Minute)
	assert.Equal(t, uint8(40), dt.Time.Second)
	assert.Len(t, n.Body, 0x19)

	p := NewProjector()
	elements, err := p.Project(n.Body)
	assert.NoError(t, err)

	el, ok := elements["1.1.1.7.0.255"]
	assert.True(t, ok, "missing obis 1.1.1.7.0.255 in projected elements")
	assert.Equal(t, "double_long_unsigned", el.ValueType)
	assert.Equal(t, uint32(1896), el.Value)
}

func TestDecodeRejectsBadLlc(t *testing.T) {
	information := hexBytes(t, "000000"+"0f"+"00000000")
	dec := NewDecoder()
	_, err := dec.Decode(information)
	assert.ErrorIs(t, err, common.NewError(common.ErrBadLlc, ""))
}

func TestDecodeRejectsUnsupportedApdu(t *testing.T) {
	information := hexBytes(t, "e6e700"+"c1"+"00000000")
	dec := NewDecoder()
	_, err := dec.Decode(information)
	assert.ErrorIs(t, err, common.NewError(common.ErrUnsupportedApdu, ""))
}

func TestDecodeRejectsSecuredApduWithoutDecryptor(t *testing.T) {
	information := hexBytes(t, "e6e700"+"db"+"0000000000")
	dec := NewDecoder()
	_, err := dec.Decode(information)
	assert.ErrorIs(t, err, common.NewError(common.ErrUnsupportedApdu, ""))
}

func TestDecodeRejectsTruncatedInformation(t *testing.T) {
	dec := NewDecoder()
	_, err := dec.Decode([]byte{0xe6, 0xe7})
	assert.ErrorIs(t, err, common.NewError(common.ErrTruncatedApdu, ""))
}

func TestDecodeRoutesSecuredApduToDecryptor(t *testing.T) {
	d := security.NewDecryptor(security.Suite0, []byte("0123456789ABCDEF"), []byte("SERVER01"))
	dec := NewDecoder(WithDecryptor(d))

	information := hexBytes(t, "e6e700db3000")
	_, err := dec.Decode(information)
	assert.ErrorIs(t, err, common.NewError(common.ErrShortSecuredApdu, ""), "confirms dispatch to the decryptor")
}

func stripSpaces(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\n' && s[i] != '\t' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
