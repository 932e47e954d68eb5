package security

import "github.com/metertap/hdlc-dlms/pkg/common"

// Decryptor opens secured (general-glo-ciphering) data notification bodies
// for one suite, key, and system title. It tracks the last accepted frame
// counter to reject replays; it is not safe for concurrent use.
type Decryptor struct {
	suite       Suite
	key         []byte
	systemTitle []byte

	haveLast bool
	lastSeen uint32
}

// NewDecryptor constructs a Decryptor for the given suite, key, and server
// system title. Real deployments fix the suite per meter; it is not
// signalled per-frame.
func NewDecryptor(suite Suite, key, systemTitle []byte) *Decryptor {
	return &Decryptor{suite: suite, key: key, systemTitle: systemTitle}
}

// Open parses the leading security header from securedInfo, verifies and
// decrypts the remainder, and advances the replay counter on success.
func (d *Decryptor) Open(securedInfo []byte) ([]byte, error) {
	if len(securedInfo) < HeaderSize {
		return nil, common.NewError(common.ErrShortSecuredApdu, "secured information field shorter than security header")
	}

	var header Header
	if err := header.Decode(securedInfo); err != nil {
		return nil, common.WrapError(common.ErrShortSecuredApdu, "malformed security header", err)
	}
	body := securedInfo[HeaderSize:]

	if d.haveLast && header.FrameCounter <= d.lastSeen {
		return nil, common.NewError(common.ErrReplayAttack, "frame counter did not increase")
	}

	var (
		plaintext []byte
		err       error
	)
	switch d.suite {
	case Suite0:
		plaintext, err = decryptGCM(d.key, body, d.systemTitle, &header)
	case Suite1, Suite2:
		plaintext, err = decryptCBCandGMAC(d.key, body, d.systemTitle, &header)
	case Suite3:
		plaintext, err = decryptKuznyechikCmac(d.key, body, d.systemTitle, &header)
	default:
		return nil, common.NewError(common.ErrAuthenticationFailed, "unsupported security suite")
	}
	if err != nil {
		return nil, err
	}

	d.haveLast = true
	d.lastSeen = header.FrameCounter
	return plaintext, nil
}
