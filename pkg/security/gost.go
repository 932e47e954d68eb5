package security

import (
	"crypto/cipher"
	"crypto/subtle"
	"fmt"

	"github.com/aead/cmac"
	"github.com/ddulesov/gogost/gost34112012256"
	"github.com/ddulesov/gogost/gost3412128"

	"github.com/metertap/hdlc-dlms/pkg/common"
)

const kuznyechikBlockSize = 16

// deriveKuznyechikKeys splits one master key into a CTR encryption key and
// a CMAC authentication key via domain-separated Streebog-256 digests.
func deriveKuznyechikKeys(masterKey, context []byte) (encKey, authKey []byte) {
	h := gost34112012256.New()
	h.Write(append([]byte("DLMS-KUZ-ENC"), append(append([]byte(nil), masterKey...), context...)...))
	encKey = h.Sum(nil)
	h.Reset()
	h.Write(append([]byte("DLMS-KUZ-AUTH"), append(append([]byte(nil), masterKey...), context...)...))
	authKey = h.Sum(nil)
	return encKey, authKey
}

func kuznyechikCTR(key, iv, data []byte) ([]byte, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("kuznyechik key must be 32 bytes, got %d", len(key))
	}
	if len(iv) != kuznyechikBlockSize {
		return nil, fmt.Errorf("kuznyechik CTR IV must be %d bytes, got %d", kuznyechikBlockSize, len(iv))
	}
	block := gost3412128.NewCipher(key)
	out := make([]byte, len(data))
	cipher.NewCTR(block, iv).XORKeyStream(out, data)
	return out, nil
}

func kuznyechikIV(systemTitle []byte, frameCounter uint32) []byte {
	iv := make([]byte, kuznyechikBlockSize)
	copy(iv, systemTitle)
	iv[8] = byte(frameCounter >> 24)
	iv[9] = byte(frameCounter >> 16)
	iv[10] = byte(frameCounter >> 8)
	iv[11] = byte(frameCounter)
	return iv
}

func decryptKuznyechikCmac(key, body, systemTitle []byte, header *Header) ([]byte, error) {
	if len(body) < kuznyechikBlockSize {
		return nil, common.NewError(common.ErrAuthenticationFailed, "secured body shorter than cmac tag")
	}
	ciphertext := body[:len(body)-kuznyechikBlockSize]
	tag := body[len(body)-kuznyechikBlockSize:]

	context := append(append([]byte(nil), systemTitle...), byte(Suite3))
	encKey, authKey := deriveKuznyechikKeys(key, context)

	authenticatedData := append(header.Encode(), ciphertext...)
	block := gost3412128.NewCipher(authKey)
	expectedTag, err := cmac.Sum(authenticatedData, block, kuznyechikBlockSize)
	if err != nil {
		return nil, err
	}
	if subtle.ConstantTimeCompare(tag, expectedTag) != 1 {
		return nil, common.NewError(common.ErrAuthenticationFailed, "cmac tag mismatch")
	}

	return kuznyechikCTR(encKey, kuznyechikIV(systemTitle, header.FrameCounter), ciphertext)
}

// encryptKuznyechikCmac is test-only fixture tooling.
func encryptKuznyechikCmac(key, plaintext, systemTitle []byte, header *Header) ([]byte, error) {
	context := append(append([]byte(nil), systemTitle...), byte(Suite3))
	encKey, authKey := deriveKuznyechikKeys(key, context)

	ciphertext, err := kuznyechikCTR(encKey, kuznyechikIV(systemTitle, header.FrameCounter), plaintext)
	if err != nil {
		return nil, err
	}

	authenticatedData := append(header.Encode(), ciphertext...)
	block := gost3412128.NewCipher(authKey)
	tag, err := cmac.Sum(authenticatedData, block, kuznyechikBlockSize)
	if err != nil {
		return nil, err
	}
	return append(ciphertext, tag...), nil
}
