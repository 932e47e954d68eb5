package security

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/metertap/hdlc-dlms/pkg/common"
)

func gcmNonce(systemTitle []byte, frameCounter uint32) []byte {
	nonce := make([]byte, 12)
	copy(nonce, systemTitle)
	nonce[8] = byte(frameCounter >> 24)
	nonce[9] = byte(frameCounter >> 16)
	nonce[10] = byte(frameCounter >> 8)
	nonce[11] = byte(frameCounter)
	return nonce
}

func decryptGCM(key, ciphertext, systemTitle []byte, header *Header) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCMWithTagSize(block, 12)
	if err != nil {
		return nil, err
	}
	plaintext, err := aesgcm.Open(nil, gcmNonce(systemTitle, header.FrameCounter), ciphertext, header.Encode())
	if err != nil {
		return nil, common.NewError(common.ErrAuthenticationFailed, "gcm authentication failed")
	}
	return plaintext, nil
}

// encryptGCM is test-only fixture tooling: this package's public contract
// is decryption, not the encode side of secured notifications.
func encryptGCM(key, plaintext, systemTitle []byte, header *Header) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCMWithTagSize(block, 12)
	if err != nil {
		return nil, err
	}
	return aesgcm.Seal(nil, gcmNonce(systemTitle, header.FrameCounter), plaintext, header.Encode()), nil
}

// gmacTag computes an authentication-only GCM tag (AES-GCM sealed over no
// plaintext) used as the detached MAC for suites 1 and 2.
func gmacTag(key, nonce, authenticatedData []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCMWithTagSize(block, 12)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("gmac nonce must be %d bytes, got %d", gcm.NonceSize(), len(nonce))
	}
	return gcm.Seal(nil, nonce, nil, authenticatedData), nil
}
