package security

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/metertap/hdlc-dlms/pkg/common"
)

func cbcIV(block cipher.Block, systemTitle []byte, frameCounter uint32) []byte {
	source := make([]byte, 16)
	copy(source, systemTitle)
	source[8] = byte(frameCounter >> 24)
	source[9] = byte(frameCounter >> 16)
	source[10] = byte(frameCounter >> 8)
	source[11] = byte(frameCounter)
	iv := make([]byte, aes.BlockSize)
	block.Encrypt(iv, source)
	return iv
}

func decryptCBCandGMAC(key, body, systemTitle []byte, header *Header) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	if len(body) < 12 {
		return nil, common.NewError(common.ErrAuthenticationFailed, "secured body shorter than gmac tag")
	}
	ciphertext := body[:len(body)-12]
	tag := body[len(body)-12:]

	headerBytes := header.Encode()
	authenticatedData := make([]byte, len(headerBytes)+len(ciphertext))
	copy(authenticatedData, headerBytes)
	copy(authenticatedData[len(headerBytes):], ciphertext)

	expectedTag, err := gmacTag(key, gcmNonce(systemTitle, header.FrameCounter), authenticatedData)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(tag, expectedTag) {
		return nil, common.NewError(common.ErrAuthenticationFailed, "gmac tag mismatch")
	}

	iv := cbcIV(block, systemTitle, header.FrameCounter)
	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	return pkcs7Unpad(plaintext, aes.BlockSize)
}

// encryptCBCandGMAC is test-only fixture tooling.
func encryptCBCandGMAC(key, plaintext, systemTitle []byte, header *Header) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	iv := cbcIV(block, systemTitle, header.FrameCounter)

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	headerBytes := header.Encode()
	authenticatedData := make([]byte, len(headerBytes)+len(ciphertext))
	copy(authenticatedData, headerBytes)
	copy(authenticatedData[len(headerBytes):], ciphertext)

	tag, err := gmacTag(key, gcmNonce(systemTitle, header.FrameCounter), authenticatedData)
	if err != nil {
		return nil, err
	}
	return append(ciphertext, tag...), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - (len(data) % blockSize)
	return append(append([]byte(nil), data...), bytes.Repeat([]byte{byte(padding)}, padding)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, common.NewError(common.ErrInvalidPadding, fmt.Sprintf("invalid padded length %d", len(data)))
	}
	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize || padding > len(data) {
		return nil, common.NewError(common.ErrInvalidPadding, "invalid pkcs7 padding byte")
	}
	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, common.NewError(common.ErrInvalidPadding, "inconsistent pkcs7 padding")
		}
	}
	return data[:len(data)-padding], nil
}
