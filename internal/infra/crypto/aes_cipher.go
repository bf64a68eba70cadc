// Package crypto provides the concrete implementation of the symmetric text cipher.
package crypto

import (
	"crypto/aes"
	stdcipher "crypto/cipher"
	"encoding/base64"

	domainerrors "fitznet/internal/domain/errors"
	"fitznet/internal/domain/service"
	"fitznet/internal/errors"
)

// aesCipher implements service.TextCipher with AES in ECB mode and PKCS#7
// padding, Base64-encoded on the wire. This mirrors the scheme used by every
// payload encrypted so far, which is why it cannot be swapped for an
// authenticated mode without a migration.
//
// Known weakness: ECB has no per-message randomness, so identical plaintexts
// under the same key always produce identical ciphertexts, and there is no
// integrity check. Do not reuse this cipher for new secrets.
type aesCipher struct {
	block stdcipher.Block
}

// NewAESCipher decodes the Base64-encoded key and builds the cipher.
// An invalid encoding or a key length other than 16, 24 or 32 bytes is a
// startup error.
func NewAESCipher(encodedKey string) (service.TextCipher, error) {
	key, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil {
		return nil, errors.Wrap(err, "encryption key is not valid base64")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid encryption key length %d", len(key))
	}

	return &aesCipher{block: block}, nil
}

// Encrypt transforms the UTF-8 bytes of plaintext into Base64-encoded
// AES-ECB ciphertext. The transform is deterministic under a fixed key.
func (c *aesCipher) Encrypt(plaintext string) (string, error) {
	padded := pkcs7Pad([]byte(plaintext), c.block.BlockSize())

	encrypted := make([]byte, len(padded))
	for start := 0; start < len(padded); start += c.block.BlockSize() {
		c.block.Encrypt(encrypted[start:], padded[start:])
	}

	return base64.StdEncoding.EncodeToString(encrypted), nil
}

// Decrypt is the inverse of Encrypt. Malformed Base64, a ciphertext that is
// not a whole number of blocks, or invalid padding all yield ErrBadCiphertext.
func (c *aesCipher) Decrypt(encoded string) (string, error) {
	encrypted, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", domainerrors.ErrBadCiphertext.WrapMessage("input is not valid base64")
	}

	blockSize := c.block.BlockSize()
	if len(encrypted) == 0 || len(encrypted)%blockSize != 0 {
		return "", domainerrors.ErrBadCiphertext.WrapMessage("ciphertext length is not a multiple of the block size")
	}

	padded := make([]byte, len(encrypted))
	for start := 0; start < len(encrypted); start += blockSize {
		c.block.Decrypt(padded[start:], encrypted[start:])
	}

	plaintext, err := pkcs7Unpad(padded, blockSize)
	if err != nil {
		return "", domainerrors.ErrBadCiphertext.WrapMessage("invalid padding")
	}

	return string(plaintext), nil
}

// pkcs7Pad appends n bytes of value n so the result is a whole number of
// blocks. Input that is already block-aligned gains a full padding block.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}

	return padded
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, errors.New("data is not block aligned")
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, errors.New("invalid padding length")
	}

	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, errors.New("inconsistent padding bytes")
		}
	}

	return data[:len(data)-padLen], nil
}
