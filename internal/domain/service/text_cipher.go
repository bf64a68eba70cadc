package service

// TextCipher defines the interface for the reversible encrypt/decrypt utility.
// Implementations are initialized once with a pre-shared key at startup.
type TextCipher interface {
	// Encrypt transforms plaintext into a text-safe encoded ciphertext.
	Encrypt(plaintext string) (string, error)

	// Decrypt is the inverse of Encrypt. Input that is not validly encoded,
	// or not decryptable under the current key, yields ErrBadCiphertext.
	Decrypt(encoded string) (string, error)
}
