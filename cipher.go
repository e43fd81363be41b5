package seckey

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

var ErrCryptoFailure = fmt.Errorf("cryptographic operation failed")

const (
	// Key derivation parameters. scrypt produces the CBC initialization
	// vector followed by the AES-256 key.
	deriveKey_ivLen  = 16
	deriveKey_keyLen = 32
)

// deriveCipher derives an AES-256 block cipher and a CBC initialization
// vector from password and salt, using scrypt with the cost parameters of
// the given security level.
// Key derivation algorithm is described in https://www.tarsnap.com/scrypt/scrypt.pdf.
func deriveCipher(password, salt []byte, level SecurityLevel) (cipher.Block, []byte, error) {
	N, r, p := level.Params()
	derived, err := scrypt.Key(password, salt, N, r, p, deriveKey_ivLen+deriveKey_keyLen)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrCryptoFailure, err)
	}
	block, err := aes.NewCipher(derived[deriveKey_ivLen:])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrCryptoFailure, err)
	}
	return block, derived[:deriveKey_ivLen], nil
}

// deriveAndCrypt runs the password-based cipher pipeline over input:
// scrypt key derivation followed by unpadded AES-256-CBC in the requested
// direction. The derivation is CPU and memory intensive; keep it off
// latency-sensitive paths.
//
// A wrong password is not detectable here: it silently yields a garbage
// derivation and therefore garbage output of the correct length. Callers
// verify the decrypted result against the stored public key checksum.
func deriveAndCrypt(input, password, salt []byte, level SecurityLevel, encrypt bool) ([]byte, error) {
	block, iv, err := deriveCipher(password, salt, level)
	if err != nil {
		return nil, err
	}
	if len(input)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: input is not a multiple of the cipher block size", ErrCryptoFailure)
	}
	out := make([]byte, len(input))
	if encrypt {
		cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, input)
	} else {
		cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, input)
	}
	return out, nil
}
