package seckey

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcutil/base58"
	"golang.org/x/crypto/ripemd160"
)

var ErrBase58Decode = fmt.Errorf("base58 check decode failed")

// checkLength is the length of the check digests used throughout the key
// formats: base58 check digests, WIF check digests and public key checksums.
const checkLength = 4

// ripemdChecksum computes the check digest for data under the given type tag:
// the first four bytes of RIPEMD-160 over data followed by the ASCII bytes
// of the tag.
func ripemdChecksum(data []byte, tag string) []byte {
	h := ripemd160.New()
	h.Write(data)
	h.Write([]byte(tag))
	return h.Sum(nil)[:checkLength]
}

// base58CheckEncode encodes data in base58 with a RIPEMD-160 check digest
// keyed on the type tag.
func base58CheckEncode(data []byte, tag string) string {
	buf := make([]byte, 0, len(data)+checkLength)
	buf = append(buf, data...)
	buf = append(buf, ripemdChecksum(data, tag)...)
	return base58.Encode(buf)
}

// base58CheckDecode decodes a base58 string and verifies its RIPEMD-160
// check digest under the type tag.
func base58CheckDecode(s string, tag string) ([]byte, error) {
	decoded := base58.Decode(s)
	if len(decoded) <= checkLength {
		return nil, ErrBase58Decode
	}
	data := decoded[:len(decoded)-checkLength]
	if !bytes.Equal(decoded[len(decoded)-checkLength:], ripemdChecksum(data, tag)) {
		return nil, ErrBase58Decode
	}
	return data, nil
}
