package seckey

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec"
)

const publicKeyPrefix = "PUB"

// PublicKey represents a secp256k1 public key.
type PublicKey struct {
	publicKey *btcec.PublicKey
}

// NewPublicKeyFromBytes creates a public key from its serialized compressed
// form. The input is 33 bytes long.
func NewPublicKeyFromBytes(b []byte) (*PublicKey, error) {
	publicKey, err := btcec.ParsePubKey(b, btcec.S256())
	if err != nil {
		return nil, fmt.Errorf("invalid serialized public key: %v", err)
	}
	return &PublicKey{publicKey: publicKey}, nil
}

// NewPublicKeyFromString parses a public key from its canonical
// "PUB_K1_..." string form.
func NewPublicKeyFromString(s string) (*PublicKey, error) {
	parts := strings.Split(s, "_")
	if len(parts) != 3 || parts[0] != publicKeyPrefix {
		return nil, ErrMalformedKeyString
	}
	if !validKeyTypeTag(parts[1]) {
		return nil, ErrInvalidKeyType
	}
	if KeyType(parts[1]) != KeyTypeK1 {
		return nil, ErrUnsupportedKeyType
	}
	data, err := base58CheckDecode(parts[2], parts[1])
	if err != nil {
		return nil, err
	}
	return NewPublicKeyFromBytes(data)
}

// KeyType returns the curve type tag for this key.
func (pbk *PublicKey) KeyType() KeyType {
	return KeyTypeK1
}

// SerializeCompressed returns the public key serialized in the SEC compressed
// format. The result is 33 bytes long.
func (pbk *PublicKey) SerializeCompressed() []byte {
	return pbk.publicKey.SerializeCompressed()
}

// String returns the canonical "PUB_K1_..." form of this key.
func (pbk *PublicKey) String() string {
	return publicKeyPrefix + "_" + string(KeyTypeK1) + "_" +
		base58CheckEncode(pbk.SerializeCompressed(), string(KeyTypeK1))
}

// Checksum returns the first four bytes of a double SHA256 over the ASCII
// bytes of the canonical string form. The checksum doubles as the scrypt
// salt when the corresponding private key is encrypted with a password.
func (pbk *PublicKey) Checksum() []byte {
	return Hash256([]byte(pbk.String()))[:checkLength]
}

// Equal returns true if this key is equal to the other key.
func (pbk *PublicKey) Equal(other *PublicKey) bool {
	if other == nil {
		return false
	}
	return pbk.publicKey.X.Cmp(other.publicKey.X) == 0 &&
		pbk.publicKey.Y.Cmp(other.publicKey.Y) == 0
}
