package seckey

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/btcsuite/btcd/btcec"
	"github.com/btcsuite/btcutil/base58"
	"github.com/tyler-smith/go-bip39"
)

var ErrInvalidBinaryLength = fmt.Errorf("invalid binary key length")
var ErrMalformedKeyString = fmt.Errorf("malformed key string")
var ErrInvalidKeyType = fmt.Errorf("invalid key type")
var ErrUnsupportedKeyType = fmt.Errorf("unsupported key type")

// KeyType tags the curve a key belongs to. K1 (secp256k1) is the only type
// with full support; encrypted keys of other types are carried opaquely.
type KeyType string

const (
	KeyTypeK1 KeyType = "K1"
	KeyTypeR1 KeyType = "R1"
	KeyTypeWA KeyType = "WA"
)

// validKeyTypeTag reports whether tag is a well-formed two character
// uppercase key type tag.
func validKeyTypeTag(tag string) bool {
	if len(tag) != 2 {
		return false
	}
	for _, c := range tag {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

const (
	privateKeyLength = 32
	wifVersion       = 0x80

	privateKeyPrefix = "PVT"
)

// PrivateKey represents a secp256k1 private key.
type PrivateKey struct {
	privateKey *btcec.PrivateKey
}

// GeneratePrivateKey creates a new random private key.
func GeneratePrivateKey() (*PrivateKey, error) {
	privateKey, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		return nil, fmt.Errorf("failed to generate private key, %v", err)
	}
	return &PrivateKey{privateKey: privateKey}, nil
}

// NewPrivateKeyFromBytes creates a private key from its 32 raw key bytes.
func NewPrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != privateKeyLength {
		return nil, ErrInvalidBinaryLength
	}
	privateKey, _ := btcec.PrivKeyFromBytes(btcec.S256(), b)
	return &PrivateKey{privateKey: privateKey}, nil
}

// NewPrivateKeyFromString parses a private key from its string form, either
// the canonical "PVT_K1_..." spelling or the legacy WIF spelling.
func NewPrivateKeyFromString(s string) (*PrivateKey, error) {
	if !strings.HasPrefix(s, privateKeyPrefix+"_") {
		return NewPrivateKeyFromWIF(s)
	}
	parts := strings.Split(s, "_")
	if len(parts) != 3 {
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
	return NewPrivateKeyFromBytes(data)
}

// NewPrivateKeyFromWIF parses a private key from the legacy wallet import
// format: base58 over a version byte, the raw key bytes and a double-SHA256
// check digest.
func NewPrivateKeyFromWIF(wif string) (*PrivateKey, error) {
	decoded := base58.Decode(wif)
	if len(decoded) != 1+privateKeyLength+checkLength {
		return nil, ErrMalformedKeyString
	}
	if decoded[0] != wifVersion {
		return nil, ErrMalformedKeyString
	}
	data := decoded[:1+privateKeyLength]
	if !bytes.Equal(Hash256(data)[:checkLength], decoded[1+privateKeyLength:]) {
		return nil, ErrBase58Decode
	}
	return NewPrivateKeyFromBytes(decoded[1 : 1+privateKeyLength])
}

// NewPrivateKeyFromMnemonic creates a private key from a BIP39 mnemonic
// phrase.
func NewPrivateKeyFromMnemonic(mnemonic string) (*PrivateKey, error) {
	b, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return nil, err
	}
	return NewPrivateKeyFromBytes(padWithZeros(b, privateKeyLength))
}

// KeyType returns the curve type tag for this key.
func (pk *PrivateKey) KeyType() KeyType {
	return KeyTypeK1
}

// Bytes returns the 32 raw key bytes.
func (pk *PrivateKey) Bytes() []byte {
	return pk.privateKey.Serialize()
}

// Secret returns the private key's secret.
func (pk *PrivateKey) Secret() *big.Int {
	return pk.privateKey.D
}

// String returns the canonical "PVT_K1_..." form of this key.
func (pk *PrivateKey) String() string {
	return privateKeyPrefix + "_" + string(KeyTypeK1) + "_" +
		base58CheckEncode(pk.Bytes(), string(KeyTypeK1))
}

// WIF returns the key in the legacy wallet import format.
func (pk *PrivateKey) WIF() string {
	data := make([]byte, 0, 1+privateKeyLength+checkLength)
	data = append(data, wifVersion)
	data = append(data, pk.Bytes()...)
	return base58.Encode(append(data, Hash256(data)[:checkLength]...))
}

// Mnemonic returns a BIP39 mnemonic phrase which can be used to recover this
// private key.
func (pk *PrivateKey) Mnemonic() (string, error) {
	return bip39.NewMnemonic(pk.Bytes())
}

// PublicKey returns the public key derived from this private key.
func (pk *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{publicKey: pk.privateKey.PubKey()}
}

// Sign signs (ECDSA) the hash using the private key and returns signature.
// See https://en.wikipedia.org/wiki/Elliptic_Curve_Digital_Signature_Algorithm.
func (pk *PrivateKey) Sign(hash []byte) (*Signature, error) {
	r, s, err := ecdsa.Sign(rand.Reader, pk.privateKey.ToECDSA(), hash)
	if err != nil {
		return nil, err
	}
	return &Signature{R: r, S: s}, nil
}

// Equal returns true if this key is equal to the other key.
func (pk *PrivateKey) Equal(other *PrivateKey) bool {
	if other == nil {
		return false
	}
	return pk.privateKey.D.Cmp(other.privateKey.D) == 0
}
