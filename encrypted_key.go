package seckey

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

var ErrInvalidPassword = fmt.Errorf("invalid password")
var ErrInvalidDataPayload = fmt.Errorf("invalid data payload")

const (
	encryptedKeyPrefix = "SEC"

	encryptedHeaderLength     = 1
	encryptedCiphertextLength = 32
	encryptedKeyLength        = encryptedHeaderLength + checkLength + encryptedCiphertextLength

	// Type tags of the structured binary encoding.
	binaryTypeK1    byte = 0
	binaryTypeR1    byte = 1
	binaryTypeWA    byte = 2
	binaryTypeOther byte = 255
)

// EncryptedPrivateKey is a password-encrypted private key in the tagged
// "SEC_<TYPE>_..." format. Values are immutable once constructed.
//
// The raw binary layout is one header byte encoding the security level, a
// four byte checksum of the corresponding public key's canonical string
// (which doubles as the scrypt salt) and the ciphertext: 37 bytes total for
// K1 keys. Keys of other curve types are carried opaquely and round-tripped
// without decryption.
type EncryptedPrivateKey struct {
	keyType    KeyType
	header     byte
	checksum   [checkLength]byte
	ciphertext []byte
}

// NewEncryptedPrivateKeyFromBytes creates an encrypted K1 key from its raw
// 37-byte binary form.
func NewEncryptedPrivateKeyFromBytes(data []byte) (*EncryptedPrivateKey, error) {
	if len(data) != encryptedKeyLength {
		return nil, ErrInvalidBinaryLength
	}
	ek := &EncryptedPrivateKey{
		keyType:    KeyTypeK1,
		header:     data[0],
		ciphertext: append([]byte(nil), data[encryptedHeaderLength+checkLength:]...),
	}
	copy(ek.checksum[:], data[encryptedHeaderLength:encryptedHeaderLength+checkLength])
	return ek, nil
}

// NewUnknownEncryptedPrivateKey creates an encrypted key of an unsupported
// curve type. The ciphertext is kept opaque; the key can be re-encoded but
// not decrypted. Returns nil if data is too short to contain a header, a
// checksum and ciphertext; the caller decides whether that is fatal.
func NewUnknownEncryptedPrivateKey(data []byte, keyType KeyType) *EncryptedPrivateKey {
	if len(data) <= encryptedHeaderLength+checkLength+1 {
		return nil
	}
	ek := &EncryptedPrivateKey{
		keyType:    keyType,
		header:     data[0],
		ciphertext: append([]byte(nil), data[encryptedHeaderLength+checkLength:]...),
	}
	copy(ek.checksum[:], data[encryptedHeaderLength:encryptedHeaderLength+checkLength])
	return ek
}

// NewEncryptedPrivateKeyFromString parses the canonical
// "SEC_<TYPE>_<base58check>" form. The type tag's ASCII bytes key the base58
// check digest.
func NewEncryptedPrivateKeyFromString(s string) (*EncryptedPrivateKey, error) {
	parts := strings.Split(s, "_")
	if len(parts) != 3 || parts[0] != encryptedKeyPrefix {
		return nil, ErrMalformedKeyString
	}
	if !validKeyTypeTag(parts[1]) {
		return nil, ErrInvalidKeyType
	}
	data, err := base58CheckDecode(parts[2], parts[1])
	if err != nil {
		return nil, err
	}
	if KeyType(parts[1]) == KeyTypeK1 {
		return NewEncryptedPrivateKeyFromBytes(data)
	}
	ek := NewUnknownEncryptedPrivateKey(data, KeyType(parts[1]))
	if ek == nil {
		return nil, ErrInvalidDataPayload
	}
	return ek, nil
}

// KeyType returns the curve type tag of the encrypted key.
func (ek *EncryptedPrivateKey) KeyType() KeyType {
	return ek.keyType
}

// SecurityLevel returns the security level the key was encrypted with,
// decoded from the header byte.
func (ek *EncryptedPrivateKey) SecurityLevel() SecurityLevel {
	return SecurityLevel(ek.header)
}

// Checksum returns the four byte public key checksum stored with the
// ciphertext.
func (ek *EncryptedPrivateKey) Checksum() []byte {
	return append([]byte(nil), ek.checksum[:]...)
}

// Bytes returns the raw binary form: header, checksum, ciphertext.
func (ek *EncryptedPrivateKey) Bytes() []byte {
	buf := make([]byte, 0, encryptedHeaderLength+checkLength+len(ek.ciphertext))
	buf = append(buf, ek.header)
	buf = append(buf, ek.checksum[:]...)
	buf = append(buf, ek.ciphertext...)
	return buf
}

// String returns the canonical "SEC_<TYPE>_..." form.
func (ek *EncryptedPrivateKey) String() string {
	return encryptedKeyPrefix + "_" + string(ek.keyType) + "_" +
		base58CheckEncode(ek.Bytes(), string(ek.keyType))
}

// Equal returns true if this key is equal to the other key.
func (ek *EncryptedPrivateKey) Equal(other *EncryptedPrivateKey) bool {
	if other == nil {
		return false
	}
	return ek.keyType == other.keyType && bytes.Equal(ek.Bytes(), other.Bytes())
}

func binaryKeyType(keyType KeyType) byte {
	switch keyType {
	case KeyTypeK1:
		return binaryTypeK1
	case KeyTypeR1:
		return binaryTypeR1
	case KeyTypeWA:
		return binaryTypeWA
	}
	return binaryTypeOther
}

// MarshalBinary implements encoding.BinaryMarshaler. The fixed-schema wire
// form is one type byte (0 for K1, 1 for R1, 2 for WA, 255 otherwise)
// followed by the 37-byte raw binary form.
func (ek *EncryptedPrivateKey) MarshalBinary() ([]byte, error) {
	raw := ek.Bytes()
	if len(raw) != encryptedKeyLength {
		return nil, ErrInvalidBinaryLength
	}
	return append([]byte{binaryKeyType(ek.keyType)}, raw...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Exactly 37 payload
// bytes are expected after the type byte. Type 255 is rejected: the wire
// form does not carry the tag name, so the key cannot be reconstructed.
func (ek *EncryptedPrivateKey) UnmarshalBinary(data []byte) error {
	if len(data) != 1+encryptedKeyLength {
		return ErrInvalidBinaryLength
	}
	var keyType KeyType
	switch data[0] {
	case binaryTypeK1:
		decoded, err := NewEncryptedPrivateKeyFromBytes(data[1:])
		if err != nil {
			return err
		}
		*ek = *decoded
		return nil
	case binaryTypeR1:
		keyType = KeyTypeR1
	case binaryTypeWA:
		keyType = KeyTypeWA
	default:
		return ErrInvalidKeyType
	}
	decoded := NewUnknownEncryptedPrivateKey(data[1:], keyType)
	if decoded == nil {
		return ErrInvalidDataPayload
	}
	*ek = *decoded
	return nil
}

// MarshalJSON encodes the key as its canonical string.
func (ek *EncryptedPrivateKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(ek.String())
}

// UnmarshalJSON decodes the key from its canonical string.
func (ek *EncryptedPrivateKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	decoded, err := NewEncryptedPrivateKeyFromString(s)
	if err != nil {
		return err
	}
	*ek = *decoded
	return nil
}

// EncryptWithPassword encrypts the private key with a password at the given
// security level (use SecurityLevelDefault unless you have a reason not to).
// The public key checksum is stored alongside the ciphertext and doubles as
// the scrypt salt; decryption verifies the password against it.
func (pk *PrivateKey) EncryptWithPassword(password string, level SecurityLevel) (*EncryptedPrivateKey, error) {
	if pk.KeyType() != KeyTypeK1 {
		return nil, ErrUnsupportedKeyType
	}
	checksum := pk.PublicKey().Checksum()
	ciphertext, err := deriveAndCrypt(pk.Bytes(), []byte(password), checksum, level, true)
	if err != nil {
		return nil, err
	}
	data := make([]byte, 0, encryptedKeyLength)
	data = append(data, level.Flags())
	data = append(data, checksum...)
	data = append(data, ciphertext...)
	return NewEncryptedPrivateKeyFromBytes(data)
}

// Decrypt decrypts the private key with the given password. The password is
// verified by deriving the candidate key's public key checksum and comparing
// it to the stored one; the cipher itself cannot tell a wrong password from
// a right one. A wrong password fails with ErrInvalidPassword and never
// yields corrupted key data.
func (ek *EncryptedPrivateKey) Decrypt(password string) (*PrivateKey, error) {
	if ek.keyType != KeyTypeK1 {
		return nil, ErrUnsupportedKeyType
	}
	decrypted, err := deriveAndCrypt(ek.ciphertext, []byte(password), ek.checksum[:], ek.SecurityLevel(), false)
	if err != nil {
		return nil, err
	}
	candidate, err := NewPrivateKeyFromBytes(decrypted)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(candidate.PublicKey().Checksum(), ek.checksum[:]) {
		return nil, ErrInvalidPassword
	}
	return candidate, nil
}
