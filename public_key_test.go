package seckey

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testPublicKeyString   = "PUB_K1_7pD1ZG1CuwtvPeyJian9DcheuMCRd6rST2mQ2e7Gn2kDcqqby6"
	testPublicKeyHex      = "03815db0ec7e24424fd73ba2c66ff96e1937804181d205e0d95548d3639a2f375c"
	testPublicKeyChecksum = "1feb8491"
)

func Test_PublicKey_String(t *testing.T) {
	assert := assert.New(t)

	pk, err := NewPrivateKeyFromWIF(testKeyWIF)
	assert.NoError(err)

	publicKey := pk.PublicKey()
	assert.Equal(testPublicKeyHex, fmt.Sprintf("%x", publicKey.SerializeCompressed()))
	assert.Equal(testPublicKeyString, publicKey.String())
	assert.Equal(KeyTypeK1, publicKey.KeyType())
}

func Test_PublicKey_Checksum(t *testing.T) {
	assert := assert.New(t)

	pk, err := NewPrivateKeyFromWIF(testKeyWIF)
	assert.NoError(err)

	checksum := pk.PublicKey().Checksum()
	assert.Len(checksum, 4)
	assert.Equal(testPublicKeyChecksum, fmt.Sprintf("%x", checksum))
}

func Test_PublicKey_FromString(t *testing.T) {
	assert := assert.New(t)

	publicKey, err := NewPublicKeyFromString(testPublicKeyString)
	assert.NoError(err)
	assert.Equal(testPublicKeyString, publicKey.String())

	_, err = NewPublicKeyFromString("PUB_K1")
	assert.Equal(ErrMalformedKeyString, err)
	_, err = NewPublicKeyFromString("SEC_K1_abcd")
	assert.Equal(ErrMalformedKeyString, err)
	_, err = NewPublicKeyFromString("PUB_K1x_abcd")
	assert.Equal(ErrInvalidKeyType, err)
	_, err = NewPublicKeyFromString("PUB_R1_abcd")
	assert.Equal(ErrUnsupportedKeyType, err)
	_, err = NewPublicKeyFromString("PUB_K1_!!!!")
	assert.Equal(ErrBase58Decode, err)
}

func Test_PublicKey_FromBytes(t *testing.T) {
	assert := assert.New(t)

	pk, err := GeneratePrivateKey()
	assert.NoError(err)
	publicKey := pk.PublicKey()

	publicKeyCopy, err := NewPublicKeyFromBytes(publicKey.SerializeCompressed())
	assert.NoError(err)
	assert.True(publicKey.Equal(publicKeyCopy))

	_, err = NewPublicKeyFromBytes([]byte{0x00, 0x01})
	assert.Error(err)
}

func Test_PublicKey_Equal(t *testing.T) {
	assert := assert.New(t)

	pk1, err := GeneratePrivateKey()
	assert.NoError(err)
	pk2, err := GeneratePrivateKey()
	assert.NoError(err)

	assert.True(pk1.PublicKey().Equal(pk1.PublicKey()))
	assert.False(pk1.PublicKey().Equal(pk2.PublicKey()))
	assert.False(pk1.PublicKey().Equal(nil))
}
