package ethereum

import (
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMsgSignature(t *testing.T) {
	messageTemplate := "this is signature message template %s"
	privateKey, publicKey, err := GenerateKey()
	require.NoError(t, err)
	address := crypto.PubkeyToAddress(*publicKey).Hex()
	message := []byte(fmt.Sprintf(messageTemplate, "123456"))
	signature, err := SignMessage(message, privateKey)
	require.NoError(t, err)

	res, err := ValidateMsgSignature(message, hexutil.Encode(signature), address)
	assert.NoError(t, err)
	assert.True(t, res)

	// incorrect nonce
	res2, err := ValidateMsgSignature([]byte("654321"), hexutil.Encode(signature), address)
	assert.NoError(t, err)
	assert.False(t, res2)

	// incorrect signer
	_, pubKey, err := GenerateKey()
	require.NoError(t, err)
	res3, err := ValidateMsgSignature(message, hexutil.Encode(signature), crypto.PubkeyToAddress(*pubKey).Hex())
	assert.NoError(t, err)
	assert.False(t, res3)
}

func TestValidateMsgSignatureMalformed(t *testing.T) {
	_, err := ValidateMsgSignature([]byte("msg"), "not-hex", "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	assert.Error(t, err)

	_, err = ValidateMsgSignature([]byte("msg"), "0x1234", "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	assert.Error(t, err)

	_, err = ValidateMsgSignature([]byte("msg"), "0x1234", "bob")
	assert.Error(t, err)
}

func TestIsValidAddress(t *testing.T) {
	assert.True(t, IsValidAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"))
	assert.False(t, IsValidAddress("0x123"))
}
