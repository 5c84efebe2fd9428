package ethereum

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

func GenerateKey() (*ecdsa.PrivateKey, *ecdsa.PublicKey, error) {
	if privateKey, err := crypto.GenerateKey(); err != nil {
		return nil, nil, err
	} else {
		publicKey := privateKey.Public().(*ecdsa.PublicKey)
		return privateKey, publicKey, nil
	}
}

func IsValidAddress(address string) bool {
	return common.IsHexAddress(address)
}

// SignMessage personal-signs message, as a wallet would
func SignMessage(message []byte, key *ecdsa.PrivateKey) ([]byte, error) {
	return crypto.Sign(accounts.TextHash(message), key)
}
