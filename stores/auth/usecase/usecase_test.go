package usecase_test

import (
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/base/ethereum"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/domain/mocks"
	"github.com/x-xyz/goauction/stores/auth/usecase"
)

const template = "Sign in to goauction, nonce: %s"

func TestSignAndParseToken(t *testing.T) {
	key, pub, err := ethereum.GenerateKey()
	require.NoError(t, err)
	address := domain.Address(crypto.PubkeyToAddress(*pub).Hex())

	repo := &mocks.AuthNonceRepo{}
	repo.On("FindOne", mock.Anything, address).Return(&domain.AuthNonce{Address: address.ToLower(), Nonce: "n1"}, nil).Once()
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(n *domain.AuthNonce) bool {
		return n.Address == address.ToLower() && n.Nonce != "n1"
	})).Return(nil).Once()

	sig, err := ethereum.SignMessage([]byte(fmt.Sprintf(template, "n1")), key)
	require.NoError(t, err)

	c := ctx.Background()
	u := usecase.New("jwt-secret", template, repo)
	tkn, err := u.SignToken(c, address, hexutil.Encode(sig))
	require.NoError(t, err)
	assert.NotEmpty(t, tkn)

	ads, err := u.ParseToken(c, tkn)
	assert.NoError(t, err)
	assert.Equal(t, address.ToLowerStr(), ads)
	repo.AssertExpectations(t)
}

func TestSignTokenRejectsWrongNonce(t *testing.T) {
	key, pub, err := ethereum.GenerateKey()
	require.NoError(t, err)
	address := domain.Address(crypto.PubkeyToAddress(*pub).Hex())

	repo := &mocks.AuthNonceRepo{}
	repo.On("FindOne", mock.Anything, address).Return(&domain.AuthNonce{Nonce: "n2"}, nil).Once()

	sig, err := ethereum.SignMessage([]byte(fmt.Sprintf(template, "n1")), key)
	require.NoError(t, err)

	_, err = usecase.New("jwt-secret", template, repo).SignToken(ctx.Background(), address, hexutil.Encode(sig))
	assert.Equal(t, domain.ErrInvalidSignature, err)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestSignTokenWithoutNonce(t *testing.T) {
	address := domain.Address("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	repo := &mocks.AuthNonceRepo{}
	repo.On("FindOne", mock.Anything, address).Return(nil, domain.ErrNotFound).Once()

	_, err := usecase.New("jwt-secret", template, repo).SignToken(ctx.Background(), address, "0x00")
	assert.Equal(t, domain.ErrInvalidSignature, err)
}

func TestGetNonce(t *testing.T) {
	address := domain.Address("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	repo := &mocks.AuthNonceRepo{}
	repo.On("FindOne", mock.Anything, address).Return(nil, domain.ErrNotFound).Once()
	repo.On("Upsert", mock.Anything, mock.Anything).Return(nil).Once()

	u := usecase.New("jwt-secret", template, repo)
	nonce, err := u.GetNonce(ctx.Background(), address)
	assert.NoError(t, err)
	assert.NotEmpty(t, nonce)

	repo.On("FindOne", mock.Anything, address).Return(&domain.AuthNonce{Nonce: nonce}, nil).Once()
	again, err := u.GetNonce(ctx.Background(), address)
	assert.NoError(t, err)
	assert.Equal(t, nonce, again)

	_, err = u.GetNonce(ctx.Background(), "bob")
	assert.Equal(t, domain.ErrInvalidAddress, err)
	repo.AssertExpectations(t)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := usecase.New("jwt-secret", template, &mocks.AuthNonceRepo{}).ParseToken(ctx.Background(), "not.a.token")
	assert.Error(t, err)
}
