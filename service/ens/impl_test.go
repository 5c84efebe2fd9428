package ens

import (
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/goauction/base/ctx"
	"github.com/x-xyz/goauction/domain"
	"github.com/x-xyz/goauction/service/cache"
	"github.com/x-xyz/goauction/service/cache/provider/primitive"
)

const vitalik = domain.Address("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")

type ensSuite struct {
	suite.Suite

	calls  int
	names  map[common.Address]string
	failed error
	im     *impl
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(ensSuite))
}

func (s *ensSuite) SetupTest() {
	s.calls = 0
	s.failed = nil
	s.names = map[common.Address]string{
		common.HexToAddress(string(vitalik)): "vitalik.eth",
	}
	s.im = newWithLookup(func(address common.Address) (string, error) {
		s.calls++
		if s.failed != nil {
			return "", s.failed
		}
		if name, ok := s.names[address]; ok {
			return name, nil
		}
		return "", errors.New("not a resolver")
	}, cache.New(cache.ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   "ens",
		Cache: primitive.NewPrimitive("ens-test", 1),
	}))
}

func (s *ensSuite) TestReverseResolveCaches() {
	c := ctx.Background()
	name, err := s.im.ReverseResolve(c, vitalik)
	s.Require().NoError(err)
	s.Equal("vitalik.eth", name)

	name, err = s.im.ReverseResolve(c, vitalik)
	s.Require().NoError(err)
	s.Equal("vitalik.eth", name)
	s.Equal(1, s.calls)
}

func (s *ensSuite) TestUnregistered() {
	name, err := s.im.ReverseResolve(ctx.Background(), "0x0000000000000000000000000000000000000001")
	s.Require().NoError(err)
	s.Empty(name)
}

func (s *ensSuite) TestDisplayName() {
	c := ctx.Background()
	s.Equal("vitalik.eth", s.im.DisplayName(c, vitalik))
	s.Equal("not-an-address", s.im.DisplayName(c, "not-an-address"))

	s.failed = errors.New("rpc down")
	other := domain.Address("0x0000000000000000000000000000000000000002")
	s.Equal(string(other), s.im.DisplayName(c, other))
}
