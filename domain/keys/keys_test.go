package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedisKey(t *testing.T) {
	assert.Equal(t, "auctionView:asset-1", RedisKey(PfxAuctionView, "asset-1"))
}

func TestGetPrefix(t *testing.T) {
	cases := []struct {
		key  string
		want string
	}{
		{"plain", ""},
		{"auctionView:asset-1", "auctionView"},
		{"httpCache:auctionView:asset-1", "httpCache:auctionView"},
		{"a:b:c:d", "a:b"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, GetPrefix(c.key), c.key)
	}
}
