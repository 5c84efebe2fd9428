package keys

import (
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxAuctionView is used for prefixing cached auction views
	PfxAuctionView = "auctionView"
	// PfxFloorNotice marks auctions whose floor has already been announced
	PfxFloorNotice = "floorNotice"
	// PfxEns is used for prefixing ens lookups
	PfxEns = "ens"
	// PfxHttpCache is used by the http cache middleware
	PfxHttpCache = "httpCache"
)

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix extracts the prefix of a key, at most its first two components
func GetPrefix(key string) string {
	s := strings.Split(key, ":")
	switch {
	case len(s) > 2:
		return strings.Join(s[:2], ":")
	case len(s) > 1:
		return s[0]
	}
	return ""
}
