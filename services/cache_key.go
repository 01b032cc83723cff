package services

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
)

const (
	listingCacheKeyPrefix = "products_list_"
	categoriesCacheKey    = "categories_dropdown_list"
)

// BuildListingCacheKey derives the cache key for a listing request from every
// raw query parameter. url.Values.Encode sorts by key, so parameter order in
// the request does not matter.
func BuildListingCacheKey(raw url.Values) string {
	sum := md5.Sum([]byte(raw.Encode()))
	return listingCacheKeyPrefix + hex.EncodeToString(sum[:])
}
