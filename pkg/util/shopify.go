package util

import "strings"

// gidPrefix is the scheme Shopify uses for composite global IDs,
// e.g. "gid://shopify/Product/8421716312345".
const gidPrefix = "gid://"

// NormalizeProductID accepts either a bare Shopify product id or a composite
// GID and returns the opaque trailing id segment. The id is treated as an
// opaque string; no numeric parsing is performed.
func NormalizeProductID(id string) string {
	id = strings.TrimSpace(id)
	if !strings.HasPrefix(id, gidPrefix) {
		return id
	}
	if i := strings.LastIndex(id, "/"); i >= 0 && i+1 < len(id) {
		return id[i+1:]
	}
	return id
}
