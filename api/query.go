package api

import (
	"net/url"
	"sort"
)

// AllowList is the set of query parameter names one operation accepts.
type AllowList map[string]struct{}

// NewAllowList builds an AllowList from keys.
func NewAllowList(keys ...string) AllowList {
	a := make(AllowList, len(keys))
	for _, k := range keys {
		a[k] = struct{}{}
	}
	return a
}

// Pagination is accepted by every listing endpoint.
var Pagination = NewAllowList("index", "limit", "offset")

// Allows reports whether key is in the list
func (a AllowList) Allows(key string) bool {
	_, ok := a[key]
	return ok
}

// EncodeQuery validates params against allow and serializes them as "?k=v&k=v",
// sorted by key and percent-encoded. An empty params yields "". The first unknown
// key (in sorted order) fails the whole call with a KindInvalidParameter error.
func EncodeQuery(allow AllowList, params map[string]string) (string, error) {
	if len(params) == 0 {
		return "", nil
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make(url.Values, len(params))
	for _, k := range keys {
		if !allow.Allows(k) {
			return "", InvalidParameterError("query parameter %q is not allowed", k)
		}
		values.Set(k, params[k])
	}

	return "?" + values.Encode(), nil
}
