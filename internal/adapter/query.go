package adapter

import (
	"net/url"
	"strconv"
	"strings"
)

// queryParam is one surviving query-string entry. Pairs are kept in a slice
// rather than url.Values so the encoded string preserves insertion order
// (url.Values sorts keys on Encode).
type queryParam struct {
	key   string
	value string
}

// addParam appends a key/value pair unless the value is empty. Empty values
// are how the filter structs express "not set", so they never reach the
// query string.
func addParam(params []queryParam, key, value string) []queryParam {
	if value == "" {
		return params
	}
	return append(params, queryParam{key: key, value: value})
}

// addIntParam appends a numeric pair unless the value is zero.
func addIntParam(params []queryParam, key string, value int64) []queryParam {
	if value == 0 {
		return params
	}
	return append(params, queryParam{key: key, value: strconv.FormatInt(value, 10)})
}

// encodeParams renders the surviving pairs as a "?k=v&..." suffix with
// standard percent-encoding, or an empty string when nothing survived.
func encodeParams(params []queryParam) string {
	if len(params) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteByte('?')
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}
