package filters

import (
	"net/url"
	"strings"
)

// Param is one key/value pair of a query string.
type Param struct {
	Key   string
	Value string
}

// QueryParams is an ordered multi-map of query parameters. Unlike url.Values
// it keeps insertion order across keys, so Encode is deterministic.
type QueryParams []Param

// Add appends a value for key.
func (q *QueryParams) Add(key, value string) {
	*q = append(*q, Param{Key: key, Value: value})
}

// Set replaces every value of key with value, keeping the position of the
// first occurrence.
func (q *QueryParams) Set(key, value string) {
	out := (*q)[:0]
	replaced := false
	for _, p := range *q {
		if p.Key != key {
			out = append(out, p)
			continue
		}
		if !replaced {
			out = append(out, Param{Key: key, Value: value})
			replaced = true
		}
	}
	if !replaced {
		out = append(out, Param{Key: key, Value: value})
	}
	*q = out
}

// Get returns the first value of key, or "".
func (q QueryParams) Get(key string) string {
	for _, p := range q {
		if p.Key == key {
			return p.Value
		}
	}
	return ""
}

// All returns every value of key in insertion order.
func (q QueryParams) All(key string) []string {
	var vals []string
	for _, p := range q {
		if p.Key == key {
			vals = append(vals, p.Value)
		}
	}
	return vals
}

// Values converts q to url.Values. Per-key order is preserved.
func (q QueryParams) Values() url.Values {
	v := make(url.Values, len(q))
	for _, p := range q {
		v.Add(p.Key, p.Value)
	}
	return v
}

// Encode renders q as a query string in insertion order.
func (q QueryParams) Encode() string {
	var b strings.Builder
	for i, p := range q {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}
