package redmine

import (
	"net/url"
	"strconv"
	"strings"
)

// Params is an ordered mapping of query-parameter name to scalar value.
// Encoding preserves insertion order, matching the request shape Redmine
// documents; keys are never canonicalized or sorted.
type Params struct {
	pairs []paramPair
}

type paramPair struct {
	key   string
	value string
}

// NewParams creates an empty parameter set.
func NewParams() *Params {
	return &Params{}
}

// Set stores a value under key, replacing an existing value in place so the
// original insertion position is kept.
func (p *Params) Set(key, value string) *Params {
	for i := range p.pairs {
		if p.pairs[i].key == key {
			p.pairs[i].value = value

			return p
		}
	}

	p.pairs = append(p.pairs, paramPair{key: key, value: value})

	return p
}

// SetInt stores an integer value under key.
func (p *Params) SetInt(key string, value int) *Params {
	return p.Set(key, strconv.Itoa(value))
}

// Get returns the value stored under key, or "" when absent.
func (p *Params) Get(key string) string {
	for _, pair := range p.pairs {
		if pair.key == key {
			return pair.value
		}
	}

	return ""
}

// Has reports whether key is present.
func (p *Params) Has(key string) bool {
	for _, pair := range p.pairs {
		if pair.key == key {
			return true
		}
	}

	return false
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}

	return len(p.pairs)
}

// Clone returns an independent copy; the receiver may be nil.
func (p *Params) Clone() *Params {
	clone := &Params{}
	if p != nil {
		clone.pairs = append(clone.pairs, p.pairs...)
	}

	return clone
}

// Encode renders the parameters as a URL-encoded query string in insertion
// order.
func (p *Params) Encode() string {
	if p == nil || len(p.pairs) == 0 {
		return ""
	}

	var builder strings.Builder

	for i, pair := range p.pairs {
		if i > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(url.QueryEscape(pair.key))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(pair.value))
	}

	return builder.String()
}
