package domain

import (
	"errors"
	"strings"
)

// ErrInvalidDomain is returned when a string cannot be split into a name and a TLD.
var ErrInvalidDomain = errors.New("invalid domain")

// DomainKey identifies a domain by its second-level name and TLD. Keys are
// case-insensitive; constructors always return the lower-case form so two keys
// can be compared with ==.
type DomainKey struct {
	// Name is the label left of the last dot, e.g. "techstartup".
	Name string `json:"domainName"`
	// TLD is the suffix after the last dot without the leading dot, e.g. "com".
	TLD string `json:"tld"`
}

// NewDomainKey normalizes name and tld into a DomainKey.
func NewDomainKey(name, tld string) DomainKey {
	return DomainKey{
		Name: strings.ToLower(strings.TrimSpace(name)),
		TLD:  strings.TrimPrefix(strings.ToLower(strings.TrimSpace(tld)), "."),
	}
}

// ParseDomainKey splits a fully qualified domain such as "Example.COM" on its
// last dot. Anything left of the last dot is treated as the name.
func ParseDomainKey(full string) (DomainKey, error) {
	full = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(full)), ".")
	idx := strings.LastIndex(full, ".")
	if idx <= 0 || idx == len(full)-1 {
		return DomainKey{}, ErrInvalidDomain
	}

	return NewDomainKey(full[:idx], full[idx+1:]), nil
}

// String returns the fully qualified domain, e.g. "techstartup.com".
func (k DomainKey) String() string {
	return k.Name + "." + k.TLD
}

// IsZero reports whether the key is empty.
func (k DomainKey) IsZero() bool {
	return k.Name == "" && k.TLD == ""
}
