package config

import (
	"fmt"
	"net/netip"
	"net/url"
	"strings"
)

const (
	MinHashKeyLength = 32
	BlockKeyLength   = 32
)

func validateURL(urlStr, fieldName string) error {
	if urlStr == "" {
		return fmt.Errorf("%s is required", fieldName)
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", fieldName, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s must have http or https scheme", fieldName)
	}

	return nil
}

// TrustedProxyPrefixes parses server.trusted_proxies. A bare address is
// treated as a single-host prefix.
func (s ServerConfig) TrustedProxyPrefixes() ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(s.TrustedProxies))
	for _, entry := range s.TrustedProxies {
		entry = strings.TrimSpace(entry)
		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, fmt.Errorf("server.trusted_proxies: invalid CIDR %q: %w", entry, err)
			}
			prefixes = append(prefixes, prefix.Masked())
			continue
		}

		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("server.trusted_proxies: invalid address %q: %w", entry, err)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

// KeyPairs returns the hash/block key pairs in rotation order, current keys first.
func (s SessionConfig) KeyPairs() [][]byte {
	pairs := [][]byte{[]byte(s.HashKey), []byte(s.BlockKey)}
	for _, keys := range s.PreviousKeys {
		pairs = append(pairs, []byte(keys.HashKey), []byte(keys.BlockKey))
	}
	return pairs
}
