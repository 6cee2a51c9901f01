package validation

import (
	"net/netip"
	"net/url"
	"strings"
)

// Schemes a browser would execute or read locally instead of navigating.
var unsafeSchemes = map[string]bool{
	"javascript": true,
	"vbscript":   true,
	"data":       true,
	"file":       true,
	"blob":       true,
	"about":      true,
}

// Special-purpose IPv4 ranges not covered by netip's Is* helpers.
var nonPublicPrefixes = []netip.Prefix{
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("192.0.2.0/24"),
	netip.MustParsePrefix("198.18.0.0/15"),
	netip.MustParsePrefix("198.51.100.0/24"),
	netip.MustParsePrefix("203.0.113.0/24"),
}

// URLValidator checks link destinations. Any absolute URL is accepted:
// a scheme followed by a host (https://example.com) or an opaque part
// (mailto:ops@example.com). Literal non-public IP hosts are refused only
// when blockPrivateIPs is set; hostnames are never resolved.
type URLValidator struct {
	maxLength       int
	blockPrivateIPs bool
}

func NewURLValidator(maxLength int, blockPrivateIPs bool) *URLValidator {
	return &URLValidator{
		maxLength:       maxLength,
		blockPrivateIPs: blockPrivateIPs,
	}
}

func (v *URLValidator) ValidateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return ErrEmptyURL
	}
	if v.maxLength > 0 && len(rawURL) > v.maxLength {
		return ErrURLTooLong
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" {
		return ErrInvalidURLFormat
	}
	if unsafeSchemes[strings.ToLower(u.Scheme)] {
		return ErrUnsafeProtocol
	}
	if u.Host == "" && u.Opaque == "" {
		return ErrInvalidURLFormat
	}

	if v.blockPrivateIPs && isNonPublicIP(u.Hostname()) {
		return ErrPrivateIPNotAllowed
	}
	return nil
}

func isNonPublicIP(host string) bool {
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	addr = addr.Unmap()

	if addr.IsPrivate() || addr.IsLoopback() || addr.IsUnspecified() ||
		addr.IsLinkLocalUnicast() || addr.IsLinkLocalMulticast() || addr.IsMulticast() {
		return true
	}
	for _, p := range nonPublicPrefixes {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
