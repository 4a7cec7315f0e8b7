package hostname

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/weppos/publicsuffix-go/publicsuffix"
)

const (
	// NoSuffix is reported when no public suffix rule matches.
	NoSuffix = "__NULL__"
	// Invalid is reported when a part cannot be derived.
	Invalid = "__ERROR__"
)

var ipv4Pattern = regexp.MustCompile(`^(25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9])(\.(25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9])){3}$`)

// Domain is the public suffix decomposition of a hostname.
type Domain struct {
	// Suffix is the ICANN registry suffix ("co.uk").
	Suffix string
	// TopDomain is the registrable domain under Suffix ("example.co.uk").
	TopDomain string
	// TopPrivateDomain is the registrable domain when private suffixes
	// ("blogspot.com") count as suffixes too.
	TopPrivateDomain string
}

// Decompose splits h using the bundled public suffix list. Parts that do not
// exist for h are reported as Invalid, a missing registry suffix as NoSuffix.
func Decompose(h string) Domain {
	if !isValidDomainName(h) {
		return Domain{Suffix: Invalid, TopDomain: Invalid, TopPrivateDomain: Invalid}
	}
	d := Domain{Suffix: NoSuffix, TopDomain: Invalid, TopPrivateDomain: Invalid}
	if suffix, top, ok := split(h, true); ok {
		d.Suffix = suffix
		d.TopDomain = top
	}
	if _, top, ok := split(h, false); ok {
		d.TopPrivateDomain = top
	}
	return d
}

// split returns the matched suffix and the registrable domain under it. top
// is Invalid when h is itself a suffix. ok is false when no rule matches.
func split(h string, ignorePrivate bool) (suffix, top string, ok bool) {
	rule := publicsuffix.DefaultList.Find(h, &publicsuffix.FindOptions{IgnorePrivate: ignorePrivate})
	if rule == nil {
		return "", "", false
	}
	parts := rule.Decompose(h)
	if parts[1] == "" {
		return h, Invalid, true
	}
	label := parts[0]
	if i := strings.LastIndex(label, "."); i >= 0 {
		label = label[i+1:]
	}
	return parts[1], label + "." + parts[1], true
}

// isValidDomainName applies the label syntax of domain names: letters,
// digits, hyphens and underscores, no empty labels, no hyphen at either end
// of a label, and a final label that does not start with a digit.
func isValidDomainName(h string) bool {
	h = strings.TrimSuffix(h, ".")
	if h == "" || len(h) > 253 {
		return false
	}
	labels := strings.Split(h, ".")
	for _, label := range labels {
		if label == "" || len(label) > 63 {
			return false
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
		for _, c := range label {
			if !(unicode.IsLetter(c) || unicode.IsDigit(c) || c == '-' || c == '_') {
				return false
			}
		}
	}
	last := labels[len(labels)-1]
	return !unicode.IsDigit([]rune(last)[0])
}

// IsIPv4 reports whether h is a dotted-quad IPv4 address.
func IsIPv4(h string) bool {
	return ipv4Pattern.MatchString(h)
}

// CountDots returns the number of '.' in h.
func CountDots(h string) int {
	return strings.Count(h, ".")
}

// CountDigits returns the number of decimal digits in h.
func CountDigits(h string) int {
	n := 0
	for _, c := range h {
		if unicode.IsDigit(c) {
			n++
		}
	}
	return n
}
