// Package slug derives URL-safe identifiers for feeds.
package slug

import (
	"net"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

// space is the ECMAScript whitespace set. RE2's \s alone is ASCII-only and
// misses \v, NBSP, the U+2000 block, U+3000 and the BOM.
const space = `\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}`

var (
	// disallowed matches anything that is not a word character, whitespace or hyphen.
	disallowed = regexp.MustCompile(`[^\w` + space + `-]`)
	// separators matches runs that collapse into a single hyphen.
	separators = regexp.MustCompile(`[` + space + `_-]+`)
)

// hosts converts hostnames to ASCII the way browsers do: UTS #46
// nontransitional mapping without the STD3 character restrictions, so
// underscores and similar survive while IDNs become punycode.
var hosts = idna.New(
	idna.MapForLookup(),
	idna.Transitional(false),
	idna.StrictDomainName(false),
	idna.CheckHyphens(false),
	idna.CheckJoiners(true),
	idna.BidiRule(),
)

// Make turns arbitrary text into a lowercase, hyphen-separated slug.
// The result never starts or ends with a hyphen and may be empty when text
// contains nothing worth keeping (e.g. "!!! ---").
func Make(text string) string {
	s := strings.TrimSpace(strings.ToLower(text))
	s = disallowed.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Domain derives a slug from a website URL: the ASCII hostname without a
// leading "www." label, with dots replaced by hyphens.
// "https://www.example.com/feed" → "example-com",
// "https://bücher.de/" → "xn--bcher-kva-de".
//
// Input without a usable host (e.g. "not a url", which url.Parse accepts as a
// relative path) falls back to Make on the raw input.
func Domain(rawURL string) string {
	host, ok := hostname(rawURL)
	if !ok {
		return Make(rawURL)
	}
	host = strings.TrimPrefix(host, "www.")
	return strings.ReplaceAll(host, ".", "-")
}

// hostname returns the lowercase ASCII host of rawURL.
// url.Parse also rejects bad escapes in the path, query or fragment; those do
// not affect the host, so on failure only scheme://authority is parsed again.
func hostname(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		scheme, rest, found := strings.Cut(rawURL, "://")
		if !found {
			return "", false
		}
		if i := strings.IndexAny(rest, "/?#"); i >= 0 {
			rest = rest[:i]
		}
		if u, err = url.Parse(scheme + "://" + rest); err != nil {
			return "", false
		}
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", false
	}
	if net.ParseIP(host) != nil {
		return host, true
	}
	ascii, err := hosts.ToASCII(host)
	if err != nil || ascii == "" {
		return "", false
	}
	return ascii, true
}
