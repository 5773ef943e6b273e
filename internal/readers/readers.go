// Package readers builds subscribe links into third-party feed readers.
package readers

import (
	"strings"

	"github.com/pkordes/feedlake/internal/domain"
)

const (
	feedlyPrefix    = "https://feedly.com/i/subscription/feed/"
	inoreaderPrefix = "https://www.inoreader.com/feed/"
)

// FeedlyURL returns the Feedly subscription page for feedURL.
func FeedlyURL(feedURL string) string {
	return feedlyPrefix + EncodeComponent(feedURL)
}

// InoreaderURL returns the Inoreader subscription page for feedURL.
func InoreaderURL(feedURL string) string {
	return inoreaderPrefix + EncodeComponent(feedURL)
}

// FeedProtocolURL rewrites a leading "http:" or "https:" scheme to "feed:".
// Any other input is returned unchanged.
func FeedProtocolURL(feedURL string) string {
	for _, scheme := range []string{"https:", "http:"} {
		if rest, ok := strings.CutPrefix(feedURL, scheme); ok {
			return "feed:" + rest
		}
	}
	return feedURL
}

// Links bundles every reader link for feedURL.
func Links(feedURL string) domain.ReaderLinks {
	return domain.ReaderLinks{
		Feedly:    FeedlyURL(feedURL),
		Inoreader: InoreaderURL(feedURL),
		Feed:      FeedProtocolURL(feedURL),
	}
}

const upperhex = "0123456789ABCDEF"

// EncodeComponent percent-encodes s as a single URI component, escaping every
// byte except ASCII letters, digits and -_.!~*'().
// Spaces are written as %20, never "+".
func EncodeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
