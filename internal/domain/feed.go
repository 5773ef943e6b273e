// Package domain contains the core data types for the Feed Lake directory.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "fmt"

// FeedType is the syndication format of a feed. Only the two values below are
// part of the on-disk contract.
type FeedType string

const (
	FeedTypeRSS  FeedType = "rss"
	FeedTypeAtom FeedType = "atom"
)

// Valid reports whether t is one of the known feed types.
func (t FeedType) Valid() bool {
	return t == FeedTypeRSS || t == FeedTypeAtom
}

// UnmarshalText rejects any value outside the enumeration, so a feed file with
// an unknown type fails to decode.
func (t *FeedType) UnmarshalText(b []byte) error {
	v := FeedType(b)
	if !v.Valid() {
		return fmt.Errorf("%w: unknown feed type %q", ErrInvalidFeed, string(b))
	}
	*t = v
	return nil
}

// Feed is one subscribable source in the directory.
// Feeds are loaded once at startup and never mutated afterwards.
type Feed struct {
	Title   string   `json:"title"`
	Text    string   `json:"text"`    // OPML text attribute, usually equal to Title
	XMLURL  string   `json:"xmlUrl"`  // machine-readable feed URL
	HTMLURL string   `json:"htmlUrl"` // website URL; the slug is derived from it
	Type    FeedType `json:"type"`
	Tags    []string `json:"tags"`
}

// SluggedFeed is a Feed together with its derived slug.
// The slug is computed from HTMLURL and is never stored on disk.
type SluggedFeed struct {
	Feed
	Slug string `json:"slug"`
}

// ReaderLinks are subscribe links into third-party readers for one feed.
type ReaderLinks struct {
	Feedly    string `json:"feedly"`
	Inoreader string `json:"inoreader"`
	Feed      string `json:"feed"` // feed: protocol URI handled by desktop readers
}
