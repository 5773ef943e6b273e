// Package repo contains all storage access logic for the Feed Lake directory.
// Feeds live as one JSON file each in a directory; the store reads them once
// and serves the collection read-only for the life of the process.
// No business logic lives here, only decoding and collection access.
package repo

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"slices"

	"github.com/samber/lo"

	"github.com/pkordes/feedlake/internal/domain"
)

// feedExt is the extension of feed descriptor files. Other files are ignored.
const feedExt = ".json"

// FeedRepo defines read access to the loaded feed collection.
// The service layer depends on this interface, not the concrete FeedStore,
// which allows the service to be unit-tested with a mock.
type FeedRepo interface {
	// All returns every feed in load order.
	All() []domain.Feed

	// Tags returns the distinct tags across all feeds, sorted ascending.
	Tags() []string
}

// FeedStore is the file-backed FeedRepo. It is immutable after construction
// and safe for concurrent use.
type FeedStore struct {
	feeds []domain.Feed
}

// NewFeedStore loads every feed file at the root of fsys.
// In production pass os.DirFS(dir) or the embedded data set; in tests pass a
// fstest.MapFS.
func NewFeedStore(fsys fs.FS) (*FeedStore, error) {
	feeds, err := LoadFeeds(fsys)
	if err != nil {
		return nil, err
	}
	return &FeedStore{feeds: feeds}, nil
}

// All returns a copy of the collection so callers cannot reorder the store.
func (s *FeedStore) All() []domain.Feed {
	return slices.Clone(s.feeds)
}

// Tags returns DistinctTags over the whole collection.
func (s *FeedStore) Tags() []string {
	return DistinctTags(s.feeds)
}

// LoadFeeds decodes every *.json file at the root of fsys, in directory
// listing order. Subdirectories are skipped.
// The load is all-or-nothing: the first unreadable or malformed file aborts it
// with an error naming that file.
func LoadFeeds(fsys fs.FS) ([]domain.Feed, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("repo.LoadFeeds: read dir: %w", err)
	}

	feeds := make([]domain.Feed, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != feedExt {
			continue
		}
		f, err := loadFeed(fsys, e.Name())
		if err != nil {
			return nil, fmt.Errorf("repo.LoadFeeds: %w", err)
		}
		feeds = append(feeds, f)
	}
	return feeds, nil
}

// loadFeed reads and decodes a single feed file.
func loadFeed(fsys fs.FS, name string) (domain.Feed, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return domain.Feed{}, fmt.Errorf("read %s: %w", name, err)
	}

	var f domain.Feed
	if err := json.Unmarshal(data, &f); err != nil {
		return domain.Feed{}, fmt.Errorf("decode %s: %w", name, err)
	}
	// A missing "type" never reaches FeedType.UnmarshalText.
	if !f.Type.Valid() {
		return domain.Feed{}, fmt.Errorf("decode %s: %w: missing type", name, domain.ErrInvalidFeed)
	}
	if f.Tags == nil {
		f.Tags = []string{}
	}
	return f, nil
}

// DistinctTags returns the union of every feed's tags, deduplicated and sorted
// lexicographically. Always returns a non-nil slice.
func DistinctTags(feeds []domain.Feed) []string {
	tags := lo.Uniq(lo.FlatMap(feeds, func(f domain.Feed, _ int) []string {
		return f.Tags
	}))
	slices.Sort(tags)
	return tags
}
