// Package service contains the business logic for the Feed Lake directory.
// Services derive slugs, enforce collection rules, and select feeds for export.
// No file access lives here; services depend on repo interfaces, not implementations.
package service

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/pkordes/feedlake/internal/domain"
	"github.com/pkordes/feedlake/internal/repo"
	"github.com/pkordes/feedlake/internal/slug"
)

// FeedService serves the feed collection keyed by derived slug.
// Slugs are computed once at construction; the service is read-only afterwards
// and safe for concurrent use.
type FeedService struct {
	feeds []domain.SluggedFeed
	tags  []string
}

// NewFeedService derives a slug for every feed in r.
// Returns domain.ErrSlugCollision if two feeds derive the same slug, since one
// of them would be unreachable by slug.
func NewFeedService(r repo.FeedRepo) (*FeedService, error) {
	all := r.All()
	feeds := make([]domain.SluggedFeed, 0, len(all))
	owners := make(map[string]string, len(all))

	for _, f := range all {
		s := slug.Domain(f.HTMLURL)
		if prev, ok := owners[s]; ok {
			return nil, fmt.Errorf("service.NewFeedService: %w: %q derived from both %s and %s",
				domain.ErrSlugCollision, s, prev, f.HTMLURL)
		}
		owners[s] = f.HTMLURL
		feeds = append(feeds, domain.SluggedFeed{Feed: f, Slug: s})
	}

	return &FeedService{feeds: feeds, tags: r.Tags()}, nil
}

// List returns every feed with its slug, in collection order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *FeedService) List() []domain.SluggedFeed {
	return slices.Clone(s.feeds)
}

// Tags returns the distinct tags across the collection, sorted ascending.
func (s *FeedService) Tags() []string {
	return slices.Clone(s.tags)
}

// GetBySlug returns the feed whose derived slug equals key.
// Returns domain.ErrNotFound if no feed matches.
func (s *FeedService) GetBySlug(key string) (domain.SluggedFeed, error) {
	f, ok := lo.Find(s.feeds, func(f domain.SluggedFeed) bool {
		return f.Slug == key
	})
	if !ok {
		return domain.SluggedFeed{}, fmt.Errorf("service.FeedService.GetBySlug: %q: %w", key, domain.ErrNotFound)
	}
	return f, nil
}

// Select returns the feeds to export, in collection order.
// A nil slugs means no slug filter; otherwise only feeds whose slug is listed
// are kept. A nil tags means no tag filter; otherwise the remaining feeds are
// narrowed to those carrying at least one listed tag.
func (s *FeedService) Select(slugs, tags []string) []domain.Feed {
	selected := s.feeds
	if slugs != nil {
		selected = lo.Filter(selected, func(f domain.SluggedFeed, _ int) bool {
			return lo.Contains(slugs, f.Slug)
		})
	}
	if tags != nil {
		selected = lo.Filter(selected, func(f domain.SluggedFeed, _ int) bool {
			return lo.Some(f.Tags, tags)
		})
	}
	return lo.Map(selected, func(f domain.SluggedFeed, _ int) domain.Feed {
		return f.Feed
	})
}
