package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/pkordes/feedlake/internal/domain"
	"github.com/pkordes/feedlake/internal/readers"
)

// ListFeedsResponse is the page data for the directory index.
type ListFeedsResponse struct {
	Feeds []domain.SluggedFeed `json:"feeds"`
	Tags  []string             `json:"tags"`
}

// FeedResponse is the page data for a single feed.
type FeedResponse struct {
	Feed  domain.SluggedFeed `json:"feed"`
	Links domain.ReaderLinks `json:"links"`
}

// ListFeeds handles GET /.
// It returns every feed with its slug, plus the distinct tags for filtering.
func (s *Server) ListFeeds(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, ListFeedsResponse{
		Feeds: s.feeds.List(),
		Tags:  s.feeds.Tags(),
	})
}

// GetFeed handles GET /{slug}.
// Reader links are built from the feed's XML URL.
func (s *Server) GetFeed(w http.ResponseWriter, r *http.Request) {
	feed, err := s.feeds.GetBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, notFoundBody("feed not found"))
			return
		}
		slog.ErrorContext(r.Context(), "get feed", "error", err)
		writeError(w, r, http.StatusInternalServerError, internalBody())
		return
	}

	render.JSON(w, r, FeedResponse{
		Feed:  feed,
		Links: readers.Links(feed.XMLURL),
	})
}
