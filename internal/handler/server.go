// Package handler implements the HTTP handlers for the Feed Lake API.
// All handlers are methods on Server. Methods are split into resource files
// (feed.go, opml.go, health.go) but share the same Server struct so they can
// access its dependencies.
package handler

import (
	"github.com/go-chi/chi/v5"

	"github.com/pkordes/feedlake/internal/domain"
)

// FeedServicer defines the feed operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without loading any files.
type FeedServicer interface {
	List() []domain.SluggedFeed
	Tags() []string
	GetBySlug(slug string) (domain.SluggedFeed, error)
	Select(slugs, tags []string) []domain.Feed
}

// Server serves the feed directory and its OPML export.
type Server struct {
	feeds     FeedServicer
	opmlTitle string
}

// NewServer constructs the Server with all its dependencies.
// opmlTitle is the <title> written into exported documents.
func NewServer(feeds FeedServicer, opmlTitle string) *Server {
	return &Server{feeds: feeds, opmlTitle: opmlTitle}
}

// Register mounts every route on r. Static routes take precedence over
// /{slug} in chi's tree regardless of registration order.
func (s *Server) Register(r chi.Router) {
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Get("/api/opml", s.ExportOPML)
	r.Get("/", s.ListFeeds)
	r.Get("/{slug}", s.GetFeed)
}
