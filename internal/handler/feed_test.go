package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/feedlake/internal/domain"
	"github.com/pkordes/feedlake/internal/handler"
	"github.com/pkordes/feedlake/internal/readers"
	"github.com/pkordes/feedlake/testutil"
)

// mockFeedServicer is a test double for handler.FeedServicer.
// Set only the method fields your test needs.
type mockFeedServicer struct {
	list      func() []domain.SluggedFeed
	tags      func() []string
	getBySlug func(slug string) (domain.SluggedFeed, error)
	sel       func(slugs, tags []string) []domain.Feed
}

func (m *mockFeedServicer) List() []domain.SluggedFeed { return m.list() }
func (m *mockFeedServicer) Tags() []string { return m.tags() }
func (m *mockFeedServicer) GetBySlug(slug string) (domain.SluggedFeed, error) {
	return m.getBySlug(slug)
}
func (m *mockFeedServicer) Select(slugs, tags []string) []domain.Feed {
	return m.sel(slugs, tags)
}

// compile-time check: mockFeedServicer must satisfy handler.FeedServicer.
var _ handler.FeedServicer = (*mockFeedServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mock into a chi router.
// This mirrors how main.go wires it in production.
func newHTTPHandler(svc handler.FeedServicer) http.Handler {
	r := chi.NewRouter()
	handler.NewServer(svc, "RSS Feeds").Register(r)
	return r
}

func sluggedFixture() domain.SluggedFeed {
	return domain.SluggedFeed{
		Feed: testutil.Feed("Julia Evans", "https://jvns.ca", "programming"),
		Slug: "jvns-ca",
	}
}

// ---- GET / -----------------------------------------------------------------

func TestListFeeds_200(t *testing.T) {
	svc := &mockFeedServicer{
		list: func() []domain.SluggedFeed { return []domain.SluggedFeed{sluggedFixture()} },
		tags: func() []string { return []string{"programming"} },
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var body handler.ListFeedsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Feeds, 1)
	assert.Equal(t, sluggedFixture(), body.Feeds[0])
	assert.Equal(t, []string{"programming"}, body.Tags)
}

// TestListFeeds_wireShape pins the JSON field names the front end reads.
func TestListFeeds_wireShape(t *testing.T) {
	svc := &mockFeedServicer{
		list: func() []domain.SluggedFeed { return []domain.SluggedFeed{sluggedFixture()} },
		tags: func() []string { return []string{"programming"} },
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(svc).ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	feeds := body["feeds"].([]any)
	feed := feeds[0].(map[string]any)
	for _, key := range []string{"title", "text", "xmlUrl", "htmlUrl", "type", "tags", "slug"} {
		assert.Contains(t, feed, key)
	}
	assert.Equal(t, "rss", feed["type"])
	assert.Equal(t, "jvns-ca", feed["slug"])
}

// ---- GET /{slug} -----------------------------------------------------------

func TestGetFeed_200(t *testing.T) {
	want := sluggedFixture()
	svc := &mockFeedServicer{
		getBySlug: func(slug string) (domain.SluggedFeed, error) {
			assert.Equal(t, "jvns-ca", slug)
			return want, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/jvns-ca", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body handler.FeedResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, want, body.Feed)
	assert.Equal(t, readers.Links(want.XMLURL), body.Links)
}

func TestGetFeed_404(t *testing.T) {
	svc := &mockFeedServicer{
		getBySlug: func(slug string) (domain.SluggedFeed, error) {
			return domain.SluggedFeed{}, fmt.Errorf("lookup %q: %w", slug, domain.ErrNotFound)
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/nope-com", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "not_found", body.Error.Code)
	assert.Equal(t, "feed not found", body.Error.Message)
}

func TestGetFeed_500_UnexpectedError(t *testing.T) {
	svc := &mockFeedServicer{
		getBySlug: func(string) (domain.SluggedFeed, error) {
			return domain.SluggedFeed{}, errors.New("boom")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/jvns-ca", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}
