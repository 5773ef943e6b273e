package handler

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/feedlake/internal/opml"
)

// opmlFilename is the download name suggested to browsers.
const opmlFilename = "feeds.opml"

// ExportOPML handles GET /api/opml.
// Optional ?slugs= and ?tags= are comma-separated lists; slugs are applied
// first, then tags narrow the result to feeds carrying any listed tag.
// The document is sent as an attachment so browsers download it.
func (s *Server) ExportOPML(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	slugs, err := csvParam(q, "slugs")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, badRequestBody(err.Error()))
		return
	}
	tags, err := csvParam(q, "tags")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, badRequestBody(err.Error()))
		return
	}

	doc := opml.Generate(s.feeds.Select(slugs, tags), s.opmlTitle)

	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", opmlFilename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}

// csvParam binds a comma-separated query parameter (OpenAPI form style,
// explode=false). Only the first occurrence of a repeated parameter is used.
// It returns nil when that value is empty or absent, which callers treat as
// "no filter".
func csvParam(q url.Values, name string) ([]string, error) {
	first := q.Get(name)
	if first == "" {
		return nil, nil
	}
	var out []string
	if err := runtime.BindQueryParameter("form", false, false, name, url.Values{name: {first}}, &out); err != nil {
		return nil, fmt.Errorf("invalid %s parameter: %w", name, err)
	}
	return out, nil
}
