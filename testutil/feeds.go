// Package testutil provides shared fixtures for feed tests.
package testutil

import (
	"encoding/json"
	"testing"
	"testing/fstest"

	"github.com/pkordes/feedlake/internal/domain"
)

// Feed returns an RSS feed fixture for the given website URL. XMLURL is the
// website URL with "/feed.xml" appended; Title and Text are equal.
func Feed(title, htmlURL string, tags ...string) domain.Feed {
	if tags == nil {
		tags = []string{}
	}
	return domain.Feed{
		Title:   title,
		Text:    title,
		XMLURL:  htmlURL + "/feed.xml",
		HTMLURL: htmlURL,
		Type:    domain.FeedTypeRSS,
		Tags:    tags,
	}
}

// FeedFS encodes each feed as a JSON file in an in-memory filesystem. The map
// key is the file name, e.g. "jvns.json".
func FeedFS(t *testing.T, feeds map[string]domain.Feed) fstest.MapFS {
	t.Helper()

	fsys := fstest.MapFS{}
	for name, f := range feeds {
		data, err := json.Marshal(f)
		if err != nil {
			t.Fatalf("testutil.FeedFS: marshal %s: %v", name, err)
		}
		fsys[name] = &fstest.MapFile{Data: data}
	}
	return fsys
}
