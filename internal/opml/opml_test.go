package opml_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/feedlake/internal/domain"
	"github.com/pkordes/feedlake/internal/opml"
)

func feedFixture() domain.Feed {
	return domain.Feed{
		Title:   "Julia Evans",
		Text:    "Julia Evans",
		XMLURL:  "https://jvns.ca/atom.xml",
		HTMLURL: "https://jvns.ca",
		Type:    domain.FeedTypeAtom,
		Tags:    []string{"programming"},
	}
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "&amp;&lt;&gt;&quot;&apos;", opml.Escape(`&<>"'`))
	assert.Equal(t, "&amp;amp;", opml.Escape("&amp;"), "existing entities are escaped exactly once")
	assert.Equal(t, "plain", opml.Escape("plain"))
}

func TestGenerate_EscapesAttributes(t *testing.T) {
	f := domain.Feed{
		Title:   "A & B",
		Text:    "A & B",
		XMLURL:  "http://x/a",
		HTMLURL: "http://x",
		Type:    domain.FeedTypeRSS,
		Tags:    []string{},
	}

	out := opml.Generate([]domain.Feed{f}, opml.DefaultTitle)

	assert.Contains(t, out, `title="A &amp; B"`)
	assert.Contains(t, out, `text="A &amp; B"`)
	assert.NotContains(t, out, "A & B")
}

func TestGenerate_EscapesTitle(t *testing.T) {
	out := opml.Generate(nil, `<Tom's "Feeds">`)

	assert.Contains(t, out, "<title>&lt;Tom&apos;s &quot;Feeds&quot;&gt;</title>")
}

func TestGenerate_DefaultTitle(t *testing.T) {
	doc, err := opml.Parse(strings.NewReader(opml.Generate(nil, "")))

	require.NoError(t, err)
	assert.Equal(t, opml.DefaultTitle, doc.Head.Title)
}

func TestGenerate_Empty(t *testing.T) {
	doc, err := opml.Parse(strings.NewReader(opml.Generate([]domain.Feed{}, opml.DefaultTitle)))

	require.NoError(t, err)
	assert.Equal(t, "2.0", doc.Version)
	require.Len(t, doc.Body.Outlines, 1, "the wrapping outline is always present")
	assert.Equal(t, "Feeds", doc.Body.Outlines[0].Text)
	assert.Empty(t, doc.Body.Outlines[0].Outlines)
}

func TestGenerate_RoundTrip(t *testing.T) {
	hostile := domain.Feed{
		Title:   `Quotes "double" & 'single' <tags>`,
		Text:    "x > y && y < z",
		XMLURL:  "https://example.com/feed?a=1&b=2",
		HTMLURL: "https://example.com/?q=<script>",
		Type:    domain.FeedTypeRSS,
	}
	feeds := []domain.Feed{feedFixture(), hostile}

	doc, err := opml.Parse(strings.NewReader(opml.Generate(feeds, "My Feeds")))

	require.NoError(t, err)
	assert.Equal(t, "My Feeds", doc.Head.Title)
	require.Len(t, doc.Body.Outlines, 1)
	got := doc.Body.Outlines[0].Outlines
	require.Len(t, got, 2)

	// Input order is preserved and every attribute survives escaping.
	for i, want := range feeds {
		assert.Equal(t, string(want.Type), got[i].Type)
		assert.Equal(t, want.XMLURL, got[i].XMLURL)
		assert.Equal(t, want.Title, got[i].Title)
		assert.Equal(t, want.Text, got[i].Text)
		assert.Equal(t, want.HTMLURL, got[i].HTMLURL)
	}
}

func TestGenerate_Framing(t *testing.T) {
	out := opml.Generate([]domain.Feed{feedFixture()}, opml.DefaultTitle)

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`+"\n"+`<opml version="2.0">`))
	assert.True(t, strings.HasSuffix(out, "  </body>\n</opml>"), "no trailing newline after the root element")
}

func TestGenerate_ControlCharactersDoNotPanic(t *testing.T) {
	f := feedFixture()
	f.Title = "bell\x07 nul\x00 tab\t"

	assert.NotPanics(t, func() {
		out := opml.Generate([]domain.Feed{f}, "\x1b[31m")
		assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	})
}
