// Package opml renders feed collections as OPML 2.0 documents for import into
// feed readers.
package opml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/pkordes/feedlake/internal/domain"
)

// DefaultTitle is used when Generate is called with an empty title.
const DefaultTitle = "RSS Feeds"

// escaper replaces the five XML metacharacters in a single pass, so entities
// introduced by one replacement are never escaped again.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Escape makes s safe for use as XML text or as a double-quoted attribute value.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Generate returns a complete OPML 2.0 document listing feeds in the given
// order, wrapped in a single "Feeds" outline. It never fails: every
// interpolated value is escaped, and an empty slice yields an empty wrapper.
func Generate(feeds []domain.Feed, title string) string {
	if title == "" {
		title = DefaultTitle
	}

	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<opml version="2.0">` + "\n")
	b.WriteString("  <head>\n")
	fmt.Fprintf(&b, "    <title>%s</title>\n", Escape(title))
	b.WriteString("  </head>\n")
	b.WriteString("  <body>\n")
	b.WriteString(`    <outline text="Feeds" title="Feeds">` + "\n")
	for _, f := range feeds {
		fmt.Fprintf(&b, `      <outline type="%s" xmlUrl="%s" title="%s" text="%s" htmlUrl="%s"/>`+"\n",
			Escape(string(f.Type)),
			Escape(f.XMLURL),
			Escape(f.Title),
			Escape(f.Text),
			Escape(f.HTMLURL),
		)
	}
	b.WriteString("    </outline>\n")
	b.WriteString("  </body>\n")
	b.WriteString("</opml>")
	return b.String()
}

// Document is the parsed form of an OPML file.
type Document struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    struct {
		Title string `xml:"title"`
	} `xml:"head"`
	Body struct {
		Outlines []Outline `xml:"outline"`
	} `xml:"body"`
}

// Outline is a single OPML outline element. Category outlines nest feed
// outlines in Outlines.
type Outline struct {
	Text     string    `xml:"text,attr"`
	Title    string    `xml:"title,attr"`
	Type     string    `xml:"type,attr"`
	XMLURL   string    `xml:"xmlUrl,attr"`
	HTMLURL  string    `xml:"htmlUrl,attr"`
	Outlines []Outline `xml:"outline"`
}

// Parse decodes an OPML document from r.
func Parse(r io.Reader) (Document, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("opml.Parse: %w", err)
	}
	return doc, nil
}
