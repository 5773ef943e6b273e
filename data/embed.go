// Package data embeds the curated feed directory so the server can run
// without a data directory on disk.
package data

import (
	"embed"
	"io/fs"
)

//go:embed feeds/*.json
var files embed.FS

// Feeds returns the embedded feed files, rooted at the feeds directory so the
// store sees them at its top level. Pass this to repo.NewFeedStore.
func Feeds() fs.FS {
	sub, err := fs.Sub(files, "feeds")
	if err != nil {
		// fs.Sub only fails on an invalid path, and "feeds" is a constant.
		panic("data.Feeds: " + err.Error())
	}
	return sub
}
