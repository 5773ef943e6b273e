package domain

import "errors"

// ErrNotFound is returned by service functions when no feed matches the
// requested slug.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrInvalidFeed is returned while loading when a feed file does not match
// the Feed shape (e.g. an unknown type).
var ErrInvalidFeed = errors.New("invalid feed")

// ErrSlugCollision is returned when two feeds derive the same slug.
// It is fatal at startup: the data set must be fixed.
var ErrSlugCollision = errors.New("slug collision")
