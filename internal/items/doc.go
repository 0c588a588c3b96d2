// Package items loads the list of labels a deck is built from. The source is
// plain line-oriented text: one item per line, blank lines ignored, an
// optional "1. " style enumeration prefix stripped. The first item is the
// fixed center of every card; the rest form the pool.
package items
