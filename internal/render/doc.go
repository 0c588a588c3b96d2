// Package render turns generated cards into printable pages. The drawing
// itself is delegated to the gg 2D canvas; this package owns page geometry,
// the one-card-per-page lifecycle, and output file writing. Callers depend
// on the Pager interface so tests can swap in a recording fake.
package render
