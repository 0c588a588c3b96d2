// Package card generates 5x5 bingo grids. Every card carries the fixed
// center item at (2,2) and 24 distinct pool items placed row-major in
// shuffle order. A set of cards is kept composition-unique on a best-effort
// basis: candidates colliding with an already accepted card are regenerated
// up to a caller-chosen attempt cap, after which the duplicate is accepted
// and tagged so callers can surface a warning.
package card
