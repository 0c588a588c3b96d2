// Package layout describes how a card is placed on a page: page dimensions,
// margins, grid stroke, typography, and an optional full-bleed background
// image. A layout is declared in an HCL file where every block and attribute
// is optional; omitted values fall back to the compiled-in A4 defaults. The
// HCL evaluation context exposes page-format presets (a4, letter) so a file
// can write `width = letter.width` instead of raw pixel counts.
package layout
