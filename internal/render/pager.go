package render

import "github.com/vk/bingogrid/internal/card"

// Pager is the page-drawing capability the orchestrator needs: start a
// page, draw one card's grid onto it, and flush the page to a file. One
// card maps to exactly one NewPage/DrawGrid/Finish cycle.
type Pager interface {
	NewPage() error
	DrawGrid(c card.Card) error
	Finish(path string) error
}
