package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/vk/bingogrid/internal/card"
	"github.com/vk/bingogrid/internal/layout"
)

// Canvas renders cards onto PNG pages with the gg drawing context. It holds
// the font and background image for the whole run; each page gets a fresh
// gg context that lives from NewPage until Finish.
type Canvas struct {
	layout     *layout.Layout
	source     *text.FontSource
	face       text.Face
	background *gg.ImageBuf
	dc         *gg.Context
}

var _ Pager = (*Canvas)(nil)

// NewCanvas loads the layout's font and optional background image and
// returns a Canvas ready to produce pages. Close must be called when all
// pages are finished.
func NewCanvas(lay *layout.Layout) (*Canvas, error) {
	fontPath := lay.Text.FontPath
	if fontPath == "" {
		var err error
		fontPath, err = FindSystemFont()
		if err != nil {
			return nil, err
		}
	}
	source, err := text.NewFontSourceFromFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load font %s: %w", fontPath, err)
	}

	var background *gg.ImageBuf
	if lay.Background.Path != "" {
		background, err = gg.LoadImage(lay.Background.Path)
		if err != nil {
			_ = source.Close()
			return nil, fmt.Errorf("failed to load background image %s: %w", lay.Background.Path, err)
		}
	}

	return &Canvas{
		layout:     lay,
		source:     source,
		face:       source.Face(lay.Text.Size),
		background: background,
	}, nil
}

// NewPage starts a fresh page: white fill, then the background image scaled
// full-bleed when one is configured.
func (cv *Canvas) NewPage() error {
	if cv.dc != nil {
		return errors.New("previous page not finished")
	}

	page := cv.layout.Page
	dc := gg.NewContext(page.Width, page.Height)
	dc.ClearWithColor(gg.White)
	if cv.background != nil {
		dc.DrawImageEx(cv.background, gg.DrawImageOptions{
			DstWidth:      float64(page.Width),
			DstHeight:     float64(page.Height),
			Interpolation: gg.InterpBilinear,
			Opacity:       cv.layout.Background.Opacity,
			BlendMode:     gg.BlendNormal,
		})
	}
	dc.SetFont(cv.face)

	cv.dc = dc
	return nil
}

// DrawGrid draws the card's 5x5 grid centered on the current page: free
// cell shade first, then cell borders, then each label wrapped and centered
// inside its cell.
func (cv *Canvas) DrawGrid(c card.Card) error {
	if cv.dc == nil {
		return errors.New("NewPage must be called before DrawGrid")
	}

	geo := pageGeometry(cv.layout.Page)
	grid := cv.layout.Grid

	cv.dc.SetHexColor(grid.FreeCellFill)
	x, y := geo.cellOrigin(card.CenterRow, card.CenterCol)
	cv.dc.DrawRectangle(x, y, geo.cell, geo.cell)
	if err := cv.dc.Fill(); err != nil {
		return fmt.Errorf("failed to fill free cell: %w", err)
	}

	cv.dc.SetHexColor(grid.LineColor)
	cv.dc.SetLineWidth(grid.LineWidth)
	for row := 0; row < card.Size; row++ {
		for col := 0; col < card.Size; col++ {
			x, y := geo.cellOrigin(row, col)
			cv.dc.DrawRectangle(x, y, geo.cell, geo.cell)
		}
	}
	if err := cv.dc.Stroke(); err != nil {
		return fmt.Errorf("failed to stroke grid: %w", err)
	}

	cv.dc.SetHexColor(cv.layout.Text.Color)
	wrapWidth := geo.cell - 2*grid.CellPadding
	for row := 0; row < card.Size; row++ {
		for col := 0; col < card.Size; col++ {
			x, y := geo.cellOrigin(row, col)
			cv.dc.DrawStringWrapped(c[row][col],
				x+geo.cell/2, y+geo.cell/2, 0.5, 0.5,
				wrapWidth, cv.layout.Text.LineSpacing, gg.AlignCenter)
		}
	}
	return nil
}

// Finish writes the current page to path as a PNG and releases it.
func (cv *Canvas) Finish(path string) error {
	if cv.dc == nil {
		return errors.New("no page to finish")
	}

	saveErr := cv.dc.SavePNG(path)
	closeErr := cv.dc.Close()
	cv.dc = nil
	if saveErr != nil {
		return fmt.Errorf("failed to write page %s: %w", path, saveErr)
	}
	return closeErr
}

// Close releases the font and any unfinished page.
func (cv *Canvas) Close() error {
	var dcErr error
	if cv.dc != nil {
		dcErr = cv.dc.Close()
		cv.dc = nil
	}
	if err := cv.source.Close(); err != nil {
		return err
	}
	return dcErr
}

// geometry is the computed placement of the square grid on a page.
type geometry struct {
	originX float64
	originY float64
	cell    float64
}

// pageGeometry centers the largest square grid that fits inside the page
// margins. Cells stay square even on non-square pages.
func pageGeometry(page layout.Page) geometry {
	side := math.Min(float64(page.Width), float64(page.Height)) - 2*page.Margin
	return geometry{
		originX: (float64(page.Width) - side) / 2,
		originY: (float64(page.Height) - side) / 2,
		cell:    side / card.Size,
	}
}

// cellOrigin returns the top-left corner of the cell at (row, col).
func (g geometry) cellOrigin(row, col int) (x, y float64) {
	return g.originX + float64(col)*g.cell, g.originY + float64(row)*g.cell
}
