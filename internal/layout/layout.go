package layout

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Layout is the complete, validated page description handed to the renderer.
type Layout struct {
	Page       Page
	Grid       Grid
	Text       Text
	Background Background
}

// Page describes the output canvas in pixels.
type Page struct {
	Width  int
	Height int
	Margin float64
}

// Grid describes the stroke and fill of the 5x5 cell grid.
type Grid struct {
	LineWidth    float64
	CellPadding  float64
	LineColor    string
	FreeCellFill string
}

// Text describes how cell labels are drawn.
type Text struct {
	FontPath    string
	Size        float64
	LineSpacing float64
	Color       string
}

// Background describes an optional image composited full-bleed beneath the
// grid. An empty path disables it; a missing file at a non-empty path is an
// error at render time.
type Background struct {
	Path    string
	Opacity float64
}

// Default returns the compiled-in layout: A4 portrait at 300dpi with a
// plain black grid and a light grey free cell.
func Default() *Layout {
	return &Layout{
		Page: Page{Width: 2480, Height: 3508, Margin: 150},
		Grid: Grid{
			LineWidth:    3,
			CellPadding:  14,
			LineColor:    "#000000",
			FreeCellFill: "#dddddd",
		},
		Text: Text{
			Size:        34,
			LineSpacing: 1.3,
			Color:       "#000000",
		},
		Background: Background{Opacity: 1.0},
	}
}

// hclLayoutFile mirrors the on-disk structure for decoding. Pointer fields
// distinguish "absent" from zero so partial files merge onto the defaults.
type hclLayoutFile struct {
	Page       *hclPage       `hcl:"page,block"`
	Grid       *hclGrid       `hcl:"grid,block"`
	Text       *hclText       `hcl:"text,block"`
	Background *hclBackground `hcl:"background,block"`
}

type hclPage struct {
	Width  *int     `hcl:"width,optional"`
	Height *int     `hcl:"height,optional"`
	Margin *float64 `hcl:"margin,optional"`
}

type hclGrid struct {
	LineWidth    *float64 `hcl:"line_width,optional"`
	CellPadding  *float64 `hcl:"cell_padding,optional"`
	LineColor    *string  `hcl:"line_color,optional"`
	FreeCellFill *string  `hcl:"free_cell_fill,optional"`
}

type hclText struct {
	FontPath    *string  `hcl:"font,optional"`
	Size        *float64 `hcl:"size,optional"`
	LineSpacing *float64 `hcl:"line_spacing,optional"`
	Color       *string  `hcl:"color,optional"`
}

type hclBackground struct {
	Path    *string  `hcl:"image,optional"`
	Opacity *float64 `hcl:"opacity,optional"`
}

// Load reads and validates a layout file. An empty path returns the
// defaults unchanged.
func Load(path string) (*Layout, error) {
	lay := Default()
	if path == "" {
		return lay, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse layout file %s: %w", path, diags)
	}

	var raw hclLayoutFile
	diags = gohcl.DecodeBody(file.Body, presetContext(), &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode layout file %s: %w", path, diags)
	}

	merge(lay, &raw)
	if err := lay.validate(); err != nil {
		return nil, fmt.Errorf("invalid layout in %s: %w", path, err)
	}
	return lay, nil
}

func merge(lay *Layout, raw *hclLayoutFile) {
	if p := raw.Page; p != nil {
		setInt(&lay.Page.Width, p.Width)
		setInt(&lay.Page.Height, p.Height)
		setFloat(&lay.Page.Margin, p.Margin)
	}
	if g := raw.Grid; g != nil {
		setFloat(&lay.Grid.LineWidth, g.LineWidth)
		setFloat(&lay.Grid.CellPadding, g.CellPadding)
		setString(&lay.Grid.LineColor, g.LineColor)
		setString(&lay.Grid.FreeCellFill, g.FreeCellFill)
	}
	if t := raw.Text; t != nil {
		setString(&lay.Text.FontPath, t.FontPath)
		setFloat(&lay.Text.Size, t.Size)
		setFloat(&lay.Text.LineSpacing, t.LineSpacing)
		setString(&lay.Text.Color, t.Color)
	}
	if b := raw.Background; b != nil {
		setString(&lay.Background.Path, b.Path)
		setFloat(&lay.Background.Opacity, b.Opacity)
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func (l *Layout) validate() error {
	if l.Page.Width < 1 || l.Page.Height < 1 {
		return fmt.Errorf("page dimensions must be positive, got %dx%d", l.Page.Width, l.Page.Height)
	}
	if l.Page.Margin < 0 {
		return fmt.Errorf("page margin must not be negative, got %g", l.Page.Margin)
	}
	shortEdge := min(l.Page.Width, l.Page.Height)
	if 2*l.Page.Margin >= float64(shortEdge) {
		return fmt.Errorf("margin %g leaves no room on a %dpx short edge", l.Page.Margin, shortEdge)
	}
	if l.Grid.LineWidth <= 0 {
		return fmt.Errorf("grid line width must be positive, got %g", l.Grid.LineWidth)
	}
	if l.Grid.CellPadding < 0 {
		return fmt.Errorf("cell padding must not be negative, got %g", l.Grid.CellPadding)
	}
	if l.Text.Size <= 0 {
		return fmt.Errorf("text size must be positive, got %g", l.Text.Size)
	}
	if l.Text.LineSpacing <= 0 {
		return fmt.Errorf("line spacing must be positive, got %g", l.Text.LineSpacing)
	}
	if l.Background.Opacity < 0 || l.Background.Opacity > 1 {
		return fmt.Errorf("background opacity must be within [0,1], got %g", l.Background.Opacity)
	}
	for name, value := range map[string]string{
		"line_color":     l.Grid.LineColor,
		"free_cell_fill": l.Grid.FreeCellFill,
		"text color":     l.Text.Color,
	} {
		if !validHexColor(value) {
			return fmt.Errorf("%s %q is not a hex color like #rrggbb", name, value)
		}
	}
	return nil
}

// validHexColor accepts the #rgb, #rrggbb and #rrggbbaa forms the drawing
// backend understands.
func validHexColor(s string) bool {
	if len(s) == 0 || s[0] != '#' {
		return false
	}
	digits := s[1:]
	switch len(digits) {
	case 3, 6, 8:
	default:
		return false
	}
	for _, r := range digits {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
