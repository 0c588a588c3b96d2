package render

import (
	"fmt"
	"os"
	"strings"
)

// systemFontCandidates lists well-known sans-serif font locations per
// platform, probed in order when the layout does not name a font.
var systemFontCandidates = []string{
	// Linux
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	// macOS
	"/Library/Fonts/Arial.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	// Windows
	"C:\\Windows\\Fonts\\arial.ttf",
}

// FindSystemFont returns the first existing candidate font path. Labels are
// drawn as text; without any font the pages would come out blank, so a
// missing font is an error rather than a silent degrade.
func FindSystemFont() (string, error) {
	for _, path := range systemFontCandidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no usable font found; set one in the layout file (probed: %s)",
		strings.Join(systemFontCandidates, ", "))
}
