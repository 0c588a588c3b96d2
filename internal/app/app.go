package app

import (
	"io"
	"log/slog"

	"github.com/vk/bingogrid/internal/layout"
	"github.com/vk/bingogrid/internal/render"
)

// PagerFactory builds the page renderer for a run, once the layout is
// known. Tests inject fakes through it.
type PagerFactory func(lay *layout.Layout) (render.Pager, error)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	newPager PagerFactory
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. A nil pager
// factory selects the real PNG canvas.
func NewApp(outW io.Writer, config *Config, newPager PagerFactory) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	if newPager == nil {
		newPager = func(lay *layout.Layout) (render.Pager, error) {
			return render.NewCanvas(lay)
		}
	}

	return &App{
		outW:     outW,
		logger:   logger,
		config:   config,
		newPager: newPager,
	}
}
