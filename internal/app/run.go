package app

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"path/filepath"
	"time"

	"github.com/vk/bingogrid/internal/card"
	"github.com/vk/bingogrid/internal/ctxlog"
	"github.com/vk/bingogrid/internal/fsutil"
	"github.com/vk/bingogrid/internal/items"
	"github.com/vk/bingogrid/internal/layout"
	"github.com/vk/bingogrid/internal/render"
)

// Run executes one full generation pass: load items and layout, generate
// the card set, render each card to its own page file. It is fully
// sequential; a failure leaves any pages already written on disk.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	list, err := items.LoadPath(a.config.ItemsPath)
	if err != nil {
		return err
	}
	a.logger.Info("Items loaded.", "count", len(list), "center", list.Center())

	lay, err := layout.Load(a.config.LayoutPath)
	if err != nil {
		return err
	}
	if a.config.Background != "" {
		lay.Background.Path = a.config.Background
	}

	if err := fsutil.EnsureDir(a.config.OutputDir); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", a.config.OutputDir, err)
	}

	seed := a.config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	a.logger.Debug("PRNG seeded.", "seed", seed)

	results, err := card.GenerateSet(rng, list.Center(), list.Pool(), a.config.Cards, a.config.MaxAttempts)
	if err != nil {
		return fmt.Errorf("failed to generate cards: %w", err)
	}

	pager, err := a.newPager(lay)
	if err != nil {
		return fmt.Errorf("failed to set up renderer: %w", err)
	}
	if closer, ok := pager.(io.Closer); ok {
		defer closer.Close()
	}

	for i, res := range results {
		if res.Outcome == card.DuplicateAccepted {
			a.logger.Warn("Accepted a duplicate card; pool too small for a unique set.",
				"card", i+1, "attempts", res.Attempts)
		}
		path := filepath.Join(a.config.OutputDir, fmt.Sprintf("card-%02d.png", i+1))
		if err := a.renderPage(pager, res.Card, path); err != nil {
			return err
		}
		a.logger.Info("Card written.", "card", i+1, "of", len(results), "path", path)
	}

	a.logger.Info("Run finished.", "cards", len(results), "output_dir", a.config.OutputDir)
	return nil
}

func (a *App) renderPage(pager render.Pager, c card.Card, path string) error {
	if err := pager.NewPage(); err != nil {
		return fmt.Errorf("failed to start page for %s: %w", path, err)
	}
	if err := pager.DrawGrid(c); err != nil {
		return fmt.Errorf("failed to draw grid for %s: %w", path, err)
	}
	if err := pager.Finish(path); err != nil {
		return err
	}
	return nil
}
