package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/bingogrid/internal/app"
	"github.com/vk/bingogrid/internal/card"
)

// logLevels maps the accepted -log-level values to their slog levels, so
// the rest of the application never re-parses the string form.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("bingogrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
bingogrid - generates unique 5x5 bingo cards from a list of items and
renders each card as one printable PNG page.

Usage:
  bingogrid [options] [ITEMS_PATH]

Arguments:
  ITEMS_PATH
    Path to a line-oriented items file, or a directory of .txt files.
    Each line is one item; a leading "1. " style prefix is stripped.
    The first item becomes the fixed center cell of every card.

Options:
`)
		flagSet.PrintDefaults()
	}

	itemsFlag := flagSet.String("items", "", "Path to the items file or directory.")
	iFlag := flagSet.String("i", "", "Path to the items file or directory (shorthand).")
	cardsFlag := flagSet.Int("cards", 10, "Number of cards to generate.")
	outFlag := flagSet.String("out", "out", "Directory the card pages are written to.")
	layoutFlag := flagSet.String("layout", "", "Path to an optional .hcl page layout file.")
	backgroundFlag := flagSet.String("background", "", "Background image composited behind each page; overrides the layout.")
	seedFlag := flagSet.Uint64("seed", 0, "PRNG seed for reproducible sets. 0 derives one from the clock.")
	maxAttemptsFlag := flagSet.Int("max-attempts", card.DefaultMaxAttempts, "Regeneration attempts per card before accepting a duplicate.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	if *itemsFlag != "" {
		path = *itemsFlag
	} else if *iFlag != "" {
		path = *iFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel, ok := logLevels[strings.ToLower(*logLevelFlag)]
	if !ok {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		ItemsPath:   path,
		LayoutPath:  *layoutFlag,
		OutputDir:   *outFlag,
		Background:  *backgroundFlag,
		Cards:       *cardsFlag,
		Seed:        *seedFlag,
		MaxAttempts: *maxAttemptsFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
