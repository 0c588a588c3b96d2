package items

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/vk/bingogrid/internal/fsutil"
)

// MinItems is the smallest usable list: one center item plus the 24 pool
// items a single card consumes.
const MinItems = 25

// ValidationError reports an input that cannot produce a single card.
type ValidationError struct {
	Count int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("need at least %d items to fill a card, got %d", MinItems, e.Count)
}

// List is the ordered set of labels parsed from the source.
type List []string

// Center returns the fixed center item, the first label in source order.
func (l List) Center() string {
	return l[0]
}

// Pool returns every label except the center item.
func (l List) Pool() []string {
	return l[1:]
}

// enumPrefix matches a leading "<integer>.<whitespace>" enumeration marker.
// "1.5 things" has no whitespace after the dot and is left alone.
var enumPrefix = regexp.MustCompile(`^\d+\.\s+`)

// Load parses a line-oriented reader into a List. It returns a
// *ValidationError when fewer than MinItems usable labels remain.
func Load(r io.Reader) (List, error) {
	labels, err := parse(r)
	if err != nil {
		return nil, err
	}
	return validate(labels)
}

// LoadPath loads items from a file, or from every .txt file under a
// directory in sorted filename order.
func LoadPath(path string) (List, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read items from %s: %w", path, err)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = fsutil.FindFilesByExtension(path, ".txt")
		if err != nil {
			return nil, fmt.Errorf("failed to scan items directory %s: %w", path, err)
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no .txt files found in %s", path)
		}
	}

	var labels []string
	for _, file := range files {
		fileLabels, err := parseFile(file)
		if err != nil {
			return nil, err
		}
		labels = append(labels, fileLabels...)
	}
	return validate(labels)
}

func parseFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open items file: %w", err)
	}
	defer f.Close()

	labels, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read items file %s: %w", path, err)
	}
	return labels, nil
}

func parse(r io.Reader) ([]string, error) {
	var labels []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		label := normalize(enumPrefix.ReplaceAllString(strings.TrimSpace(scanner.Text()), ""))
		if label == "" {
			continue
		}
		labels = append(labels, label)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return labels, nil
}

func validate(labels []string) (List, error) {
	if len(labels) < MinItems {
		return nil, &ValidationError{Count: len(labels)}
	}
	return List(labels), nil
}

// normalize applies NFKC normalization and collapses internal whitespace so
// that visually identical labels compare equal in uniqueness keys.
func normalize(s string) string {
	fields := strings.Fields(norm.NFKC.String(s))
	return strings.Join(fields, " ")
}
