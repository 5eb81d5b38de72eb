// Package show turns the JSON printed by "nix flake show --json" into a
// listing of the outputs available on the current platform.
package show

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"flk/internal/logger"
)

// ErrUnexpectedShape is returned when the output is not a single JSON object.
var ErrUnexpectedShape = errors.New("unexpected output shape")

// Category is one top-level flake output (packages, checks, ...) and the
// formatted entries found under it for the current platform.
type Category struct {
	Name    string
	Entries []string
}

// Listing holds categories in the order the tool reported them.
type Listing []Category

var heading = color.New(color.Bold)

// Interpret parses the captured stdout lines of a show invocation and keeps
// the entries of the given platform that carry a "name".
//
// The document is read as category -> platform -> entry -> metadata. Entries
// that are not objects or have no string "name" are skipped without error.
func Interpret(stdout []string, system string) (Listing, error) {
	doc := strings.TrimSpace(strings.Join(stdout, "\n"))

	categories, ok, err := objectMembers([]byte(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: top level is not an object", ErrUnexpectedShape)
	}

	listing := make(Listing, 0, len(categories))
	for _, cat := range categories {
		entries := []string{}

		platforms, _, _ := objectMembers(cat.value)
		for _, platform := range platforms {
			if platform.key != system {
				continue
			}
			items, _, _ := objectMembers(platform.value)
			for _, item := range items {
				name, ok := entryName(item.value)
				if !ok {
					logger.Debug("[DEBUG] Skipping %s.%s.%s: no name\n", cat.key, platform.key, item.key)
					continue
				}
				entries = append(entries, fmt.Sprintf("%s.%s.%s: %s", cat.key, platform.key, item.key, name))
			}
		}

		listing = append(listing, Category{Name: cat.key, Entries: entries})
	}

	return listing, nil
}

// Write prints every category as a heading with its entries indented below.
func (l Listing) Write(w io.Writer) error {
	for _, cat := range l {
		if _, err := heading.Fprintln(w, cat.Name); err != nil {
			return err
		}
		for _, entry := range cat.Entries {
			if _, err := fmt.Fprintf(w, "  %s\n", entry); err != nil {
				return err
			}
		}
	}
	return nil
}
