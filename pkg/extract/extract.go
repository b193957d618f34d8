// Package extract pulls class name tokens out of raw inputs so they can be
// fed to the organizer. It matches strings against simple lexical patterns;
// it does not parse or validate the documents themselves.
package extract

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/classorg/pkg/errors"
	"github.com/arthur-debert/classorg/pkg/logging"
)

var (
	classAttrRE   = regexp.MustCompile(`class(?:Name)?\s*=\s*["']([^"']*)["']`)
	cssSelectorRE = regexp.MustCompile(`\.[a-zA-Z0-9_:@-]+`)
)

// Classes extracts class tokens from class / className attributes in HTML
// or JSX-like markup, in document order, deduplicated on first occurrence.
func Classes(markup string) []string {
	var classes []string
	for _, match := range classAttrRE.FindAllStringSubmatch(markup, -1) {
		classes = append(classes, strings.Fields(match[1])...)
	}
	return dedupe(classes)
}

// ClassesFromCSS extracts class selectors from a stylesheet, in document
// order, deduplicated on first occurrence.
func ClassesFromCSS(css string) []string {
	var classes []string
	for _, match := range cssSelectorRE.FindAllString(css, -1) {
		classes = append(classes, match[1:])
	}
	return dedupe(classes)
}

// ClassesFromFile extracts class tokens from a file, choosing the extractor
// by extension: .css uses the selector extractor, everything else the
// attribute extractor.
func ClassesFromFile(path string) ([]string, error) {
	logger := logging.GetLogger("extract")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputRead, "cannot read input file %s", path)
	}

	var classes []string
	if strings.EqualFold(filepath.Ext(path), ".css") {
		classes = ClassesFromCSS(string(data))
	} else {
		classes = Classes(string(data))
	}

	logger.Debug().
		Str("path", path).
		Int("classes", len(classes)).
		Msg("Extracted classes from file")

	return classes, nil
}

// dedupe removes duplicates while preserving first-occurrence order.
func dedupe(classes []string) []string {
	if classes == nil {
		return nil
	}
	seen := make(map[string]bool, len(classes))
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		if !seen[c] {
			out = append(out, c)
			seen[c] = true
		}
	}
	return out
}
