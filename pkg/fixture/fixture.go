// Package fixture locates the lab page and checks that it carries the
// structure the style scenarios query.
package fixture

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultPath is the fixture location relative to the repository root.
const DefaultPath = "lab/index.html"

// ErrMissingSelectors is returned by Validate when the document lacks
// required structure.
var ErrMissingSelectors = errors.New("fixture is missing required elements")

// RequiredSelectors must each match at least one element of the fixture.
var RequiredSelectors = []string{
	".navbar",
	".navbar ul",
	".navbar a",
	"main",
	"section",
	".card",
	".card h2",
	".card p",
	".card img",
	".card-content",
	".card-buttons",
	".btn",
	".btn-primary",
	".btn-secondary",
}

// Locate resolves path to an absolute path of an existing regular file.
func Locate(path string) (string, error) {
	if path == "" {
		path = DefaultPath
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving fixture %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("fixture %s: %w", abs, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("fixture %s is a directory", abs)
	}
	return abs, nil
}

// URL returns the file-scheme URL of an absolute fixture path.
func URL(path string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	if !strings.HasPrefix(u.Path, "/") {
		u.Path = "/" + u.Path
	}
	return u.String()
}

// Validate parses an HTML document and reports every required selector
// that matches nothing.
func Validate(r io.Reader) error {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return fmt.Errorf("parsing fixture: %w", err)
	}
	missing := Missing(doc, RequiredSelectors)
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingSelectors, strings.Join(missing, ", "))
	}
	return nil
}

// ValidateFile runs Validate on the file at path.
func ValidateFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening fixture: %w", err)
	}
	defer f.Close()
	return Validate(f)
}

// Missing returns the selectors with no match in doc, in input order.
func Missing(doc *goquery.Document, selectors []string) []string {
	var out []string
	for _, sel := range selectors {
		if doc.Find(sel).Length() == 0 {
			out = append(out, sel)
		}
	}
	return out
}

// Stylesheets returns the href of every linked stylesheet in document order.
func Stylesheets(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	var hrefs []string
	doc.Find(`link[rel="stylesheet"]`).Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok && href != "" {
			hrefs = append(hrefs, href)
		}
	})
	return hrefs, nil
}
