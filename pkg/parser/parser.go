// Package parser cleans up handwritten food names into a canonical display
// form. It is a stateless string transform with no dependency on the
// cookbook store.
package parser

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/devdonalds/cookbook/pkg/errors"
)

var (
	// Runs of whitespace, underscores, and hyphens act as word separators.
	separatorRuns = regexp.MustCompile(`[\s_-]+`)

	// Everything that is not an ASCII letter or a space is dropped.
	nonLetters = regexp.MustCompile(`[^A-Za-z ]+`)
)

// ParseName normalizes a handwritten recipe or ingredient name:
//   - runs of whitespace, underscores, or hyphens become a single space
//   - characters other than ASCII letters and spaces are removed
//   - every word is title-cased
//   - surrounding whitespace is trimmed
//
// An input that is empty after cleanup is rejected with INVALID_REQUEST.
func ParseName(raw string) (string, error) {
	cleaned := separatorRuns.ReplaceAllString(raw, " ")
	cleaned = nonLetters.ReplaceAllString(cleaned, "")

	// Casers are stateful transformers, so one is created per call to
	// stay safe under concurrent requests.
	cleaned = strings.TrimSpace(cases.Title(language.English).String(cleaned))

	if cleaned == "" {
		return "", errors.New(errors.ErrCodeInvalidRequest, "name is empty after cleanup")
	}
	return cleaned, nil
}
