// Package identify derives display titles for dumps whose logs carried no
// usable TITLE field.
package identify

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DeriveTitle builds a presentable title from the dump base path: the base
// name with separators collapsed to spaces and title casing applied.
func DeriveTitle(basePath string) string {
	if basePath == "" {
		return "Unknown Disc"
	}
	base := filepath.Base(basePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range base {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return "Unknown Disc"
	}
	return cases.Title(language.Und).String(title)
}
