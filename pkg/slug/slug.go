// Copyright (c) 2026 Newsboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug derives topic slugs from display names.
//
// A slug is the topic's primary key and the value of the topic filter on
// GET /api/articles, so it must be stable lowercase ASCII.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var disallowed = regexp.MustCompile(`[^a-z0-9]+`)

func isMark(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// From lowercases name, drops accents and joins the remaining ASCII
// letter/digit runs with single hyphens. "Café Culture!" becomes "cafe-culture".
func From(name string) string {
	// Transformers are stateful, so the chain is built per call.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isMark)), norm.NFC)
	folded, _, err := transform.String(stripMarks, name)
	if err != nil {
		folded = name
	}
	return strings.Trim(disallowed.ReplaceAllString(strings.ToLower(folded), "-"), "-")
}
