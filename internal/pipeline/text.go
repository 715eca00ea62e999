package pipeline

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	firstHyphenRe = regexp.MustCompile(`\w-`)
	wordSplitRe   = regexp.MustCompile(`[_|\s]+`)
)

// unifiedToNative renders a hyphen-joined hex codepoint sequence as the
// native unicode character.
func unifiedToNative(unified string) (string, error) {
	parts := strings.Split(unified, "-")
	out := make([]rune, 0, len(parts))
	for _, p := range parts {
		cp, err := strconv.ParseUint(p, 16, 32)
		if err != nil {
			return "", fmt.Errorf("bad codepoint %q in %q: %w", p, unified, err)
		}
		out = append(out, rune(cp))
	}
	return string(out), nil
}

// titleize lowercases, turns underscores into spaces and capitalizes each
// word, the way the display names in the output are spelled.
func titleize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(strings.ToLower(s), "_", " ")
	return cases.Title(language.English).String(s)
}

// stripDiacritics decomposes to NFD and removes combining marks, so "café"
// becomes searchable as "cafe".
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// underscoreFirstHyphen converts the first hyphen that follows a word
// character into an underscore. Only the first: later hyphens are part of
// emoticon-like keywords and stay verbatim.
func underscoreFirstHyphen(s string) string {
	loc := firstHyphenRe.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[1]-1] + "_" + s[loc[1]:]
}

// splitKeyword breaks a normalized keyword into searchable words on
// underscore, pipe and whitespace runs.
func splitKeyword(s string) []string {
	return wordSplitRe.Split(s, -1)
}
