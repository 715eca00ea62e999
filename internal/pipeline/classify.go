package pipeline

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// unicodeImageRe extracts the codepoint segment from a GitHub emoji image
// URL. Grammar: .../unicode/<HEX>(-<HEX>)*.png, optionally followed by a
// cache-busting query. Anything else is a custom emoji image.
var unicodeImageRe = regexp.MustCompile(`/unicode/([0-9a-fA-F]+(?:-[0-9a-fA-F]+)*)\.png`)

// Classification is the total partition of the GitHub alias table.
type Classification struct {
	// Unicode groups aliases by the lowercase codepoint extracted from
	// their image URL. One codepoint may back several synonym aliases.
	Unicode map[string][]string
	// Custom maps aliases with no unicode backing to their image URL.
	Custom map[string]string
}

// ExtractCodepoint parses the unicode codepoint out of an emoji image URL,
// lowercased. ok is false for custom (non-unicode) image URLs.
func ExtractCodepoint(url string) (codepoint string, ok bool) {
	m := unicodeImageRe.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return strings.ToLower(m[1]), true
}

// Classify partitions the raw alias table into unicode-backed groups and
// custom entries, then verifies the partition is exhaustive. Aliases are
// processed in lexicographic order so group contents are deterministic.
func Classify(raw map[string]string) (*Classification, error) {
	aliases := make([]string, 0, len(raw))
	for alias := range raw {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	c := &Classification{
		Unicode: map[string][]string{},
		Custom:  map[string]string{},
	}
	for _, alias := range aliases {
		url := raw[alias]
		if key, ok := ExtractCodepoint(url); ok {
			c.Unicode[key] = append(c.Unicode[key], alias)
			continue
		}
		if _, dup := c.Custom[alias]; dup {
			return nil, fmt.Errorf("classify: duplicate custom emoji key %q", alias)
		}
		c.Custom[alias] = url
	}

	grouped := 0
	for _, group := range c.Unicode {
		grouped += len(group)
	}
	if grouped+len(c.Custom) != len(raw) {
		return nil, fmt.Errorf("classify: partition dropped entries: %d unicode + %d custom != %d input",
			grouped, len(c.Custom), len(raw))
	}
	return c, nil
}

// SortedCodepoints returns the unicode group keys in lexicographic order.
func (c *Classification) SortedCodepoints() []string {
	keys := make([]string, 0, len(c.Unicode))
	for key := range c.Unicode {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// SortedCustomAliases returns the custom alias names in lexicographic order.
func (c *Classification) SortedCustomAliases() []string {
	aliases := make([]string, 0, len(c.Custom))
	for alias := range c.Custom {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}
