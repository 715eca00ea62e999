package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"emojigen/internal/dataset"
)

// matcher resolves a lowercase codepoint key to an index in the working
// metadata list. Strategies are tried in order, first hit wins:
//
//  1. exact unified codepoint
//  2. non-qualified codepoint
//  3. unified codepoint with ZWJ (200d) and VS16 (fe0f) stripped
//
// Each index is built first-seen, so a key resolves to at most one entry.
type matcher struct {
	strategies []func(key string) (int, bool)
}

func newMatcher(entries []dataset.MetadataEntry) *matcher {
	byUnified := map[string]int{}
	byNonQualified := map[string]int{}
	byNormalized := map[string]int{}
	for i, e := range entries {
		putFirst(byUnified, strings.ToLower(e.Unified), i)
		if e.NonQualified != "" {
			putFirst(byNonQualified, strings.ToLower(e.NonQualified), i)
		}
		putFirst(byNormalized, stripJoiners(strings.ToLower(e.Unified)), i)
	}
	lookup := func(m map[string]int) func(string) (int, bool) {
		return func(key string) (int, bool) {
			i, ok := m[key]
			return i, ok
		}
	}
	return &matcher{strategies: []func(string) (int, bool){
		lookup(byUnified),
		lookup(byNonQualified),
		lookup(byNormalized),
	}}
}

func (m *matcher) find(key string) (int, bool) {
	for _, strategy := range m.strategies {
		if i, ok := strategy(key); ok {
			return i, true
		}
	}
	return 0, false
}

func putFirst(m map[string]int, key string, i int) {
	if _, ok := m[key]; !ok {
		m[key] = i
	}
}

// stripJoiners removes zero-width-joiner and variation-selector-16
// codepoints from a lowercase hyphen-joined sequence.
func stripJoiners(key string) string {
	key = strings.ReplaceAll(key, "-200d", "")
	key = strings.ReplaceAll(key, "-fe0f", "")
	return key
}

// Match resolves every unicode-backed alias group against the metadata list,
// attaching the group's aliases to the matched entry and merging them into
// its short name list. The entries slice is mutated in place; callers pass
// the pipeline's private working copy.
//
// Unmatched groups are collected and reported in one aggregated error naming
// every alias, so a dataset mismatch can be fixed in a single pass.
func Match(entries []dataset.MetadataEntry, c *Classification) error {
	m := newMatcher(entries)

	var notFound []string
	for _, key := range c.SortedCodepoints() {
		aliases := c.Unicode[key]
		i, ok := m.find(key)
		if !ok {
			notFound = append(notFound, aliases...)
			continue
		}
		e := &entries[i]
		e.GitHubShortNames = append(e.GitHubShortNames, aliases...)
		e.ShortNames = mergeNames(e.ShortNames, aliases)
	}
	if len(notFound) > 0 {
		sort.Strings(notFound)
		return fmt.Errorf("match: github aliases missing from the emoji dataset: %s", strings.Join(notFound, ", "))
	}
	return nil
}

// mergeNames unions extra into names, preserving first-seen order.
func mergeNames(names, extra []string) []string {
	seen := make(map[string]bool, len(names)+len(extra))
	out := make([]string, 0, len(names)+len(extra))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	for _, n := range extra {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
