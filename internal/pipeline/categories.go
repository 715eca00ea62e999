package pipeline

import (
	"fmt"
	"sort"
)

// assembleCategories groups built record ids into the fixed category list,
// sorts the flags category and performs the smileys/people merge, producing
// the final eight-category ordering.
func assembleCategories(records []builtRecord) ([]Category, error) {
	index := make(map[string]int, len(categoryTable))
	cats := make([]Category, len(categoryTable))
	for i, def := range categoryTable {
		cats[i] = Category{ID: def.slug, Emojis: []string{}}
		index[def.name] = i
	}

	for _, r := range records {
		i, ok := index[r.category]
		if !ok {
			return nil, fmt.Errorf("categories: %q has unknown category %q", r.emoji.ID, r.category)
		}
		cats[i].Emojis = append(cats[i].Emojis, r.emoji.ID)
	}

	flags := &cats[index["Flags"]]
	sort.Strings(flags.Emojis)

	// Merge "Smileys & Emotion" and "People & Body" into one category.
	// The split index is a positional contract with the upstream dataset
	// ordering (see tables.go).
	smileys := cats[0].Emojis
	people := cats[1].Emojis
	split := smileysSplitIndex
	if split > len(smileys) {
		split = len(smileys)
	}
	merged := Category{ID: "people", Emojis: make([]string, 0, len(smileys)+len(people))}
	merged.Emojis = append(merged.Emojis, smileys[:split]...)
	merged.Emojis = append(merged.Emojis, people...)
	merged.Emojis = append(merged.Emojis, smileys[split:]...)

	out := make([]Category, 0, len(cats)-1)
	out = append(out, merged)
	out = append(out, cats[2:]...)
	return out, nil
}
