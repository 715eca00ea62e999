// Package pipeline reconciles GitHub's emoji alias table against the bundled
// emoji datasets and produces the two JSON artifacts the picker UI consumes.
//
// The run is a fixed sequence: classify the GitHub table, match
// unicode-backed groups to metadata entries, build output records, assemble
// categories, build the custom set, serialize. Every failure is fatal for
// the whole run; a partially correct dataset would silently degrade the
// picker.
package pipeline

import (
	"sort"

	"github.com/rs/zerolog"

	"emojigen/internal/dataset"
)

// Inputs are the immutable source snapshots for one run. Run never mutates
// them; the metadata table is copied into a private working list first.
type Inputs struct {
	Metadata       []dataset.MetadataEntry
	Names          map[string]dataset.LocaleName
	Keywords       map[string][]string
	CustomKeywords map[string]dataset.CustomKeywords
	GitHubEmojis   map[string]string
}

// Result holds both computed artifacts before serialization.
type Result struct {
	Standard Output
	Custom   CustomOutput
}

// Run executes the full reconciliation pipeline.
func Run(in Inputs, log zerolog.Logger) (*Result, error) {
	working := snapshot(in.Metadata)

	classification, err := Classify(in.GitHubEmojis)
	if err != nil {
		return nil, err
	}
	log.Info().
		Int("unicode_groups", len(classification.Unicode)).
		Int("custom", len(classification.Custom)).
		Msg("classified github emoji table")

	if err := Match(working, classification); err != nil {
		return nil, err
	}

	records, aliases, err := buildRecords(working, in.Names, in.Keywords)
	if err != nil {
		return nil, err
	}
	log.Info().Int("emojis", len(records)).Msg("built emoji records")

	categories, err := assembleCategories(records)
	if err != nil {
		return nil, err
	}

	emojis := make(map[string]Emoji, len(records))
	for _, r := range records {
		emojis[r.emoji.ID] = r.emoji
	}

	custom, err := buildCustom(classification, in.CustomKeywords)
	if err != nil {
		return nil, err
	}
	log.Info().Int("custom_emojis", len(custom.Emojis)).Msg("built custom emoji records")

	return &Result{
		Standard: Output{
			Categories: categories,
			Emojis:     emojis,
			Aliases:    aliases,
			Sheet:      Sheet{Cols: sheetCols, Rows: sheetRows},
		},
		Custom: custom,
	}, nil
}

// snapshot copies the metadata table into a working list ordered by
// sort_order, entries without one last. The shared input stays untouched so
// the pipeline is re-runnable within one process.
func snapshot(entries []dataset.MetadataEntry) []dataset.MetadataEntry {
	working := make([]dataset.MetadataEntry, len(entries))
	copy(working, entries)
	sort.SliceStable(working, func(i, j int) bool {
		a, b := working[i].SortOrder, working[j].SortOrder
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})
	return working
}
