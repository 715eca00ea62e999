// Package dataset loads the bundled emoji inputs the generator reconciles:
// the emoji-datasource metadata table, the unicode emoji name table, the
// emojilib keyword table and the custom-emoji keyword annotations.
package dataset

import (
	"encoding/json"
	"fmt"

	"emojigen/internal/safeio"
)

// Default file names under the data directory.
const (
	MetadataFile       = "emoji_datasource.json"
	NamesFile          = "unicode_emoji_names.json"
	KeywordsFile       = "emojilib.json"
	CustomKeywordsFile = "custom_emoji_keywords.json"
)

// SkinVariation is one skin-tone variant nested inside a MetadataEntry,
// keyed by the tone modifier codepoint (or the doubled modifier for
// two-handed emoji).
type SkinVariation struct {
	Unified      string `json:"unified"`
	NonQualified string `json:"non_qualified"`
	Image        string `json:"image"`
	SheetX       int    `json:"sheet_x"`
	SheetY       int    `json:"sheet_y"`
	AddedIn      string `json:"added_in"`
}

// MetadataEntry is one row of the emoji-datasource table. Unified is the
// hyphen-joined uppercase hex codepoint sequence; NonQualified is the
// variant without variation selectors when one exists.
type MetadataEntry struct {
	Name           string                   `json:"name"`
	Unified        string                   `json:"unified"`
	NonQualified   string                   `json:"non_qualified"`
	ShortName      string                   `json:"short_name"`
	ShortNames     []string                 `json:"short_names"`
	Text           string                   `json:"text"`
	Texts          []string                 `json:"texts"`
	Category       string                   `json:"category"`
	SortOrder      *int                     `json:"sort_order"`
	AddedIn        string                   `json:"added_in"`
	SheetX         int                      `json:"sheet_x"`
	SheetY         int                      `json:"sheet_y"`
	SkinVariations map[string]SkinVariation `json:"skin_variations"`

	// GitHubShortNames is attached by the matcher: every GitHub alias whose
	// image URL resolves to this entry's codepoint, first one preferred as
	// the display id. Never read from the bundled file.
	GitHubShortNames []string `json:"-"`
}

// LocaleName is one unicode-emoji-json record, keyed in its table by the
// rendered native character.
type LocaleName struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Group string `json:"group"`
}

// CustomKeywords annotates one GitHub custom emoji alias with search terms.
type CustomKeywords struct {
	Keywords []string `json:"keywords"`
}

// LoadMetadata reads the emoji-datasource table.
func LoadMetadata(fs *safeio.SafeFS, name string) ([]MetadataEntry, error) {
	var entries []MetadataEntry
	if err := readJSON(fs, name, &entries); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("dataset: %s contains no entries", name)
	}
	return entries, nil
}

// LoadNames reads the native-character to localized-name table.
func LoadNames(fs *safeio.SafeFS, name string) (map[string]LocaleName, error) {
	names := map[string]LocaleName{}
	if err := readJSON(fs, name, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// LoadKeywords reads the emojilib native-character to keyword-list table.
func LoadKeywords(fs *safeio.SafeFS, name string) (map[string][]string, error) {
	keywords := map[string][]string{}
	if err := readJSON(fs, name, &keywords); err != nil {
		return nil, err
	}
	return keywords, nil
}

// LoadCustomKeywords reads the required custom-emoji annotation table.
func LoadCustomKeywords(fs *safeio.SafeFS, name string) (map[string]CustomKeywords, error) {
	annotations := map[string]CustomKeywords{}
	if err := readJSON(fs, name, &annotations); err != nil {
		return nil, err
	}
	return annotations, nil
}

func readJSON(fs *safeio.SafeFS, name string, v any) error {
	b, err := fs.SafeReadFile(name)
	if err != nil {
		return fmt.Errorf("dataset: read %s: %w", name, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("dataset: decode %s: %w", name, err)
	}
	return nil
}
