package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"emojigen/internal/dataset"
)

// builtRecord pairs an output record with the raw category it belongs to;
// the assembler resolves the category afterwards.
type builtRecord struct {
	emoji    Emoji
	category string
}

// buildRecords derives the canonical output record for every matched,
// non-Component metadata entry, in working-list order. The returned alias
// table maps every secondary alias to its record id and is guaranteed to be
// a function: a conflicting double registration is an error.
func buildRecords(entries []dataset.MetadataEntry, names map[string]dataset.LocaleName, keywords map[string][]string) ([]builtRecord, map[string]string, error) {
	records := make([]builtRecord, 0, len(entries))
	aliases := map[string]string{}

	for i := range entries {
		e := &entries[i]
		if len(e.GitHubShortNames) == 0 {
			// Not part of GitHub's emoji set.
			continue
		}
		if e.Category == componentCategory {
			// Skin-tone components only feed the skins of other entries.
			continue
		}
		if e.Category == "" {
			return nil, nil, fmt.Errorf("build: %q has no category", e.ShortName)
		}

		native, err := unifiedToNative(e.Unified)
		if err != nil {
			return nil, nil, fmt.Errorf("build: %q: %w", e.ShortName, err)
		}

		name, err := displayName(e, names[native].Name)
		if err != nil {
			return nil, nil, err
		}

		ids := aliasList(e)
		id := ids[0]
		for _, alias := range ids[1:] {
			if prev, ok := aliases[alias]; ok && prev != id {
				return nil, nil, fmt.Errorf("build: alias %q maps to both %q and %q", alias, prev, id)
			}
			aliases[alias] = id
		}

		skins, err := buildSkins(e)
		if err != nil {
			return nil, nil, fmt.Errorf("build: %q: %w", e.ShortName, err)
		}

		version, err := strconv.ParseFloat(e.AddedIn, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("build: %q has unparseable added_in %q", e.ShortName, e.AddedIn)
		}
		if version < 1 {
			// 0 and fractional placeholders mean "always available".
			version = 1
		}

		records = append(records, builtRecord{
			emoji: Emoji{
				ID:        id,
				Name:      name,
				Emoticons: buildEmoticons(e, id),
				Keywords:  buildKeywords(ids, keywords[native], name),
				Skins:     skins,
				Version:   version,
			},
			category: e.Category,
		})
	}
	return records, aliases, nil
}

// displayName title-cases the dataset name, falling back to the short name
// with hyphens as spaces. A strictly shorter locale-derived name wins unless
// the name carries a colon qualifier (e.g. "Keycap: *").
func displayName(e *dataset.MetadataEntry, localeName string) (string, error) {
	raw := e.Name
	if raw == "" {
		raw = strings.ReplaceAll(e.ShortName, "-", " ")
	}
	name := titleize(raw)
	alt := titleize(localeName)
	if !strings.Contains(name, ":") && alt != "" && len(alt) < len(name) {
		name = alt
	}
	if name == "" {
		return "", fmt.Errorf("build: %q has no display name", e.ShortName)
	}
	return name, nil
}

// aliasList orders the entry's aliases: the dataset short name is ensured to
// be present, then the GitHub-preferred alias is moved to the front with a
// stable move. The first element becomes the record id.
func aliasList(e *dataset.MetadataEntry) []string {
	ids := make([]string, 0, len(e.ShortNames)+1)
	ids = append(ids, e.ShortNames...)
	if !contains(ids, e.ShortName) {
		ids = append([]string{e.ShortName}, ids...)
	}
	return moveToFront(ids, e.GitHubShortNames[0])
}

// buildEmoticons orders the entry's emoticons with the preferred text form
// moved to the front under the same stable move as aliasList.
func buildEmoticons(e *dataset.MetadataEntry, id string) []string {
	emoticons := append([]string{}, e.Texts...)
	if e.Text != "" {
		emoticons = moveToFront(emoticons, e.Text)
	}
	// The dataset ships expressionless without its obvious emoticon.
	if id == "expressionless" && !contains(emoticons, "-_-") {
		emoticons = append(emoticons, "-_-")
	}
	if len(emoticons) == 0 {
		return nil
	}
	return emoticons
}

// buildKeywords makes the record searchable: all aliases plus the emojilib
// words for the native character, substituted, diacritic-stripped, split into
// words, deduplicated first-seen, minus any word already in the display name.
func buildKeywords(ids, libWords []string, name string) []string {
	nameTokens := map[string]bool{}
	for _, tok := range strings.Fields(strings.ToLower(name)) {
		nameTokens[tok] = true
	}

	seen := map[string]bool{}
	out := []string{}
	for _, word := range append(append([]string{}, ids...), libWords...) {
		if sub, ok := keywordSubstitutes[word]; ok {
			word = sub
		}
		word = stripDiacritics(word)
		word = underscoreFirstHyphen(word)
		for _, part := range splitKeyword(word) {
			if part == "" || seen[part] {
				continue
			}
			if nameTokens[strings.ToLower(part)] {
				continue
			}
			seen[part] = true
			out = append(out, part)
		}
	}
	return out
}

// buildSkins emits the fixed six-slot skin list: base tone first, then one
// slot per Fitzpatrick modifier. A tone the dataset lacks is nil, never
// skipped, since the slot index is the tone identity.
func buildSkins(e *dataset.MetadataEntry) ([]*Skin, error) {
	skins := make([]*Skin, 0, len(skinTones)+1)
	base, err := skinFromUnified(e.Unified)
	if err != nil {
		return nil, err
	}
	skins = append(skins, base)
	for _, tone := range skinTones {
		variation, ok := e.SkinVariations[tone]
		if !ok {
			variation, ok = e.SkinVariations[tone+"-"+tone]
		}
		if !ok {
			skins = append(skins, nil)
			continue
		}
		s, err := skinFromUnified(variation.Unified)
		if err != nil {
			return nil, err
		}
		skins = append(skins, s)
	}
	return skins, nil
}

func skinFromUnified(unified string) (*Skin, error) {
	native, err := unifiedToNative(unified)
	if err != nil {
		return nil, err
	}
	return &Skin{Unified: strings.ToLower(unified), Native: native}, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// moveToFront moves s to the head of list, preserving the relative order of
// the rest. s is prepended when absent.
func moveToFront(list []string, s string) []string {
	out := make([]string, 0, len(list)+1)
	out = append(out, s)
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
