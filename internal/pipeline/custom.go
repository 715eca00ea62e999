package pipeline

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"emojigen/internal/dataset"
)

// buildCustom converts the custom partition into the GitHub custom emoji
// set. Every alias must be annotated in the keyword table: shipping an
// unsearchable custom emoji is a hard error, reported for all aliases at
// once.
func buildCustom(c *Classification, annotations map[string]dataset.CustomKeywords) (CustomOutput, error) {
	out := CustomOutput{ID: "github", Name: "GitHub", Emojis: []CustomEmoji{}}

	var missing []string
	for _, alias := range c.SortedCustomAliases() {
		ann, ok := annotations[alias]
		if !ok || len(ann.Keywords) == 0 {
			missing = append(missing, alias)
			continue
		}
		out.Emojis = append(out.Emojis, CustomEmoji{
			ID:       alias,
			Name:     capitalize(alias),
			Keywords: ann.Keywords,
			Skins:    []CustomSkin{{Src: c.Custom[alias]}},
		})
	}
	if len(missing) > 0 {
		return CustomOutput{}, fmt.Errorf("custom: aliases missing keyword annotations: %s", strings.Join(missing, ", "))
	}
	return out, nil
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
