package pipeline

// Output is the standard dataset written to github_emojis.json, in the shape
// the picker UI consumes.
type Output struct {
	Categories []Category        `json:"categories"`
	Emojis     map[string]Emoji  `json:"emojis"`
	Aliases    map[string]string `json:"aliases"`
	Sheet      Sheet             `json:"sheet"`
}

// Sheet describes the sprite sheet grid the UI renders from.
type Sheet struct {
	Cols int `json:"cols"`
	Rows int `json:"rows"`
}

// Category is an ordered list of emoji ids under a fixed slug.
type Category struct {
	ID     string   `json:"id"`
	Emojis []string `json:"emojis"`
}

// Emoji is one canonical output record. Skins always has six slots: the base
// tone at index 0 and the five Fitzpatrick modifiers at 1-5, nil when the
// source data has no variant for that tone.
type Emoji struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Emoticons []string `json:"emoticons,omitempty"`
	Keywords  []string `json:"keywords"`
	Skins     []*Skin  `json:"skins"`
	Version   float64  `json:"version"`
}

// Skin is one rendered variant: lowercase unified codepoints plus the native
// character.
type Skin struct {
	Unified string `json:"unified"`
	Native  string `json:"native"`
}

// CustomOutput is the GitHub-custom dataset written to
// github_custom_emojis.json.
type CustomOutput struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Emojis []CustomEmoji `json:"emojis"`
}

// CustomEmoji is a non-unicode GitHub emoji, rendered only via its image URL.
type CustomEmoji struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Keywords []string     `json:"keywords"`
	Skins    []CustomSkin `json:"skins"`
}

type CustomSkin struct {
	Src string `json:"src"`
}
