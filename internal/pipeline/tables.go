package pipeline

// categoryDef maps an emoji-datasource category name to its output slug.
// Order matters: it is the raw output order before the smileys/people merge.
type categoryDef struct {
	name string
	slug string
}

var categoryTable = []categoryDef{
	{"Smileys & Emotion", "smileys"},
	{"People & Body", "people"},
	{"Animals & Nature", "nature"},
	{"Food & Drink", "foods"},
	{"Activities", "activity"},
	{"Travel & Places", "places"},
	{"Objects", "objects"},
	{"Symbols", "symbols"},
	{"Flags", "flags"},
}

// componentCategory groups codepoints that only exist to compose skin-tone
// variants. They feed the skins step and are never emitted as selectable
// emoji.
const componentCategory = "Component"

// skinTones are the five Fitzpatrick modifier codepoints in output slot
// order. A variation is stored under the bare token, or under the doubled
// token for emoji with the same tone on both hands.
var skinTones = [5]string{"1F3FB", "1F3FC", "1F3FD", "1F3FE", "1F3FF"}

// keywordSubstitutes expands a keyword before normalization so additional
// spellings become searchable.
var keywordSubstitutes = map[string]string{
	"highfive": "highfive high-five",
}

// smileysSplitIndex is the position at which the people category is spliced
// into the smileys category during the merge. It is a positional contract
// with the upstream emoji-datasource ordering, not derived from content.
const smileysSplitIndex = 114

// Sprite sheet dimensions of the emoji-datasource image sets.
const (
	sheetCols = 61
	sheetRows = 61
)
