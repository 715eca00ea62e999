package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emojigen/internal/dataset"
)

func intp(i int) *int { return &i }

func fixtureInputs() Inputs {
	// Deliberately unsorted: snapshot ordering is part of the contract.
	metadata := []dataset.MetadataEntry{
		{ShortName: "flag-aa", ShortNames: []string{"flag-aa"}, Name: "AA FLAG", Unified: "1F1E6-1F1E6", Category: "Flags", SortOrder: intp(4), AddedIn: "6.0"},
		{ShortName: "grinning", ShortNames: []string{"grinning", "grinning_face"}, Name: "GRINNING FACE", Unified: "1F600", Category: "Smileys & Emotion", SortOrder: intp(1), AddedIn: "6.1"},
		{ShortName: "wave", ShortNames: []string{"wave"}, Name: "WAVING HAND SIGN", Unified: "1F44B", Category: "People & Body", SortOrder: intp(2), AddedIn: "0.6",
			SkinVariations: map[string]dataset.SkinVariation{"1F3FB": {Unified: "1F44B-1F3FB"}}},
		{ShortName: "flag-zz", ShortNames: []string{"flag-zz"}, Name: "ZZ FLAG", Unified: "1F1FF-1F1FF", Category: "Flags", SortOrder: intp(3), AddedIn: "6.0"},
		{ShortName: "dragon_face", ShortNames: []string{"dragon_face"}, Name: "DRAGON FACE", Unified: "1F432", Category: "Animals & Nature", SortOrder: intp(0), AddedIn: "6.0"},
		{ShortName: "skin-tone-2", ShortNames: []string{"skin-tone-2"}, Unified: "1F3FB", Category: "Component", AddedIn: "1.0"},
	}
	githubEmojis := map[string]string{
		"grinning":   "https://github.githubassets.com/images/icons/emoji/unicode/1f600.png?v8",
		"happy_face": "https://github.githubassets.com/images/icons/emoji/unicode/1f600.png?v8",
		"wave":       "https://github.githubassets.com/images/icons/emoji/unicode/1f44b.png?v8",
		"flag_aa":    "https://github.githubassets.com/images/icons/emoji/unicode/1f1e6-1f1e6.png?v8",
		"flag_zz":    "https://github.githubassets.com/images/icons/emoji/unicode/1f1ff-1f1ff.png?v8",
		"octocat":    "https://github.githubassets.com/images/icons/emoji/octocat.png?v8",
	}
	return Inputs{
		Metadata:     metadata,
		Names:        map[string]dataset.LocaleName{"😀": {Name: "grinning face"}},
		Keywords:     map[string][]string{"😀": {"smile", "happy"}},
		GitHubEmojis: githubEmojis,
		CustomKeywords: map[string]dataset.CustomKeywords{
			"octocat": {Keywords: []string{"octocat", "github", "mascot"}},
		},
	}
}

func TestRunEndToEnd(t *testing.T) {
	in := fixtureInputs()
	res, err := Run(in, zerolog.Nop())
	require.NoError(t, err)

	// flag_aa and flag_zz are the GitHub-preferred ids for the flag entries.
	assert.Len(t, res.Standard.Emojis, 4)
	assert.Contains(t, res.Standard.Emojis, "grinning")
	assert.Contains(t, res.Standard.Emojis, "wave")
	assert.Contains(t, res.Standard.Emojis, "flag_aa")
	assert.Contains(t, res.Standard.Emojis, "flag_zz")
	assert.NotContains(t, res.Standard.Emojis, "dragon_face", "not in GitHub's set")
	assert.NotContains(t, res.Standard.Emojis, "skin-tone-2", "component entries are never emitted")

	// Secondary aliases map to the canonical id.
	assert.Equal(t, "grinning", res.Standard.Aliases["grinning_face"])
	assert.Equal(t, "grinning", res.Standard.Aliases["happy_face"])
	assert.Equal(t, "flag_aa", res.Standard.Aliases["flag-aa"])

	// Merged people category first, then the fixed remainder.
	require.Len(t, res.Standard.Categories, 8)
	assert.Equal(t, "people", res.Standard.Categories[0].ID)
	assert.Equal(t, []string{"grinning", "wave"}, res.Standard.Categories[0].Emojis)
	assert.Equal(t, []string{"flag_aa", "flag_zz"}, res.Standard.Categories[7].Emojis)

	assert.Equal(t, Sheet{Cols: 61, Rows: 61}, res.Standard.Sheet)

	for id, e := range res.Standard.Emojis {
		assert.Len(t, e.Skins, 6, id)
		assert.GreaterOrEqual(t, e.Version, 1.0, id)
	}

	require.Len(t, res.Custom.Emojis, 1)
	assert.Equal(t, "octocat", res.Custom.Emojis[0].ID)
}

func TestRunRoundTripCategoriesAndEmojis(t *testing.T) {
	res, err := Run(fixtureInputs(), zerolog.Nop())
	require.NoError(t, err)

	referenced := map[string]bool{}
	for _, cat := range res.Standard.Categories {
		for _, id := range cat.Emojis {
			assert.Contains(t, res.Standard.Emojis, id, "dangling reference in %s", cat.ID)
			referenced[id] = true
		}
	}
	for id := range res.Standard.Emojis {
		assert.True(t, referenced[id], "orphaned record %s", id)
	}
	for alias, id := range res.Standard.Aliases {
		assert.Contains(t, res.Standard.Emojis, id, "alias %s targets missing id", alias)
	}
}

func TestRunDoesNotMutateInputs(t *testing.T) {
	in := fixtureInputs()
	_, err := Run(in, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "flag-aa", in.Metadata[0].ShortName, "input order preserved")
	for _, e := range in.Metadata {
		assert.Empty(t, e.GitHubShortNames)
	}
	assert.Equal(t, []string{"grinning", "grinning_face"}, in.Metadata[1].ShortNames)
}

func TestRunIsDeterministic(t *testing.T) {
	first, err := Run(fixtureInputs(), zerolog.Nop())
	require.NoError(t, err)
	second, err := Run(fixtureInputs(), zerolog.Nop())
	require.NoError(t, err)

	firstFiles, err := first.Encode()
	require.NoError(t, err)
	secondFiles, err := second.Encode()
	require.NoError(t, err)

	assert.Equal(t, firstFiles[StandardFile], secondFiles[StandardFile])
	assert.Equal(t, firstFiles[CustomFile], secondFiles[CustomFile])
}

func TestRunFailsOnUnannotatedCustomEmoji(t *testing.T) {
	in := fixtureInputs()
	in.CustomKeywords = nil

	_, err := Run(in, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "octocat")
}

func TestRunFailsOnUnmatchedAlias(t *testing.T) {
	in := fixtureInputs()
	in.GitHubEmojis["mystery"] = "https://example.com/unicode/abcdef.png?v8"

	_, err := Run(in, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mystery")
}

func TestWriteFiles(t *testing.T) {
	res, err := Run(fixtureInputs(), zerolog.Nop())
	require.NoError(t, err)
	files, err := res.Encode()
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "src", "data")
	require.NoError(t, WriteFiles(files, dir))

	for name, want := range files {
		got, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestWriteFilesRejectsEscapingNames(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "out")

	err := WriteFiles(map[string][]byte{"../escape.json": []byte(`{}`)}, dir)
	require.Error(t, err)
	_, statErr := os.Stat(filepath.Join(base, "escape.json"))
	assert.True(t, os.IsNotExist(statErr))
}
