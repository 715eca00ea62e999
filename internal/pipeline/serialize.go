package pipeline

import (
	"fmt"
	"os"
	"sort"

	"emojigen/internal/safeio"
	"emojigen/internal/util/jsonutil"
)

// Artifact file names, fixed by the consuming UI.
const (
	StandardFile = "github_emojis.json"
	CustomFile   = "github_custom_emojis.json"
)

// Encode renders both artifacts to their final bytes. Encoding is
// deterministic: identical inputs produce byte-identical files.
func (r *Result) Encode() (map[string][]byte, error) {
	standard, err := jsonutil.MarshalNoEscape(r.Standard)
	if err != nil {
		return nil, fmt.Errorf("serialize: encode %s: %w", StandardFile, err)
	}
	custom, err := jsonutil.MarshalNoEscape(r.Custom)
	if err != nil {
		return nil, fmt.Errorf("serialize: encode %s: %w", CustomFile, err)
	}
	return map[string][]byte{
		StandardFile: standard,
		CustomFile:   custom,
	}, nil
}

// WriteFiles writes the encoded artifacts into dir, creating it when needed.
// Writes go through a SafeFS rooted at dir and are independent and
// idempotent: re-running overwrites the same files.
func WriteFiles(files map[string][]byte, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("serialize: create %s: %w", dir, err)
	}
	out, err := safeio.NewSafeFS(dir)
	if err != nil {
		return fmt.Errorf("serialize: output directory: %w", err)
	}
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := out.SafeWriteFile(name, files[name], 0o644); err != nil {
			return fmt.Errorf("serialize: write %s: %w", name, err)
		}
	}
	return nil
}
