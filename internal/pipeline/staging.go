package pipeline

import (
	"fmt"
	"os"
)

// stagedEntries lists the files directly inside dir whose names satisfy match.
// os.ReadDir returns entries sorted by name, which fixes the processing order.
func stagedEntries(dir string, match func(name string) bool) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	matched := entries[:0]
	for _, entry := range entries {
		if entry.IsDir() || !match(entry.Name()) {
			continue
		}
		matched = append(matched, entry)
	}

	return matched, nil
}
