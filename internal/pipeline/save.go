package pipeline

import "os"

// WriteStringArray writes lines to path as a compact JSON array,
// truncated to max entries when max > 0. A nil or empty slice is
// written as [] so downstream consumers always find a valid file.
// Returns the number of lines written.
func WriteStringArray(path string, lines []string, max int) (int, error) {
	if max > 0 && len(lines) > max {
		lines = lines[:max]
	}
	if lines == nil {
		lines = []string{}
	}

	b, err := json.Marshal(lines)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return 0, err
	}
	return len(lines), nil
}
