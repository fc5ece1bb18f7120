package issue

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases a title and collapses runs of non-alphanumeric
// characters into single dashes. An empty result falls back to
// "issue" so file names stay well-formed.
func Slugify(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = nonAlnum.ReplaceAllString(value, "-")
	value = strings.Trim(value, "-")
	if value == "" {
		return "issue"
	}
	return value
}

// NextID allocates the next sequential issue ID for a prefix by
// scanning existing "<prefix>-*.md" files in dir. The numeric chunk
// after the prefix of the last file (sorted order) is incremented;
// when it does not parse as an integer the file count stands in, so
// allocation still makes progress on hand-renamed files.
func NextID(dir, prefix string) (string, error) {
	existing, err := filepath.Glob(filepath.Join(dir, prefix+"-*.md"))
	if err != nil {
		return "", fmt.Errorf("scan issue files: %w", err)
	}
	if len(existing) == 0 {
		return fmt.Sprintf("%s-001", prefix), nil
	}
	sort.Strings(existing)

	last := existing[len(existing)-1]
	stem := strings.TrimSuffix(filepath.Base(last), filepath.Ext(last))
	parts := strings.Split(stem, "-")

	number := len(existing)
	if len(parts) > 1 {
		if n, err := strconv.Atoi(parts[1]); err == nil {
			number = n
		}
	}
	return fmt.Sprintf("%s-%03d", prefix, number+1), nil
}
