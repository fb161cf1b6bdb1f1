package suggest

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sahilm/fuzzy"
)

// NoSuggestions is the default filter: it never suggests anything, so
// submitting resolves to the empty string.
func NoSuggestions(string) []string {
	return []string{}
}

// NewPrefixFilter returns a filter that keeps the candidates starting with
// the input, case-insensitively, in their original order.
//
// Example:
//
//	result, err := suggest.Ask("Pick",
//		suggest.WithSuggest(suggest.NewPrefixFilter([]string{"apple", "apricot", "banana"})),
//	)
func NewPrefixFilter(candidates []string) func(string) []string {
	return func(input string) []string {
		needle := strings.ToLower(input)
		result := make([]string, 0, len(candidates))
		for _, c := range candidates {
			if strings.HasPrefix(strings.ToLower(c), needle) {
				result = append(result, c)
			}
		}
		return result
	}
}

// NewFuzzyFilter returns a filter that ranks candidates by fuzzy match
// quality. Empty input yields every candidate in its original order.
//
// Example:
//
//	filter := suggest.NewFuzzyFilter([]string{"git status", "git commit", "docker ps"})
//	filter("gst") // ["git status"]
func NewFuzzyFilter(candidates []string) func(string) []string {
	return func(input string) []string {
		if input == "" {
			return append([]string{}, candidates...)
		}
		matches := fuzzy.Find(input, candidates)
		result := make([]string, 0, len(matches))
		for _, m := range matches {
			result = append(result, m.Str)
		}
		return result
	}
}

// NewFileFilter returns a filter suggesting file and directory paths for
// the input. Directories end with a slash.
func NewFileFilter() func(string) []string {
	return completeFilePath
}

// completeFilePath lists the entries of the directory named by path whose
// names start with the path's last element.
func completeFilePath(path string) []string {
	if path == "" {
		path = "."
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)

	// If path ends with separator, we're completing in that directory
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		dir = path
		base = ""
	}
	if path == "." {
		base = ""
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return []string{}
	}

	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()

		// Skip hidden files unless explicitly requested
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}
		if base != "" && !strings.HasPrefix(name, base) {
			continue
		}

		fullPath := filepath.Join(dir, name)
		if dir == "." && !strings.HasPrefix(path, "./") {
			fullPath = name
		}
		if entry.IsDir() {
			fullPath += "/"
		}
		result = append(result, fullPath)
	}
	return result
}
