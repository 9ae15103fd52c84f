package cssvars

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks stylesheet discovery statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually parsed (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

// loadIgnoreMatcher compiles the exclusion file. Gracefully degrades when
// the file does not exist.
func loadIgnoreMatcher(path string) *ignore.GitIgnore {
	if path == "" {
		path = ".gitignore"
	}
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil
	}
	return gi
}

// shouldSkipFile determines if a stylesheet should be excluded from
// scanning.
//
// Two-layer filtering:
// 1. Pattern check (fast): skip minified and generated bundles
// 2. Gitignore check: skip ignored files (only for relative paths)
func shouldSkipFile(path string, matcher *ignore.GitIgnore) bool {
	if strings.HasSuffix(path, ".min.css") {
		return true
	}

	// Absolute paths (like /tmp/...) are outside the project and not
	// subject to its ignore rules.
	if !filepath.IsAbs(path) && matcher != nil && matcher.MatchesPath(path) {
		return true
	}

	return false
}

// scanStylesheets expands glob patterns to stylesheet paths, deduplicated
// and filtered, tracking statistics.
func scanStylesheets(config Config) ([]string, ScanStats, error) {
	matcher := loadIgnoreMatcher(config.IgnoreFile)

	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range config.Paths {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match, matcher) {
				stats.FilesSkipped++
			} else {
				files = append(files, match)
				seen[match] = true
				stats.FilesScanned++
			}
		}
	}

	return files, stats, nil
}
