package message

import (
	"fmt"
	"regexp"
	"strings"
)

// fileCategory labels a pool of paths when enough of them match its pattern.
type fileCategory struct {
	label   string
	pattern *regexp.Regexp
}

// fileCategories is evaluated in fixed order; the first dominant category
// wins. Labels read naturally after the verb in a subject line
// ("update components", "update api routes").
var fileCategories = []fileCategory{
	{label: "components", pattern: regexp.MustCompile(`(?i)components?`)},
	{label: "api routes", pattern: regexp.MustCompile(`(?i)(api|routes?)`)},
	{label: "utilities", pattern: regexp.MustCompile(`(?i)(utils?|helpers?)`)},
	{label: "styles", pattern: regexp.MustCompile(`(?i)\.(css|scss|less|sass)$`)},
	{label: "tests", pattern: regexp.MustCompile(`(?i)(test|spec|__tests__)`)},
	{label: "configuration", pattern: regexp.MustCompile(`(?i)(config|settings|\.(json|ya?ml|toml)$)`)},
	{label: "types", pattern: regexp.MustCompile(`(?i)(types?/|\.d\.ts$|types?\.)`)},
	{label: "documentation", pattern: regexp.MustCompile(`(?i)(readme|docs?/|\.md$)`)},
	{label: "models", pattern: regexp.MustCompile(`(?i)models?`)},
	{label: "services", pattern: regexp.MustCompile(`(?i)services?`)},
}

// typeFallbacks are the per-type subjects used when no path-shape rule
// produces anything more specific.
var typeFallbacks = map[string]string{
	"feat":     "implement new feature",
	"fix":      "fix multiple issues",
	"refactor": "refactor code structure",
	"docs":     "update documentation",
	"test":     "add test coverage",
	"style":    "format code",
	"chore":    "update dependencies",
}

// ComposeSubject derives the one-line subject from the shape of the change
// set and the resolved commit type. The decision table runs top-down, first
// match wins:
//
//  1. every change is an addition: one file names it, a dominant category
//     labels it, otherwise "add N new files"
//  2. every change is a deletion: one file names it, otherwise "remove N files"
//  3. a single modified file: "update <name>"
//  4. at most three changes: "update <name, name, name>"
//  5. a dominant category over modified+added+deleted: "update <category>"
//  6. the per-type fallback phrase, or "update N files" for unknown types
func ComposeSubject(cs *ChangeSet, commitType string) string {
	total := cs.Total()

	if total > 0 && len(cs.Added) == total {
		if total == 1 {
			return "add " + baseName(cs.Added[0])
		}
		if category, ok := dominantCategory(cs.Added); ok {
			return "add " + category
		}
		return fmt.Sprintf("add %d new files", total)
	}

	if total > 0 && len(cs.Deleted) == total {
		if total == 1 {
			return "remove " + baseName(cs.Deleted[0])
		}
		return fmt.Sprintf("remove %d files", total)
	}

	if total == 1 && len(cs.Modified) == 1 {
		return "update " + baseName(cs.Modified[0])
	}

	// The short-list and category rules work over the modified+added+deleted
	// pool; renamed entries count toward the total but are never named.
	pool := make([]string, 0, total)
	pool = append(pool, cs.Modified...)
	pool = append(pool, cs.Added...)
	pool = append(pool, cs.Deleted...)

	if total > 0 && total <= 3 && len(pool) > 0 {
		names := make([]string, 0, 3)
		for _, p := range pool {
			if len(names) == 3 {
				break
			}
			names = append(names, baseName(p))
		}
		return "update " + strings.Join(names, ", ")
	}

	if category, ok := dominantCategory(pool); ok {
		return "update " + category
	}

	if fallback, ok := typeFallbacks[commitType]; ok {
		return fallback
	}
	return fmt.Sprintf("update %d files", total)
}

// dominantCategory returns the first category matched by at least 60% of the
// pool. The comparison is integer-exact: 3 of 5 qualifies, 5 of 9 does not.
func dominantCategory(pool []string) (string, bool) {
	if len(pool) == 0 {
		return "", false
	}
	for _, cat := range fileCategories {
		matches := 0
		for _, p := range pool {
			if cat.pattern.MatchString(p) {
				matches++
			}
		}
		if matches*10 >= len(pool)*6 {
			return cat.label, true
		}
	}
	return "", false
}

// baseName is the last path segment with its final extension stripped.
// A name that strips to nothing (dotfiles like ".gitignore") keeps the
// full segment.
func baseName(path string) string {
	seg := path
	if idx := strings.LastIndex(seg, "/"); idx >= 0 {
		seg = seg[idx+1:]
	}
	if dot := strings.LastIndex(seg, "."); dot > 0 {
		return seg[:dot]
	}
	return seg
}
