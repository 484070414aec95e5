package message

import (
	"regexp"
	"strings"
)

// scopeRule matches when every path in the pool contains the pattern.
type scopeRule struct {
	scope   string
	pattern *regexp.Regexp
}

// scopeRules run in fixed order after first-segment detection fails.
var scopeRules = []scopeRule{
	{scope: "components", pattern: regexp.MustCompile(`(?i)components?`)},
	{scope: "api", pattern: regexp.MustCompile(`(?i)(api|routes?)`)},
	{scope: "utils", pattern: regexp.MustCompile(`(?i)(utils?|helpers?)`)},
	{scope: "types", pattern: regexp.MustCompile(`(?i)types?`)},
}

// ResolveScope derives an optional scope token from the tracked paths
// (untracked files are ignored). The first rule producing a value wins:
// when all paths that contain a separator share a single first segment, that
// segment is the scope; otherwise the ordered pattern table applies. Paths
// without a separator contribute no segment, and "." is never a scope.
// The empty string means no scope.
func ResolveScope(cs *ChangeSet) string {
	paths := cs.TrackedPaths()
	if len(paths) == 0 {
		return ""
	}

	if seg := commonFirstSegment(paths); seg != "" {
		return seg
	}

	for _, rule := range scopeRules {
		if allMatch(paths, rule.pattern) {
			return rule.scope
		}
	}
	return ""
}

// commonFirstSegment returns the single distinct first path segment, or ""
// when there is none, more than one, or only ".".
func commonFirstSegment(paths []string) string {
	seg := ""
	for _, p := range paths {
		idx := strings.Index(p, "/")
		if idx <= 0 {
			continue // no separator, or an empty leading segment
		}
		first := p[:idx]
		if seg == "" {
			seg = first
			continue
		}
		if first != seg {
			return ""
		}
	}
	if seg == "." {
		return ""
	}
	return seg
}

func allMatch(paths []string, pattern *regexp.Regexp) bool {
	for _, p := range paths {
		if !pattern.MatchString(p) {
			return false
		}
	}
	return true
}
