package message

import "regexp"

// Candidate is one commit type offered for selection, in ranked order.
type Candidate struct {
	Type        string
	Description string
	// Suggested marks the auto-detected candidate. At most one candidate in
	// a ranked list carries it, always at index 0.
	Suggested bool
}

// commitTypes is the fixed candidate set in its default ranking.
var commitTypes = []Candidate{
	{Type: "feat", Description: "A new feature"},
	{Type: "fix", Description: "A bug fix"},
	{Type: "docs", Description: "Documentation only changes"},
	{Type: "style", Description: "Changes that do not affect the meaning of the code"},
	{Type: "refactor", Description: "A code change that neither fixes a bug nor adds a feature"},
	{Type: "test", Description: "Adding missing tests or correcting existing tests"},
	{Type: "chore", Description: "Changes to the build process or auxiliary tooling"},
	{Type: "perf", Description: "A code change that improves performance"},
}

var (
	testPathPattern  = regexp.MustCompile(`(?i)(test|spec|__tests__)`)
	docsPathPattern  = regexp.MustCompile(`(?i)(readme|\.md$)`)
	stylePathPattern = regexp.MustCompile(`(?i)\.(css|scss|less)$`)
)

// manifestPaths are package-manager manifests that indicate dependency chores.
// Matched by exact path, not basename: a manifest inside a subdirectory does
// not trigger the rule.
var manifestPaths = map[string]bool{
	"package.json":      true,
	"package-lock.json": true,
}

// DetectType inspects every path in the set, untracked included, and returns
// the auto-detected commit type. Rules run in fixed priority order; the first
// hit wins:
//
//  1. any path mentions test/spec/__tests__        -> "test"
//  2. any path is a package manifest               -> "chore"
//  3. any path mentions readme or ends in .md      -> "docs"
//  4. every path is a stylesheet (.css/.scss/.less) -> "style"
//
// ok is false when no rule fires.
func DetectType(cs *ChangeSet) (suggestion string, ok bool) {
	paths := cs.AllPaths()
	if len(paths) == 0 {
		return "", false
	}
	for _, p := range paths {
		if testPathPattern.MatchString(p) {
			return "test", true
		}
	}
	for _, p := range paths {
		if manifestPaths[p] {
			return "chore", true
		}
	}
	for _, p := range paths {
		if docsPathPattern.MatchString(p) {
			return "docs", true
		}
	}
	allStyles := true
	for _, p := range paths {
		if !stylePathPattern.MatchString(p) {
			allStyles = false
			break
		}
	}
	if allStyles {
		return "style", true
	}
	return "", false
}

// Candidates returns the ranked commit-type list for the set. Without a
// detected suggestion the fixed default order is returned; with one, the
// suggested candidate moves to the front and its description is annotated.
func Candidates(cs *ChangeSet) []Candidate {
	ranked := make([]Candidate, 0, len(commitTypes))
	suggestion, ok := DetectType(cs)
	if !ok {
		return append(ranked, commitTypes...)
	}
	for _, c := range commitTypes {
		if c.Type == suggestion {
			c.Description += " (suggested)"
			c.Suggested = true
			ranked = append(ranked, c)
		}
	}
	for _, c := range commitTypes {
		if c.Type != suggestion {
			ranked = append(ranked, c)
		}
	}
	return ranked
}
