// Package message turns a categorized set of changed paths into a
// conventional-commit message. The pipeline is purely path-based: no file
// contents or diffs are inspected, and every decision function is
// deterministic over its inputs.
package message

import "strings"

// ChangeSet holds the changed paths of one status snapshot, grouped by the
// kind of change. Slices keep the order the status text reported them in and
// are not deduplicated. A ChangeSet is built once by ParseStatus and treated
// as read-only afterwards.
type ChangeSet struct {
	Modified  []string
	Added     []string
	Deleted   []string
	Renamed   []string
	Untracked []string
}

// IsEmpty reports whether no status line was classified at all.
func (c *ChangeSet) IsEmpty() bool {
	return len(c.Modified) == 0 && len(c.Added) == 0 && len(c.Deleted) == 0 &&
		len(c.Renamed) == 0 && len(c.Untracked) == 0
}

// Total is the number of tracked changes: modified, added, deleted and
// renamed paths. Untracked files are not counted; they only participate in
// commit-type detection.
func (c *ChangeSet) Total() int {
	return len(c.Modified) + len(c.Added) + len(c.Deleted) + len(c.Renamed)
}

// TrackedPaths returns modified, added, deleted and renamed paths in that
// category order.
func (c *ChangeSet) TrackedPaths() []string {
	paths := make([]string, 0, c.Total())
	paths = append(paths, c.Modified...)
	paths = append(paths, c.Added...)
	paths = append(paths, c.Deleted...)
	paths = append(paths, c.Renamed...)
	return paths
}

// AllPaths returns every path in the set, untracked included.
func (c *ChangeSet) AllPaths() []string {
	paths := c.TrackedPaths()
	return append(paths, c.Untracked...)
}

// ParseStatus builds a ChangeSet from porcelain-style status text: one line
// per path, shaped "<XY> <path>" where XY is the two-character staged/unstaged
// code. Each line lands in at most one category, decided by the first matching
// rule in this fixed order:
//
//  1. either code character is 'M'  -> Modified
//  2. either code character is 'A'  -> Added
//  3. either code character is 'D'  -> Deleted
//  4. either code character is 'R'  -> Renamed
//  5. the code is exactly "??"      -> Untracked
//
// The order is load-bearing: a line like "AM file" counts as modified, and a
// rename that also carries a modification is reported only as modified. Lines
// matching no rule are dropped. Rename entries keep the raw "old -> new"
// remainder as their path.
func ParseStatus(raw string) *ChangeSet {
	cs := &ChangeSet{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		code, path, ok := splitStatusLine(line)
		if !ok {
			continue
		}
		switch {
		case strings.ContainsRune(code, 'M'):
			cs.Modified = append(cs.Modified, path)
		case strings.ContainsRune(code, 'A'):
			cs.Added = append(cs.Added, path)
		case strings.ContainsRune(code, 'D'):
			cs.Deleted = append(cs.Deleted, path)
		case strings.ContainsRune(code, 'R'):
			cs.Renamed = append(cs.Renamed, path)
		case code == "??":
			cs.Untracked = append(cs.Untracked, path)
		}
	}
	return cs
}

// splitStatusLine separates the status code from the path. Exact porcelain
// lines ("XY path", including codes with a space such as " M" or "R ") are
// split at the fixed third column; lines whose whitespace was collapsed by an
// upstream trim fall back to splitting on the first space run.
func splitStatusLine(line string) (code, path string, ok bool) {
	if len(line) > 3 && line[2] == ' ' {
		return line[:2], line[3:], true
	}
	trimmed := strings.TrimLeft(line, " \t")
	idx := strings.IndexAny(trimmed, " \t")
	if idx <= 0 || idx > 2 {
		return "", "", false
	}
	code = trimmed[:idx]
	path = strings.TrimLeft(trimmed[idx:], " \t")
	if path == "" {
		return "", "", false
	}
	return code, path, true
}
