package message

import (
	"fmt"
	"strings"
)

// ComposeBody renders the detail section of the message. Small change sets
// get a per-category listing; anything over maxFiles collapses to a one-line
// count summary so the body stays readable. Untracked paths never appear.
func ComposeBody(cs *ChangeSet, maxFiles int) string {
	total := cs.Total()
	if total == 0 {
		return ""
	}

	if total > maxFiles {
		parts := make([]string, 0, 4)
		if n := len(cs.Added); n > 0 {
			parts = append(parts, fmt.Sprintf("%d added", n))
		}
		if n := len(cs.Modified); n > 0 {
			parts = append(parts, fmt.Sprintf("%d modified", n))
		}
		if n := len(cs.Deleted); n > 0 {
			parts = append(parts, fmt.Sprintf("%d deleted", n))
		}
		if n := len(cs.Renamed); n > 0 {
			parts = append(parts, fmt.Sprintf("%d renamed", n))
		}
		return "Changes: " + strings.Join(parts, ", ")
	}

	var b strings.Builder
	writeSection(&b, "Added:", cs.Added)
	writeSection(&b, "Modified:", cs.Modified)
	writeSection(&b, "Deleted:", cs.Deleted)
	writeSection(&b, "Renamed:", cs.Renamed)
	return strings.TrimRight(b.String(), " \t\n")
}

func writeSection(b *strings.Builder, header string, paths []string) {
	if len(paths) == 0 {
		return
	}
	b.WriteString(header)
	b.WriteString("\n")
	for _, p := range paths {
		b.WriteString("  - ")
		b.WriteString(p)
		b.WriteString("\n")
	}
	b.WriteString("\n")
}
