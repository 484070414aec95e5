package message

import "strings"

// Commit is the structured form of a conventional commit message before
// rendering.
type Commit struct {
	Type    string
	Scope   string
	Subject string
	Body    string
	Footer  string
}

// String renders the commit in conventional form: the header line
// "type(scope): subject", then body and footer each separated by a single
// blank line. Empty sections are omitted and the result carries no trailing
// blank lines.
func (c Commit) String() string {
	var b strings.Builder
	b.WriteString(c.Type)
	if c.Scope != "" {
		b.WriteString("(")
		b.WriteString(c.Scope)
		b.WriteString(")")
	}
	b.WriteString(": ")
	b.WriteString(c.Subject)
	if c.Body != "" {
		b.WriteString("\n\n")
		b.WriteString(c.Body)
	}
	if c.Footer != "" {
		b.WriteString("\n\n")
		b.WriteString(c.Footer)
	}
	return b.String()
}
