package formatter

import (
	"strings"
)

const (
	todoHeading  = "TODO:"
	todoItemMark = "- [ ] "
	issuePrefix  = "Refs: "
)

// Message is a commit message split into its three parts.
type Message struct {
	Header       string
	TodoFooter   string
	IssueTrailer string
}

// String joins the parts into the text handed to git commit.
func (m Message) String() string {
	var b strings.Builder
	b.WriteString(m.Header)
	if m.TodoFooter != "" {
		b.WriteString("\n\n")
		b.WriteString(m.TodoFooter)
	}
	b.WriteString(m.IssueTrailer)
	return b.String()
}

// BuildHeader formats a conventional commit header. A blank scope is left out
// entirely rather than rendered as "()".
func BuildHeader(commitType, scope, description string) string {
	scope = strings.TrimSpace(scope)
	if scope == "" {
		return commitType + ": " + description
	}
	return commitType + "(" + scope + "): " + description
}

// BuildTodoFooter lists every item whose index is not in confirmed, in
// checklist order. It returns "" when nothing is left unconfirmed.
func BuildTodoFooter(items []string, confirmed []int) string {
	done := make(map[int]struct{}, len(confirmed))
	for _, idx := range confirmed {
		done[idx] = struct{}{}
	}

	lines := make([]string, 0, len(items)+1)
	for i, item := range items {
		if _, ok := done[i]; ok {
			continue
		}
		lines = append(lines, todoItemMark+item)
	}
	if len(lines) == 0 {
		return ""
	}

	return todoHeading + "\n" + strings.Join(lines, "\n")
}

// BuildIssueTrailer returns the issue reference trailer, including the blank
// line that separates it from the preceding text.
func BuildIssueTrailer(issueReference string) string {
	issueReference = strings.TrimSpace(issueReference)
	if issueReference == "" {
		return ""
	}
	return "\n\n" + issuePrefix + issueReference
}

// Build assembles the full message from its inputs.
func Build(commitType, scope, description string, items []string, confirmed []int, issueReference string) Message {
	return Message{
		Header:       BuildHeader(commitType, scope, description),
		TodoFooter:   BuildTodoFooter(items, confirmed),
		IssueTrailer: BuildIssueTrailer(issueReference),
	}
}
