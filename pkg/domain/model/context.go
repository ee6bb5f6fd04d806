package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/issueflow/pkg/domain/types"
)

const (
	// ContextFileName is the default path of the context document on a branch
	ContextFileName = ".claude-context.md"
	// TitleHintFileName is the chat title hint written at the root of a working tree
	TitleHintFileName = ".claude-title-hint.json"
)

var (
	ptnContextHeading  = regexp.MustCompile(`(?m)^# Issue #(\d+): (.+?)\r?$`)
	ptnIssueBranch     = regexp.MustCompile(`^feature/issue-(\d+)-(.+)$`)
	ptnContextPriority = regexp.MustCompile(`\*\*Priority:\*\* (.+)`)
	ptnContextEstimate = regexp.MustCompile(`\*\*Estimated Time:\*\* (.+)`)
)

// ContextHeading returns the heading line that downstream tools detect. The format
// `Issue #<number>: <title>` must not change.
func ContextHeading(number types.IssueNumber, title string) string {
	return fmt.Sprintf("Issue #%d: %s", number, singleLine(title))
}

// RenderContextDocument builds the context document for an issue worked on in branch.
// Output depends only on its arguments.
func RenderContextDocument(issue *AnnotatedIssue, branch types.BranchName) string {
	var b strings.Builder

	priority := issue.Priority
	if priority == "" {
		priority = types.PriorityMedium
	}
	hours := issue.EstimatedHours
	if hours <= 0 {
		hours = 4
	}

	fmt.Fprintf(&b, "# %s\n\n", ContextHeading(issue.Number, issue.Title))

	b.WriteString("## Context for Claude Code\n")
	fmt.Fprintf(&b, "This branch is working on GitHub Issue #%d.\n\n", issue.Number)
	fmt.Fprintf(&b, "**Issue Title:** %s\n", singleLine(issue.Title))
	fmt.Fprintf(&b, "**Priority:** %s\n", priority)
	fmt.Fprintf(&b, "**Estimated Time:** %d hours\n", hours)
	fmt.Fprintf(&b, "**Branch:** %s\n", branch)
	if issue.HTMLURL != "" {
		fmt.Fprintf(&b, "**Issue URL:** %s\n", issue.HTMLURL)
	}
	if issue.Milestone != nil {
		fmt.Fprintf(&b, "**Project:** %s\n", issue.Milestone.Title)
	}
	b.WriteString("\n")

	b.WriteString("## Issue Description\n")
	if body := strings.TrimSpace(issue.Body); body != "" {
		b.WriteString(body)
	} else {
		b.WriteString("No description provided.")
	}
	b.WriteString("\n\n")

	b.WriteString("## Labels\n")
	if len(issue.Labels) == 0 {
		b.WriteString("No labels.\n")
	}
	for _, label := range issue.Labels {
		fmt.Fprintf(&b, "- %s\n", label)
	}
	b.WriteString("\n")

	b.WriteString(`## Development Notes
- Remember to follow the existing code patterns in the codebase
- Add tests for any new functionality
- Update documentation if needed
- Run the linters and type checks before committing

## Acceptance Criteria
- [ ] Issue requirements are fully implemented
- [ ] Code follows project conventions
- [ ] Tests are added/updated
- [ ] Build passes (lint + typecheck)
- [ ] PR created to testing branch

---
*Generated by issueflow*
`)

	return b.String()
}

// ParseContextHeading extracts the issue number and title from the first
// `# Issue #<number>: <title>` line of a context document.
func ParseContextHeading(content string) (types.IssueNumber, string, error) {
	m := ptnContextHeading.FindStringSubmatch(content)
	if m == nil {
		return 0, "", goerr.Wrap(types.ErrValidationFailed, "context heading not found")
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, "", goerr.Wrap(err, "invalid issue number in heading", goerr.V("heading", m[0]))
	}
	return types.IssueNumber(n), m[2], nil
}

// ParseIssueBranch extracts the issue number and slug from a branch created by
// StartWorkflow
func ParseIssueBranch(branch types.BranchName) (types.IssueNumber, string, bool) {
	m := ptnIssueBranch.FindStringSubmatch(string(branch))
	if m == nil {
		return 0, "", false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, "", false
	}
	return types.IssueNumber(n), m[2], true
}

// TitleCase turns a dash separated slug into space separated words with an upper case
// first letter.
func TitleCase(slug string) string {
	words := strings.Fields(strings.ReplaceAll(slug, "-", " "))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// lineBreaks are replaced by a space so that a title stays on the heading line. Any other
// character of the title is kept as is.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func singleLine(s string) string {
	return lineBreaks.Replace(s)
}

// ContextInfo is what a developer working on an issue branch needs to open a chat with the
// right title
type ContextInfo struct {
	Number        types.IssueNumber `json:"number"`
	Title         string            `json:"title"`
	Branch        types.BranchName  `json:"branch"`
	ContextFile   string            `json:"context_file"`
	HasDocument   bool              `json:"has_document"`
	Priority      string            `json:"priority,omitempty"`
	EstimatedTime string            `json:"estimated_time,omitempty"`
}

// Heading returns the suggested chat title
func (x *ContextInfo) Heading() string {
	return ContextHeading(x.Number, x.Title)
}

// NewContextInfo resolves the issue of branch. The heading of document wins over the
// branch slug. document is nil when the context file does not exist. ok is false when the
// branch is not an issue branch.
func NewContextInfo(branch types.BranchName, contextFile string, document []byte) (*ContextInfo, bool) {
	number, slug, ok := ParseIssueBranch(branch)
	if !ok {
		return nil, false
	}

	info := &ContextInfo{
		Number:      number,
		Title:       TitleCase(slug),
		Branch:      branch,
		ContextFile: contextFile,
	}
	if document == nil {
		return info, true
	}

	info.HasDocument = true
	content := string(document)
	if n, title, err := ParseContextHeading(content); err == nil {
		info.Number = n
		info.Title = title
	}
	if m := ptnContextPriority.FindStringSubmatch(content); m != nil {
		info.Priority = strings.TrimSpace(m[1])
	}
	if m := ptnContextEstimate.FindStringSubmatch(content); m != nil {
		info.EstimatedTime = strings.TrimSpace(m[1])
	}
	return info, true
}

// TitleHint is written next to the context document for editors that pick up a chat title
type TitleHint struct {
	SuggestedTitle string           `json:"suggestedTitle"`
	Branch         types.BranchName `json:"branch"`
	ContextFile    string           `json:"contextFile"`
	Timestamp      time.Time        `json:"timestamp"`
}
