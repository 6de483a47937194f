package command

import (
	"strings"
	"unicode"

	"github.com/sandevgo/roster/internal/core"
)

// matcher builds a command from the tokens of a line, or reports no match.
type matcher func(tokens []string) (core.Command, bool)

// Classifier turns a trimmed input line into a core.Command.
// Shapes are tried in order and the first match wins.
type Classifier struct {
	matchers []matcher
}

func NewClassifier() *Classifier {
	return &Classifier{
		matchers: []matcher{
			matchAdd,
			matchShowDepartment,
			matchShowAll,
		},
	}
}

// Classify trims line and matches it against the known shapes.
// Any run of whitespace separates tokens.
func (c *Classifier) Classify(line string) (core.Command, error) {
	line = strings.TrimSpace(line)
	tokens := strings.Fields(line)
	for _, m := range c.matchers {
		if cmd, ok := m(tokens); ok {
			return cmd, nil
		}
	}
	return nil, core.NewClassificationError(line)
}

// matchAdd accepts "Add <employee> to <department>".
func matchAdd(tokens []string) (core.Command, bool) {
	if len(tokens) != 4 || tokens[0] != "Add" || tokens[2] != "to" {
		return nil, false
	}
	if !isWord(tokens[1]) || !isWord(tokens[3]) {
		return nil, false
	}
	return core.AddEmployee{Employee: tokens[1], Department: tokens[3]}, true
}

// matchShowDepartment accepts "Show employees from <department>".
func matchShowDepartment(tokens []string) (core.Command, bool) {
	if len(tokens) != 4 || tokens[0] != "Show" || tokens[1] != "employees" || tokens[2] != "from" {
		return nil, false
	}
	if !isWord(tokens[3]) {
		return nil, false
	}
	return core.ListByDepartment{Department: tokens[3]}, true
}

// matchShowAll accepts "Show all employees" followed by anything.
func matchShowAll(tokens []string) (core.Command, bool) {
	if len(tokens) < 3 || tokens[0] != "Show" || tokens[1] != "all" {
		return nil, false
	}
	if !strings.HasPrefix(tokens[2], "employees") {
		return nil, false
	}
	return core.ListAll{}, true
}

// isWord reports whether s is a single non-empty run of word characters.
func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) ||
		unicode.IsDigit(r) ||
		unicode.Is(unicode.Mn, r) ||
		unicode.Is(unicode.Mc, r) ||
		unicode.Is(unicode.Pc, r)
}
