package command

import (
	"errors"
	"testing"

	"github.com/sandevgo/roster/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifier_Classify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  core.Command
	}{
		{
			name:  "add employee",
			input: "Add Alice to Engineering",
			want:  core.AddEmployee{Employee: "Alice", Department: "Engineering"},
		},
		{
			name:  "add with digits and underscore",
			input: "Add agent_007 to R2D2",
			want:  core.AddEmployee{Employee: "agent_007", Department: "R2D2"},
		},
		{
			name:  "add with accented names",
			input: "Add João to Finanças",
			want:  core.AddEmployee{Employee: "João", Department: "Finanças"},
		},
		{
			name:  "show department",
			input: "Show employees from Engineering",
			want:  core.ListByDepartment{Department: "Engineering"},
		},
		{
			name:  "show all",
			input: "Show all employees",
			want:  core.ListAll{},
		},
		{
			name:  "padded add",
			input: "  Add Alice to Sales \t",
			want:  core.AddEmployee{Employee: "Alice", Department: "Sales"},
		},
		{
			name:  "padded show all",
			input: " Show all employees",
			want:  core.ListAll{},
		},
		{
			name:  "tabs and repeated spaces between tokens",
			input: "Add\tAlice   to Sales",
			want:  core.AddEmployee{Employee: "Alice", Department: "Sales"},
		},
		{
			name:  "show department with tab",
			input: "Show employees   from\tSales",
			want:  core.ListByDepartment{Department: "Sales"},
		},
		{
			name:  "show all with repeated spaces",
			input: "Show  all\temployees",
			want:  core.ListAll{},
		},
		{
			name:  "show all with trailing content",
			input: "Show all employees please, sorted",
			want:  core.ListAll{},
		},
	}

	c := NewClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Classify(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifier_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "single word", input: "banana"},
		{name: "bare add", input: "Add"},
		{name: "add missing department", input: "Add Alice to"},
		{name: "add trailing token", input: "Add Alice to Engineering now"},
		{name: "add two word employee", input: "Add Alice Smith to Engineering"},
		{name: "add wrong preposition", input: "Add Alice into Engineering"},
		{name: "add lowercase keyword", input: "add Alice to Engineering"},
		{name: "add punctuation in name", input: "Add Alice! to Engineering"},
		{name: "add prefixed", input: "Please Add Alice to Engineering"},
		{name: "show department missing name", input: "Show employees from"},
		{name: "show department trailing token", input: "Show employees from Sales today"},
		{name: "show department hyphenated", input: "Show employees from R-and-D"},
		{name: "show all wrong case", input: "show all employees"},
		{name: "show all truncated", input: "Show all"},
		{name: "show all split keyword", input: "Show all employ ees"},
	}

	c := NewClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Classify(tt.input)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, core.ErrInvalidCommand))

			var ce *core.ClassificationError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.input, ce.Line)
			assert.Equal(t, "invalid command", ce.Msg)
		})
	}
}

func TestClassifier_Pure(t *testing.T) {
	c := NewClassifier()
	inputs := []string{
		"Add Alice to Engineering",
		"Show employees from Engineering",
		"Show all employees",
		"banana",
	}

	for _, input := range inputs {
		first, firstErr := c.Classify(input)
		second, secondErr := c.Classify(input)
		assert.Equal(t, first, second, input)
		assert.Equal(t, firstErr, secondErr, input)
	}
}

func TestClassifier_ErrorCarriesTrimmedLine(t *testing.T) {
	_, err := NewClassifier().Classify("  banana \n")

	var ce *core.ClassificationError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "banana", ce.Line)
}
