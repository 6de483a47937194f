package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/chzyer/readline"
	"github.com/sandevgo/roster/internal/service/command"
	"github.com/sandevgo/roster/internal/service/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type step struct {
	line string
	err  error
}

type scriptedReader struct {
	steps  []step
	reads  int
	closed bool
}

func (s *scriptedReader) Readline() (string, error) {
	if s.reads >= len(s.steps) {
		return "", io.EOF
	}
	st := s.steps[s.reads]
	s.reads++
	return st.line, st.err
}

func (s *scriptedReader) Close() error {
	s.closed = true
	return nil
}

func lines(in ...string) []step {
	steps := make([]step, len(in))
	for i, l := range in {
		steps[i] = step{line: l}
	}
	return steps
}

func newTestLoop(steps []step, maxFailures int) (*ReadLine, *scriptedReader, *registry.Memory, *bytes.Buffer) {
	reg := registry.NewMemory()
	reader := &scriptedReader{steps: steps}
	out := &bytes.Buffer{}
	r := newReadLine(command.New(command.NewClassifier(), reg), reader, out, maxFailures)
	return r, reader, reg, out
}

func TestReadLine_Session(t *testing.T) {
	ctx := context.Background()
	r, _, reg, out := newTestLoop(lines(
		"  Add Alice to Engineering  ",
		"",
		"Show employees from Engineering",
		"banana",
		"Show employees from Marketing",
	), 3)

	require.NoError(t, r.Start(ctx))

	got, err := reg.ListByDepartment(ctx, "Engineering")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice"}, got)

	text := out.String()
	assert.Contains(t, text, "Employee Alice added to department Engineering")
	assert.Contains(t, text, "invalid command")
	assert.Contains(t, text, "No employees registered in department Marketing")
}

func TestReadLine_ExitStopsReading(t *testing.T) {
	r, reader, reg, _ := newTestLoop(lines("exit", "Add Bob to Sales"), 3)

	require.NoError(t, r.Start(context.Background()))
	assert.Equal(t, 1, reader.reads)

	all, err := reg.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestReadLine_Interrupt(t *testing.T) {
	steps := []step{
		{line: "Add Bo", err: readline.ErrInterrupt},
		{line: "Add Bob to Sales"},
		{line: "", err: readline.ErrInterrupt},
		{line: "Add Carol to Sales"},
	}
	r, reader, reg, _ := newTestLoop(steps, 3)

	require.NoError(t, r.Start(context.Background()))
	assert.Equal(t, 3, reader.reads)

	got, err := reg.ListByDepartment(context.Background(), "Sales")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bob"}, got)
}

func TestReadLine_ReadFailuresAreCapped(t *testing.T) {
	broken := errors.New("device gone")
	steps := []step{
		{err: broken},
		{line: "Add Bob to Sales"},
		{err: broken},
		{err: broken},
		{err: broken},
		{line: "Add Carol to Sales"},
	}
	r, reader, reg, out := newTestLoop(steps, 3)

	err := r.Start(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooManyReadFailures))
	assert.True(t, errors.Is(err, broken))
	assert.Equal(t, 5, reader.reads)
	assert.Contains(t, out.String(), "device gone")

	got, err := reg.ListByDepartment(context.Background(), "Sales")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bob"}, got)
}

func TestReadLine_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r, reader, _, _ := newTestLoop(lines("Add Bob to Sales"), 3)

	err := r.Start(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, reader.reads)
}

func TestReadLine_Shutdown(t *testing.T) {
	r, reader, _, _ := newTestLoop(nil, 3)

	require.NoError(t, r.Shutdown(context.Background()))
	assert.True(t, reader.closed)
}
