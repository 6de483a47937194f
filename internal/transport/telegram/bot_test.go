package telegram

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/sandevgo/roster/internal/service/command"
	"github.com/sandevgo/roster/internal/service/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

func newOfflineBot(t *testing.T, ownerID int64) (*Bot, *registry.Memory) {
	t.Helper()
	tb, err := tele.NewBot(tele.Settings{Offline: true, Synchronous: true})
	require.NoError(t, err)

	reg := registry.NewMemory()
	router := command.New(command.NewClassifier(), reg)
	return newBot(context.Background(), tb, ownerID, router), reg
}

func TestBot_Authorized(t *testing.T) {
	b, _ := newOfflineBot(t, 42)

	assert.True(t, b.authorized(42))
	assert.False(t, b.authorized(7))
}

func TestBot_ExecuteRunsEachLine(t *testing.T) {
	b, reg := newOfflineBot(t, 42)
	ctx := context.Background()

	md := b.execute(ctx, "Add Bob to Sales\n\n  Add Carol to Sales  \nShow employees from Sales")

	got, err := reg.ListByDepartment(ctx, "Sales")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bob", "Carol"}, got)
	assert.Contains(t, md, "Employee Bob added to department Sales")
	assert.Contains(t, md, "- Bob\n- Carol\n")
}

func TestBot_ExecuteBlankMessage(t *testing.T) {
	b, _ := newOfflineBot(t, 42)

	assert.Equal(t, "", b.execute(context.Background(), " \n\t\n"))
}

func TestSplitHTML(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		maxLen int
		want   []string
	}{
		{
			name:   "fits",
			text:   "short",
			maxLen: 10,
			want:   []string{"short"},
		},
		{
			name:   "empty",
			text:   "",
			maxLen: 10,
			want:   nil,
		},
		{
			name:   "newline break",
			text:   "aaaaaa\nbbbbbb",
			maxLen: 10,
			want:   []string{"aaaaaa", "bbbbbb"},
		},
		{
			name:   "hard break",
			text:   "abcdefghijkl",
			maxLen: 5,
			want:   []string{"abcde", "fghij", "kl"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitHTML(tt.text, tt.maxLen))
		})
	}
}

func TestSplitHTML_KeepsRunesWhole(t *testing.T) {
	text := strings.Repeat("ção", 10)

	chunks := splitHTML(text, 4)
	require.NotEmpty(t, chunks)
	for _, chunk := range chunks {
		assert.True(t, utf8.ValidString(chunk), chunk)
		assert.LessOrEqual(t, len(chunk), 4)
	}
	assert.Equal(t, text, strings.Join(chunks, ""))
}
