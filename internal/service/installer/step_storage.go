package installer

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/roster/internal/core"
)

// StorageStep selects the registry backend
type StorageStep struct {
	selector
}

func NewStorageStep() Step {
	return &StorageStep{selector{
		title: "Select the registry backend:",
		choices: []choice{
			{id: core.StorageMemory, title: "Memory", desc: "Go map, fastest"},
			{id: core.StorageSQLite, title: "SQLite", desc: "in-memory SQLite database"},
		},
	}}
}

func (s *StorageStep) Init(state *InstallState) tea.Cmd {
	return nil
}

func (s *StorageStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	if c, ok := s.update(msg); ok {
		state.Env.Storage = c.id
		return nil, nil
	}
	return s, nil
}

func (s *StorageStep) View(state *InstallState) string {
	return s.view()
}
