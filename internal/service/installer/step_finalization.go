package installer

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/roster/internal/core"
)

// FinalizationStep fills defaults and falls back to the console
// when Telegram was chosen without a token.
type FinalizationStep struct{}

func NewFinalizationStep() Step {
	return &FinalizationStep{}
}

func (s *FinalizationStep) Init(state *InstallState) tea.Cmd {
	return next
}

func (s *FinalizationStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	if state.Env.Storage == "" {
		state.Env.Storage = core.StorageMemory
	}

	if state.Env.TelegramToken == "" {
		state.Env.EnableTelegram = false
		state.Env.TelegramOwnerID = 0
	}
	if !state.Env.EnableTelegram {
		state.Env.EnableCLI = true
	}

	return nil, nil
}

func (s *FinalizationStep) View(state *InstallState) string {
	return "Finalizing configuration...\n"
}
