package installer

import (
	tea "github.com/charmbracelet/bubbletea"
)

const (
	channelConsole  = "console"
	channelTelegram = "telegram"
	channelBoth     = "both"
)

// ChannelStep selects where commands are read from
type ChannelStep struct {
	selector
}

func NewChannelStep() Step {
	return &ChannelStep{selector{
		title: "Select your input channel:",
		choices: []choice{
			{id: channelConsole, title: "Console", desc: "read commands from the terminal"},
			{id: channelTelegram, title: "Telegram", desc: "read commands sent to a bot by its owner"},
			{id: channelBoth, title: "Console + Telegram", desc: "both, sharing one registry"},
		},
	}}
}

func (s *ChannelStep) Init(state *InstallState) tea.Cmd {
	return nil
}

func (s *ChannelStep) Update(msg tea.Msg, state *InstallState) (Step, tea.Cmd) {
	c, ok := s.update(msg)
	if !ok {
		return s, nil
	}

	state.Env.EnableCLI = c.id != channelTelegram
	state.Env.EnableTelegram = c.id != channelConsole
	return nil, nil
}

func (s *ChannelStep) View(state *InstallState) string {
	return s.view()
}
