package installer

// EnvFile is the subset of configuration the wizard writes to <runtime>/.env.
type EnvFile struct {
	Storage         string `env:"ROSTER_STORAGE"`
	EnableCLI       bool   `env:"ROSTER_ENABLE_CLI"`
	EnableTelegram  bool   `env:"ROSTER_ENABLE_TELEGRAM"`
	TelegramToken   string `env:"ROSTER_TELEGRAM_TOKEN"`
	TelegramOwnerID int64  `env:"ROSTER_TELEGRAM_OWNER_ID"`
}

type InstallState struct {
	Env     EnvFile
	EnvPath string
}

func NewInstallState() *InstallState {
	return &InstallState{
		Env: EnvFile{EnableCLI: true},
	}
}
