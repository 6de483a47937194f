package core

type AppConfig interface {
	GetRuntimePath() string
	GetHistoryPath() string
	GetStorage() string
	GetPrompt() string
	GetMaxReadFailures() int
	IsCLISelected() bool
	IsTelegramSelected() bool
}

type TelegramConfig interface {
	GetTelegramToken() string
	GetTelegramOwnerID() int64
}
