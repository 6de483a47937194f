package core

const (
	RosterName          = "Roster"
	RosterRepositoryURL = "https://github.com/sandevgo/roster"
	RosterVersion       = "0.1.0"
)

const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)
