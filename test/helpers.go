package test

import (
	"context"
	"testing"

	"github.com/sandevgo/roster/internal/core"
	"github.com/sandevgo/roster/internal/service/command"
	"github.com/sandevgo/roster/internal/service/registry"
	"github.com/sandevgo/roster/internal/storage/sqlite"
	"github.com/stretchr/testify/require"
)

// Backends lists the storage kinds an end-to-end session runs against.
var Backends = []string{core.StorageMemory, core.StorageSQLite}

// NewRouter builds a command router over a fresh registry of the given kind.
func NewRouter(t *testing.T, storage string) core.CmdRouter {
	t.Helper()

	var reg core.Registry
	switch storage {
	case core.StorageSQLite:
		db, err := sqlite.NewDB(context.Background())
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })
		reg = sqlite.NewRegistryRepo(db)
	default:
		reg = registry.NewMemory()
	}

	return command.New(command.NewClassifier(), reg)
}
