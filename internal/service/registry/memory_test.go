package registry

import (
	"context"
	"sync"
	"testing"

	"github.com/sandevgo/roster/internal/core"
	"github.com/sandevgo/roster/internal/service/registry/registrytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_Contract(t *testing.T) {
	registrytest.Run(t, func(t *testing.T) core.Registry {
		return NewMemory()
	})
}

func TestMemory_ConcurrentAdds(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.AddEmployee(ctx, "Worker", "Pool")
		}()
	}
	wg.Wait()

	got, err := m.ListByDepartment(ctx, "Pool")
	require.NoError(t, err)
	assert.Len(t, got, 50)
}
