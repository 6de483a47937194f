package registry

import (
	"context"
	"slices"
	"sync"

	"github.com/sandevgo/roster/internal/core"
)

// Memory is a core.Registry held in a Go map.
// Departments are remembered in the order they were first added to.
type Memory struct {
	mu          sync.RWMutex
	departments map[string][]string
	order       []string
}

func NewMemory() *Memory {
	return &Memory{
		departments: make(map[string][]string),
	}
}

func (m *Memory) AddEmployee(ctx context.Context, employee, department string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	employees, ok := m.departments[department]
	if !ok {
		m.order = append(m.order, department)
	}
	m.departments[department] = append(employees, employee)
	return nil
}

func (m *Memory) ListByDepartment(ctx context.Context, department string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	employees, ok := m.departments[department]
	if !ok {
		return nil, &core.LookupMiss{Department: department}
	}
	// Return copy
	return slices.Clone(employees), nil
}

func (m *Memory) ListAll(ctx context.Context) ([]core.Department, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]core.Department, 0, len(m.order))
	for _, name := range m.order {
		result = append(result, core.Department{
			Name:      name,
			Employees: slices.Clone(m.departments[name]),
		})
	}
	return result, nil
}
